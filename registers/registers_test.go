package registers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/internal/utils"
	"github.com/jrsteele09/parkctl/registers"
	"github.com/jrsteele09/parkctl/session"
	"github.com/jrsteele09/parkctl/session/storefakes"
	"github.com/jrsteele09/parkctl/vehicles"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *registers.Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Set(session.Session{
		User:  session.Identity{Name: "John Doe", Username: "jdoe", Email: "j@x.com"},
		Token: "abc.def.ghi",
	}))

	client, err := apiclient.New(server.URL, store)
	require.NoError(t, err)
	return registers.NewService(client)
}

func TestRegisterActive(t *testing.T) {
	open := registers.Register{ID: 1, ExitDate: nil}
	closed := registers.Register{ID: 2, ExitDate: utils.Ptr("2026-08-30T18:00:00Z")}

	assert.True(t, open.Active())
	assert.False(t, closed.Active())
}

func TestList(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/parking/registers", r.URL.Path)
		w.Write([]byte(`{"registers":[
			{"id":1,"vehicle":{"id":"ABC-123","type":"RESIDENT"},"entrydate":"2026-08-30T10:00:00Z","exitdate":null,"minutes":0},
			{"id":2,"vehicle":{"id":"XYZ-789","type":"NON_RESIDENT"},"entrydate":"2026-08-30T08:00:00Z","exitdate":"2026-08-30T09:30:00Z","minutes":90}
		]}`))
	})

	list, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Active())
	assert.False(t, list[1].Active())
	assert.Equal(t, 90, list[1].Minutes)
}

func TestEntry(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/parking/register", r.URL.Path)

		var request registers.EntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Equal(t, "ABC-123", request.ID)

		json.NewEncoder(w).Encode(map[string]any{
			"register": registers.Register{
				ID:        3,
				Vehicle:   vehicles.Vehicle{ID: request.ID, Type: request.Type},
				EntryDate: "2026-08-31T12:00:00Z",
			},
			"message": "entry registered",
		})
	})

	record, err := service.Entry(context.Background(), registers.EntryRequest{ID: "ABC-123", Type: vehicles.TypeResident})
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)
	assert.True(t, record.Active())
}

func TestExit(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/parking/leave", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"register": registers.Register{
				ID:        3,
				Vehicle:   vehicles.Vehicle{ID: "ABC-123", Type: vehicles.TypeResident},
				EntryDate: "2026-08-31T12:00:00Z",
				ExitDate:  utils.Ptr("2026-08-31T13:15:00Z"),
				Minutes:   75,
			},
			"message": "exit registered",
		})
	})

	record, err := service.Exit(context.Background(), vehicles.Vehicle{ID: "ABC-123", Type: vehicles.TypeResident})
	require.NoError(t, err)
	assert.False(t, record.Active())
	assert.Equal(t, 75, record.Minutes)
}

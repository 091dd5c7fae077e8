package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/dashboard"
	"github.com/jrsteele09/parkctl/registers"
	"github.com/jrsteele09/parkctl/session"
	"github.com/jrsteele09/parkctl/session/storefakes"
	"github.com/jrsteele09/parkctl/vehicles"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *dashboard.Service {
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
	return dashboard.NewService(vehicles.NewService(client), registers.NewService(client))
}

func TestLoadJoinsBothHalves(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/parking/vehicles/":
			w.Write([]byte(`{"vehicles":[{"id":"ABC-123","type":"RESIDENT"},{"id":"XYZ-789","type":"OFICIAL"}]}`))
		case "/api/v1/parking/registers":
			w.Write([]byte(`{"registers":[
				{"id":1,"vehicle":{"id":"ABC-123","type":"RESIDENT"},"entrydate":"e","exitdate":null,"minutes":30},
				{"id":2,"vehicle":{"id":"XYZ-789","type":"OFICIAL"},"entrydate":"e","exitdate":"x","minutes":90}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	snap := service.Load(context.Background())
	require.NoError(t, snap.VehiclesErr)
	require.NoError(t, snap.RegistersErr)
	assert.Equal(t, 2, snap.RegisteredCount())
	assert.Equal(t, 1, snap.ActiveCount())
	assert.Equal(t, 120, snap.TotalMinutes())
}

func TestLoadFailuresAreIndependent(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/parking/vehicles/":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/v1/parking/registers":
			w.Write([]byte(`{"registers":[{"id":1,"vehicle":{"id":"ABC-123","type":"RESIDENT"},"entrydate":"e","exitdate":null,"minutes":30}]}`))
		}
	})

	snap := service.Load(context.Background())
	require.ErrorIs(t, snap.VehiclesErr, apiclient.ErrServer)
	require.NoError(t, snap.RegistersErr, "one half failing must not suppress the other")
	assert.Equal(t, 1, snap.ActiveCount())
}

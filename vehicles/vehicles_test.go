package vehicles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/parkctl/apiclient"
	"github.com/jrsteele09/parkctl/session"
	"github.com/jrsteele09/parkctl/session/storefakes"
	"github.com/jrsteele09/parkctl/vehicles"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *vehicles.Service {
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
	return vehicles.NewService(client)
}

func TestTypeValid(t *testing.T) {
	assert.True(t, vehicles.TypeOficial.Valid())
	assert.True(t, vehicles.TypeResident.Valid())
	assert.True(t, vehicles.TypeNonResident.Valid())
	assert.False(t, vehicles.Type("TRUCK").Valid())
}

func TestList(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/parking/vehicles/", r.URL.Path)
		w.Write([]byte(`{"vehicles":[{"id":"ABC-123","type":"RESIDENT"},{"id":"XYZ-789","type":"OFICIAL"}]}`))
	})

	list, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, vehicles.Vehicle{ID: "ABC-123", Type: vehicles.TypeResident}, list[0])
}

func TestCreate(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var v vehicles.Vehicle
		require.NoError(t, json.NewDecoder(r.Body).Decode(&v))

		json.NewEncoder(w).Encode(map[string]any{"vehicle": v, "message": "created"})
	})

	created, err := service.Create(context.Background(), vehicles.Vehicle{ID: "ABC-123", Type: vehicles.TypeNonResident})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", created.ID)
}

func TestUpdate(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/parking/vehicles/ABC-123", r.URL.Path)

		var body struct {
			Type vehicles.Type `json:"type"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		json.NewEncoder(w).Encode(map[string]any{
			"vehicle": vehicles.Vehicle{ID: "ABC-123", Type: body.Type},
			"message": "updated",
		})
	})

	updated, err := service.Update(context.Background(), "ABC-123", vehicles.TypeResident)
	require.NoError(t, err)
	assert.Equal(t, vehicles.TypeResident, updated.Type)
}

func TestDelete(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/v1/parking/vehicles/ABC-123", r.URL.Path)
		w.Write([]byte(`{"message":"deleted"}`))
	})

	require.NoError(t, service.Delete(context.Background(), "ABC-123"))
}

func TestCalculatePayment(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/parking/vehicles/pay", r.URL.Path)
		w.Write([]byte(`{"price":12.5,"vehicle":{"id":"ABC-123","type":"NON_RESIDENT"}}`))
	})

	price, err := service.CalculatePayment(context.Background(), vehicles.Vehicle{ID: "ABC-123", Type: vehicles.TypeNonResident})
	require.NoError(t, err)
	assert.Equal(t, 12.5, price)
}

func TestStartsMonth(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/parking/vehicles/startsMonth", r.URL.Path)
		w.Write([]byte(`{"message":"month started","deletedCount":7}`))
	})

	reset, err := service.StartsMonth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, reset.DeletedCount)
}

func TestListSurfacesServerErrors(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := service.List(context.Background())
	require.ErrorIs(t, err, apiclient.ErrServer)
}

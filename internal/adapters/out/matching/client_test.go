package matching_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapters/out/matching"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast_Success(t *testing.T) {
	bookingID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/bookings/"+bookingID.String()+"/broadcast", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notified": 5}`))
	}))
	defer server.Close()

	client := matching.NewClient(server.URL)
	notified, err := client.Broadcast(t.Context(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, 5, notified)
}

func TestBroadcast_ZeroNotified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"notified": 0}`))
	}))
	defer server.Close()

	client := matching.NewClient(server.URL)
	notified, err := client.Broadcast(t.Context(), kernel.NewUUID())

	require.NoError(t, err)
	assert.Zero(t, notified)
}

func TestBroadcast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := matching.NewClient(server.URL)
	_, err := client.Broadcast(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestBroadcast_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := matching.NewClient(server.URL)
	_, err := client.Broadcast(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestBroadcast_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // shut down before the request

	client := matching.NewClient(server.URL)
	_, err := client.Broadcast(t.Context(), kernel.NewUUID())

	require.Error(t, err)
}

func TestBroadcast_InvalidBookingID(t *testing.T) {
	client := matching.NewClient("http://localhost:0")
	_, err := client.Broadcast(t.Context(), kernel.UUID{})

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestBroadcast_TrailingSlashBaseURL(t *testing.T) {
	bookingID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/bookings/"+bookingID.String()+"/broadcast", r.URL.Path)
		_, _ = w.Write([]byte(`{"notified": 1}`))
	}))
	defer server.Close()

	client := matching.NewClient(server.URL + "/")
	notified, err := client.Broadcast(t.Context(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}

//go:build unit

package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smart-parking/internal/infra/realtime"
	"smart-parking/internal/usecase/shared"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastsSpotEvents(t *testing.T) {
	hub := realtime.NewHub(8)
	hub.Start()
	defer func() { _ = hub.Stop(context.Background()) }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	occurredAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	hub.HandleSpotEvent(shared.SpotEvent{
		Type:        shared.SpotOccupied,
		SpotID:      "F2S16",
		FloorNumber: 2,
		OccurredAt:  occurredAt,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "occupied", got["type"])
	assert.Equal(t, "F2S16", got["spotId"])
	assert.EqualValues(t, 2, got["floorNumber"])
	assert.Equal(t, occurredAt.Format(time.RFC3339), got["occurredAt"])
}

func TestHub_ClientDisconnectIsUnregistered(t *testing.T) {
	hub := realtime.NewHub(8)
	hub.Start()
	defer func() { _ = hub.Stop(context.Background()) }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_HandleSpotEventWithoutClientsDoesNotBlock(t *testing.T) {
	hub := realtime.NewHub(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.HandleSpotEvent(shared.SpotEvent{Type: shared.SpotFreed, SpotID: "F1S1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("HandleSpotEvent blocked")
	}
}

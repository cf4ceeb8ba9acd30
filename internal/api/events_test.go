package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHubBroadcast(t *testing.T) {
	app := newTestApp(t, &database.MockParlorRepository{})

	srv := httptest.NewServer(http.HandlerFunc(app.serveWs))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// the register channel is unbuffered, so once the dial returns the
	// client may still be racing its registration
	require.Eventually(t, func() bool {
		app.events.Broadcast(Event{Type: EventUserJoined, ChatroomId: 3, UserId: 7})

		conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return false
		}

		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, EventUserJoined, event.Type)
		assert.Equal(t, 3, event.ChatroomId)
		assert.Equal(t, 7, event.UserId)
		return true
	}, 2*time.Second, 50*time.Millisecond)
}

func TestEventHubBroadcastAfterClose(t *testing.T) {
	hub := NewEventHub(testutil.TestLogger(t))
	hub.Close()

	// must not block or panic once the hub is gone
	hub.Broadcast(Event{Type: EventUserLeft, ChatroomId: 1})
}

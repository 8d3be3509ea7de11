package realtime

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitewrap/internal/domain"
)

// dialTestClient connects a websocket client for the given user against
// a router that trusts a user_id query parameter. The real router puts
// the ID into the context from the JWT instead.
func dialTestClient(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		id, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)
		c.Set("user_id", id)
	})
	NewHandler(hub).RegisterRoutes(&r.RouterGroup)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?user_id=" + strconv.FormatInt(userID, 10)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// Registration happens in the HTTP handler; give it a beat.
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) == 1
	}, time.Second, 10*time.Millisecond)

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestHubPushesLogEvents(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 1)

	hub.NotifyLogCreated(1, "2025-03-10", domain.MealLunch)

	ev := readEvent(t, conn)
	assert.Equal(t, "log.created", ev.Type)
	assert.Equal(t, "2025-03-10", ev.Date)
	assert.Equal(t, "lunch", ev.MealType)

	hub.NotifyLogDeleted(1, "2025-03-10", domain.MealLunch)

	ev = readEvent(t, conn)
	assert.Equal(t, "log.deleted", ev.Type)
}

func TestHubSerializesConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 1)

	const broadcasts = 20
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			hub.NotifyLogCreated(1, fmt.Sprintf("2025-03-%02d", day+1), domain.MealDinner)
		}(i)
	}
	wg.Wait()

	// Every frame must arrive intact; interleaved writes would corrupt
	// the stream and fail the read.
	for i := 0; i < broadcasts; i++ {
		ev := readEvent(t, conn)
		assert.Equal(t, "log.created", ev.Type)
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Len(t, hub.clients[1], 1, "client must survive concurrent broadcasts")
}

func TestHubScopesEventsToUser(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 2)

	hub.NotifyLogCreated(99, "2025-03-10", domain.MealBreakfast)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "events for other users must not reach this connection")
}

package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"socialgraph/internal/domain"
	"socialgraph/internal/transport/http/middleware"
)

// newFeedServer stands up the event feed behind the same middleware chain
// main wires: CORS around request logging around the mux.
func newFeedServer(t *testing.T) (*httptest.Server, *HubNotifier) {
	t.Helper()

	logger := zap.NewNop()
	hub := NewHub(logger)
	go hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", ServeWS(hub))

	srv := httptest.NewServer(middleware.CORS(middleware.Logging(logger)(mux)))
	t.Cleanup(srv.Close)

	return srv, NewHubNotifier(hub)
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	return conn
}

// pingPong performs one ping round trip. Besides checking the ping handler
// it guarantees the client is registered and both pumps are running before
// the caller broadcasts anything.
func pingPong(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, wsjson.Write(ctx, conn, Event{Type: EventTypePing}))

	var evt Event
	require.NoError(t, wsjson.Read(ctx, conn, &evt))
	assert.Equal(t, EventTypePong, evt.Type)
}

func TestServeWS_UpgradeThroughMiddleware(t *testing.T) {
	srv, _ := newFeedServer(t)
	conn := dialFeed(t, srv)

	pingPong(t, conn)
}

func TestHubNotifier_BroadcastsEntityEvents(t *testing.T) {
	srv, notifier := newFeedServer(t)
	conn := dialFeed(t, srv)
	pingPong(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user := &domain.User{
		ID:                  uuid.New(),
		FirstName:           "Ada",
		LastName:            "Lovelace",
		Email:               "ada@example.com",
		SubscribedToUserIDs: []uuid.UUID{},
	}
	notifier.NotifyUserCreated(user)

	var created Event
	require.NoError(t, wsjson.Read(ctx, conn, &created))
	assert.Equal(t, EventTypeUserCreated, created.Type)
	assert.NotZero(t, created.Timestamp)

	var userPayload UserPayload
	require.NoError(t, json.Unmarshal(created.Payload, &userPayload))
	assert.Equal(t, user.ID, userPayload.ID)
	assert.Equal(t, "Ada", userPayload.FirstName)

	postID := uuid.New()
	notifier.NotifyPostDeleted(postID)

	var deleted Event
	require.NoError(t, wsjson.Read(ctx, conn, &deleted))
	assert.Equal(t, EventTypePostDeleted, deleted.Type)

	var deletedPayload DeletedPayload
	require.NoError(t, json.Unmarshal(deleted.Payload, &deletedPayload))
	assert.Equal(t, postID, deletedPayload.ID)
}

func TestClient_UnknownEventType(t *testing.T) {
	srv, _ := newFeedServer(t)
	conn := dialFeed(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, wsjson.Write(ctx, conn, Event{Type: "bogus"}))

	var evt Event
	require.NoError(t, wsjson.Read(ctx, conn, &evt))
	assert.Equal(t, EventTypeError, evt.Type)

	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(evt.Payload, &errPayload))
	assert.Equal(t, "UNKNOWN_EVENT", errPayload.Code)
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

func newStreamServer(t *testing.T, source *MockSnapshotSource, subscriber *fakeSubscriber) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewWebSocketHandler(source, logger.NewLogger("test"), subscriber)
	go handler.Start()
	t.Cleanup(handler.Stop)

	router := gin.New()
	router.GET("/stream", handler.HandleWebSocket)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dialStream(t *testing.T, server *httptest.Server, collection string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/stream?collection=" + collection
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) dto.Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var snapshot dto.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	return snapshot
}

func TestWebSocket_InitialSnapshotThenUpdates(t *testing.T) {
	// Arrange
	source := new(MockSnapshotSource)
	source.On("Build", mock.Anything, domain.CollectionRooms).Return(&dto.Snapshot{
		Collection:  "rooms",
		Items:       json.RawMessage(`[{"id":"r1","name":"101"}]`),
		GeneratedAt: time.Now().UTC(),
	}, nil)
	subscriber := newFakeSubscriber()
	server := newStreamServer(t, source, subscriber)

	// Act
	conn := dialStream(t, server, "rooms")
	defer conn.Close()
	initial := readSnapshot(t, conn)

	delivered := subscriber.publish(&dto.Snapshot{
		Collection:  "rooms",
		Items:       json.RawMessage(`[{"id":"r1","name":"101"},{"id":"r2","name":"102"}]`),
		GeneratedAt: time.Now().UTC(),
	})
	update := readSnapshot(t, conn)

	// Assert
	assert.Equal(t, "rooms", initial.Collection)
	assert.JSONEq(t, `[{"id":"r1","name":"101"}]`, string(initial.Items))
	assert.True(t, delivered)
	assert.JSONEq(t, `[{"id":"r1","name":"101"},{"id":"r2","name":"102"}]`, string(update.Items))
	source.AssertExpectations(t)
}

func TestWebSocket_OtherCollectionsAreNotForwarded(t *testing.T) {
	// Arrange
	source := new(MockSnapshotSource)
	source.On("Build", mock.Anything, domain.CollectionTenants).Return(&dto.Snapshot{
		Collection: "tenants",
		Items:      json.RawMessage(`[]`),
	}, nil)
	subscriber := newFakeSubscriber()
	server := newStreamServer(t, source, subscriber)

	conn := dialStream(t, server, "tenants")
	defer conn.Close()
	readSnapshot(t, conn)

	// Act
	delivered := subscriber.publish(&dto.Snapshot{Collection: "payments", Items: json.RawMessage(`[]`)})

	// Assert
	assert.False(t, delivered)
	assert.True(t, subscriber.subscribed(domain.CollectionTenants))
	assert.False(t, subscriber.subscribed(domain.CollectionPayments))
}

func TestWebSocket_LastClientReleasesSubscription(t *testing.T) {
	// Arrange
	source := new(MockSnapshotSource)
	source.On("Build", mock.Anything, domain.CollectionPayments).Return(&dto.Snapshot{
		Collection: "payments",
		Items:      json.RawMessage(`[]`),
	}, nil)
	subscriber := newFakeSubscriber()
	server := newStreamServer(t, source, subscriber)

	conn := dialStream(t, server, "payments")
	readSnapshot(t, conn)
	require.True(t, subscriber.subscribed(domain.CollectionPayments))

	// Act
	conn.Close()

	// Assert
	assert.Eventually(t, func() bool {
		return !subscriber.subscribed(domain.CollectionPayments)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocket_InvalidCollection(t *testing.T) {
	// Arrange
	source := new(MockSnapshotSource)
	server := newStreamServer(t, source, newFakeSubscriber())

	// Act
	resp, err := http.Get(server.URL + "/stream?collection=invoices")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	source.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestWebSocket_ChangeDuringInitialBuildArrivesLast(t *testing.T) {
	// Arrange
	base := time.Now().UTC()
	subscriber := newFakeSubscriber()
	source := new(MockSnapshotSource)
	source.On("Build", mock.Anything, domain.CollectionRooms).
		Run(func(args mock.Arguments) {
			// A write commits while the initial snapshot is being read
			subscriber.publish(&dto.Snapshot{
				Collection:  "rooms",
				Items:       json.RawMessage(`["new"]`),
				GeneratedAt: base.Add(time.Second),
			})
		}).
		Return(&dto.Snapshot{Collection: "rooms", Items: json.RawMessage(`["old"]`), GeneratedAt: base}, nil)
	server := newStreamServer(t, source, subscriber)

	// Act
	conn := dialStream(t, server, "rooms")
	defer conn.Close()
	first := readSnapshot(t, conn)
	second := readSnapshot(t, conn)

	// Assert
	assert.JSONEq(t, `["old"]`, string(first.Items))
	assert.JSONEq(t, `["new"]`, string(second.Items))
}

func TestWebSocket_StaleSnapshotsAreDropped(t *testing.T) {
	// Arrange
	base := time.Now().UTC()
	subscriber := newFakeSubscriber()
	source := new(MockSnapshotSource)
	source.On("Build", mock.Anything, domain.CollectionTenants).
		Run(func(args mock.Arguments) {
			subscriber.publish(&dto.Snapshot{
				Collection:  "tenants",
				Items:       json.RawMessage(`["stale during build"]`),
				GeneratedAt: base.Add(-time.Second),
			})
		}).
		Return(&dto.Snapshot{Collection: "tenants", Items: json.RawMessage(`["initial"]`), GeneratedAt: base}, nil)
	server := newStreamServer(t, source, subscriber)

	conn := dialStream(t, server, "tenants")
	defer conn.Close()
	initial := readSnapshot(t, conn)

	// Act
	subscriber.publish(&dto.Snapshot{
		Collection:  "tenants",
		Items:       json.RawMessage(`["stale after connect"]`),
		GeneratedAt: base.Add(-2 * time.Second),
	})
	subscriber.publish(&dto.Snapshot{
		Collection:  "tenants",
		Items:       json.RawMessage(`["fresh"]`),
		GeneratedAt: base.Add(time.Second),
	})
	next := readSnapshot(t, conn)

	// Assert
	assert.JSONEq(t, `["initial"]`, string(initial.Items))
	assert.JSONEq(t, `["fresh"]`, string(next.Items))
}

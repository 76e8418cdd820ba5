package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

//go:generate mockery --name SnapshotSource --output ../mocks
type SnapshotSource interface {
	Build(ctx context.Context, kind domain.CollectionKind) (*dto.Snapshot, error)
}

//go:generate mockery --name SnapshotSubscriber --output ../mocks
type SnapshotSubscriber interface {
	Subscribe(ctx context.Context, kind domain.CollectionKind, callback func(*dto.Snapshot)) error
	Unsubscribe(kind domain.CollectionKind)
	Close()
}

type Client struct {
	conn       *websocket.Conn
	collection domain.CollectionKind
	send       chan []byte
	ready      chan struct{}

	// Guarded by WebSocketHandler.mutex. Until the initial snapshot is queued the client is
	// pending and only the newest published snapshot is held back.
	pending bool
	held    *dto.Snapshot
	latest  time.Time
}

type WebSocketHandler struct {
	*BaseHandler
	snapshots         SnapshotSource
	clients           map[*Client]bool
	register          chan *Client
	unregister        chan *Client
	mutex             sync.RWMutex
	logger            *logger.Logger
	pubsub            SnapshotSubscriber
	ctx               context.Context
	cancel            context.CancelFunc
	collectionClients map[domain.CollectionKind]int // Count of clients per collection
}

func NewWebSocketHandler(snapshots SnapshotSource, logger *logger.Logger, pubsub SnapshotSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		snapshots:         snapshots,
		clients:           make(map[*Client]bool),
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		logger:            logger,
		pubsub:            pubsub,
		ctx:               ctx,
		cancel:            cancel,
		collectionClients: make(map[domain.CollectionKind]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream collection snapshots
// @Description Upgrades to a websocket that receives the full collection on connect and again after every change
// @Tags stream
// @Param collection query string true "rooms, tenants or payments"
// @Success 101
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	kind, err := domain.ParseCollectionKind(c.Query("collection"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		conn:       conn,
		collection: kind,
		send:       make(chan []byte, websocketSendChannelBufferSize),
		ready:      make(chan struct{}),
		pending:    true,
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)

	// The subscription is live once ready closes, so nothing published after this
	// snapshot is built can be missed
	<-client.ready
	snapshot, err := h.snapshots.Build(h.RequestCtx(c), kind)
	if err != nil {
		h.logger.Errorf("Failed to build initial %s snapshot: %v", kind, err)
		client.conn.Close()
		return
	}
	h.deliverInitial(client, snapshot)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.collectionClients[client.collection]++

			// Subscribe to the collection channel if this is the first client
			if h.collectionClients[client.collection] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.collection, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to %s: %v", client.collection, err)
				}
			}
			h.mutex.Unlock()
			close(client.ready)

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeLocked(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// removeLocked drops client and releases the collection subscription with its last client.
// Callers hold h.mutex.
func (h *WebSocketHandler) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.collectionClients[client.collection]--
	if h.collectionClients[client.collection] == 0 {
		h.pubsub.Unsubscribe(client.collection)
		delete(h.collectionClients, client.collection)
	}
}

// deliverInitial queues the initial snapshot, then any newer snapshot published while it
// was being built, and ends the pending state.
func (h *WebSocketHandler) deliverInitial(client *Client, initial *dto.Snapshot) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	client.pending = false
	held := client.held
	client.held = nil

	if !h.queueLocked(client, initial) {
		return
	}
	if held != nil && held.GeneratedAt.After(initial.GeneratedAt) {
		h.queueLocked(client, held)
	}
}

// queueLocked sends snapshot to one client unless it is older than what the client already has.
// A client whose buffer is full is dropped. Callers hold h.mutex.
func (h *WebSocketHandler) queueLocked(client *Client, snapshot *dto.Snapshot) bool {
	if snapshot.GeneratedAt.Before(client.latest) {
		return true
	}
	message, err := json.Marshal(snapshot)
	if err != nil {
		h.logger.Errorf("Error marshaling snapshot: %v", err)
		return true
	}

	select {
	case client.send <- message:
		client.latest = snapshot.GeneratedAt
		return true
	default:
		h.removeLocked(client)
		return false
	}
}

// handlePubSubMessage fans a snapshot received from Redis out to the collection's clients
func (h *WebSocketHandler) handlePubSubMessage(snapshot *dto.Snapshot) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if string(client.collection) != snapshot.Collection {
			continue
		}
		if client.pending {
			if client.held == nil || !snapshot.GeneratedAt.Before(client.held.GeneratedAt) {
				client.held = snapshot
			}
			continue
		}
		h.queueLocked(client, snapshot)
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("Unexpected close error for %s client: %v", client.collection, err)
			}
			return
		}
		// Clients only listen; anything they send is ignored
	}
}

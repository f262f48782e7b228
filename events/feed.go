package events

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// feedBuffer is how many messages a client may fall behind before it is dropped.
	feedBuffer = 64
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type feedMessage struct {
	Topic   string `json:"topic"`
	Payload Event  `json:"payload"`
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed pushes every published event to connected websocket clients. Each
// client has its own writer; Publish never waits on the network.
type Feed struct {
	mu      sync.Mutex
	clients map[*feedClient]struct{}
	log     *zap.Logger
}

func NewFeed(log *zap.Logger) *Feed {
	return &Feed{clients: make(map[*feedClient]struct{}), log: log}
}

// Handler upgrades the request and keeps the connection registered until
// the client goes away.
func (f *Feed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := &feedClient{conn: conn, send: make(chan []byte, feedBuffer)}
	f.mu.Lock()
	f.clients[client] = struct{}{}
	f.mu.Unlock()

	go client.writeLoop()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.remove(client)
			return
		}
	}
}

func (fc *feedClient) writeLoop() {
	for msg := range fc.send {
		_ = fc.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := fc.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			fc.conn.Close()
			return
		}
	}
	_ = fc.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = fc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// remove unregisters client and stops its writer. Safe to call twice.
func (f *Feed) remove(client *feedClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[client]; ok {
		delete(f.clients, client)
		close(client.send)
	}
}

// Clients returns the number of connected clients.
func (f *Feed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

func (f *Feed) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(feedMessage{Topic: e.Topic(), Payload: e})
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		select {
		case client.send <- data:
		default:
			f.log.Warn("dropping slow feed client", zap.String("topic", e.Topic()))
			delete(f.clients, client)
			close(client.send)
			client.conn.Close()
		}
	}
	return nil
}

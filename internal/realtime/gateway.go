// Package realtime bridges WebSocket connections to the workspace hub.
// Server-side change events and client frames share one channel per
// workspace: whatever a client sends is rebroadcast verbatim to every
// other subscriber, which lets clients relay ephemeral state (cursor
// positions, drag previews) without a server round trip.
package realtime

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"corkboard.app/api/common/logger"
	"corkboard.app/api/internal/hub"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	// sendBuffer bounds the per-connection outbound queue. A client that
	// cannot drain it in time is dropped by the hub.
	sendBuffer = 256
)

type Gateway struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

func NewGateway(h *hub.Hub) *Gateway {
	return &Gateway{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Bearer-token auth happens before the upgrade; origin checks
			// add nothing for non-cookie clients.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and pumps messages until the client goes
// away. The caller must have authorized the user for the workspace.
func (g *Gateway) Serve(w http.ResponseWriter, r *http.Request, workspaceID, userID int64) error {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	ctx := logger.WithLogFields(r.Context(), logger.LogFields{
		UserID:      logger.Ptr(userID),
		WorkspaceID: logger.Ptr(workspaceID),
		Component:   "corkboard.realtime",
	})

	c := &connection{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	sub := g.hub.Subscribe(workspaceID, c.enqueue)

	slog.InfoContext(ctx, "websocket connected",
		"workspace_id", workspaceID,
		"user_id", userID,
	)

	go c.writePump()
	g.readPump(ctx, c, workspaceID)

	g.hub.Unsubscribe(sub)
	close(c.done)

	slog.InfoContext(ctx, "websocket disconnected",
		"workspace_id", workspaceID,
		"user_id", userID,
	)
	return nil
}

// connection owns one WebSocket. The send channel is never closed; a
// late hub delivery racing the teardown lands in the buffer and is
// collected with the connection. done tells the write pump to stop.
type connection struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

var errSlowConsumer = errors.New("subscriber send queue full")

// enqueue is the hub-facing send. It must not block: a full queue means
// the client has fallen too far behind to stay subscribed.
func (c *connection) enqueue(msg []byte) error {
	select {
	case c.send <- msg:
		return nil
	default:
		return errSlowConsumer
	}
}

// readPump relays every inbound frame to the rest of the workspace and
// returns when the connection dies.
func (g *Gateway) readPump(ctx context.Context, c *connection, workspaceID int64) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.DebugContext(ctx, "websocket read failed", "error", err)
			}
			return
		}
		g.hub.Publish(ctx, workspaceID, msg)
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

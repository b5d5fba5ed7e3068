package chat

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sulnaq/snti/backend/internal/service/conversation"
)

// WebSocketHandler runs the assessment conversation over a persistent
// connection. Each connection is pinned to one identifier; turns arrive and
// return as the same JSON payloads the REST endpoint uses.
type WebSocketHandler struct {
	svc      *conversation.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket transport.
func NewWebSocketHandler(svc *conversation.Service) *WebSocketHandler {
	return &WebSocketHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes mounts the websocket route.
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{identifier}", h.handleWebSocket)
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	if identifier == "" {
		http.Error(w, "identifier is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Connection id correlates log lines across reconnects on the same
	// identifier.
	connID := uuid.NewString()
	log.Printf("[websocket] new connection conn=%s identifier=%s", connID, identifier)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go h.pingLoop(ctx, conn)

	h.send(conn, "connected", map[string]string{"identifier": identifier})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var req conversation.Request
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[websocket] read error conn=%s: %v", connID, err)
				}
				return
			}

			conn.SetReadDeadline(time.Now().Add(60 * time.Second))

			// The connection owns the identifier; payload overrides are
			// ignored so one socket cannot drive another session.
			req.Identifier = identifier

			reply, err := h.svc.HandleTurn(ctx, req)
			if err != nil {
				h.send(conn, "error", map[string]string{"message": err.Error()})
				continue
			}

			h.send(conn, "reply", reply)
		}
	}
}

func (h *WebSocketHandler) send(conn *websocket.Conn, msgType string, data interface{}) {
	msg := outgoingMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[websocket] write failed: %v", err)
	}
}

func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

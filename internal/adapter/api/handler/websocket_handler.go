package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"ticketboom/internal/domain/entity"
	"ticketboom/internal/infrastructure/websocket"
	"ticketboom/internal/usecase"
	"ticketboom/pkg/logger"
)

// WebSocketHandler pushes feed and comment snapshots to connected browsers,
// standing in for the store's client-side realtime listeners.
type WebSocketHandler struct {
	manager             *websocket.Manager
	notificationUseCase *usecase.NotificationUseCase
	commentUseCase      *usecase.CommentUseCase
	upgrader            gorillaws.Upgrader
}

type wsEnvelope struct {
	Type     string      `json:"type"`
	TicketID string      `json:"ticket_id,omitempty"`
	Items    interface{} `json:"items"`
}

type wsClientMessage struct {
	Type     string `json:"type"`
	TicketID string `json:"ticket_id"`
}

func NewWebSocketHandler(
	manager *websocket.Manager,
	notificationUseCase *usecase.NotificationUseCase,
	commentUseCase *usecase.CommentUseCase,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:             manager,
		notificationUseCase: notificationUseCase,
		commentUseCase:      commentUseCase,
		upgrader: gorillaws.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// StartNotificationFeed opens the store-side subscription and fans every
// snapshot out to all connected clients. Runs until ctx is cancelled.
func (h *WebSocketHandler) StartNotificationFeed(ctx context.Context) error {
	_, err := h.notificationUseCase.SubscribeNotifications(ctx, func(items []*entity.Notification) {
		h.manager.Broadcast(marshalEnvelope(wsEnvelope{Type: "notifications", Items: items}))
	})
	return err
}

func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &websocket.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	h.manager.Register <- client

	// New connections get the current feed right away rather than waiting
	// for the next change.
	if items, err := h.notificationUseCase.ListNotifications(c.Request().Context()); err == nil {
		h.manager.SendToClient(client.ID, marshalEnvelope(wsEnvelope{Type: "notifications", Items: items}))
	}

	go client.WritePump()
	go client.ReadPump(h.manager, h.onClientMessage)

	return nil
}

func (h *WebSocketHandler) onClientMessage(client *websocket.Client, data []byte) {
	var msg wsClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		logger.Debug("Ignoring malformed websocket message from %s: %v", client.ID, err)
		return
	}

	switch msg.Type {
	case "subscribe_comments":
		if msg.TicketID == "" {
			return
		}
		ticketID := msg.TicketID
		stop, err := h.commentUseCase.SubscribeComments(context.Background(), ticketID, func(comments []*entity.Comment) {
			h.manager.SendToClient(client.ID, marshalEnvelope(wsEnvelope{
				Type:     "comments",
				TicketID: ticketID,
				Items:    comments,
			}))
		})
		if err != nil {
			logger.Error("Failed to open comment stream for %s: %v", ticketID, err)
			return
		}
		// One comment stream per client; switching tickets replaces it.
		client.SetStream(stop)

	case "unsubscribe_comments":
		client.CloseStream()
	}
}

func marshalEnvelope(env wsEnvelope) []byte {
	data, err := json.Marshal(env)
	if err != nil {
		logger.Error("Failed to marshal websocket payload: %v", err)
		return []byte("{}")
	}
	return data
}

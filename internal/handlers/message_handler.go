package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles private messages between friends
type MessageHandler struct {
	messages      *services.MessageService
	relationships *services.RelationshipService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messages *services.MessageService, relationships *services.RelationshipService) *MessageHandler {
	return &MessageHandler{messages: messages, relationships: relationships}
}

// RegisterMessageRoutes registers private message routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/mensajes", h.GetMessages)
	g.POST("/enviar_mensaje/:id", h.SendMessage)
	g.POST("/marcar_leido/:id", h.MarkRead)
}

// GetMessages shows the inbox, the outbox and the friends that can be written to
func (h *MessageHandler) GetMessages(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUser(c)

	inbox, err := h.messages.Inbox(ctx, userID)
	if err != nil {
		return fail(c, err, "/home")
	}
	outbox, err := h.messages.Outbox(ctx, userID)
	if err != nil {
		return fail(c, err, "/home")
	}
	friends, err := h.relationships.ListFriends(ctx, userID)
	if err != nil {
		return fail(c, err, "/home")
	}

	return render(c, http.StatusOK, "mensajes", echo.Map{
		"Title":   "Mensajes",
		"Inbox":   inbox,
		"Outbox":  outbox,
		"Friends": friends,
	})
}

// SendMessage delivers a private message to a friend
func (h *MessageHandler) SendMessage(c echo.Context) error {
	receiverID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El mensaje es demasiado largo")
		return redirectBack(c, "/mensajes")
	}

	msg, err := h.messages.Send(c.Request().Context(), currentUser(c), receiverID, req.Body)
	if err != nil {
		return fail(c, err, "/mensajes")
	}
	if msg != nil {
		setFlash(c, "success", "Mensaje enviado")
	}
	return redirectBack(c, "/mensajes")
}

// MarkRead flags a received message as read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	messageID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.messages.MarkRead(c.Request().Context(), messageID, currentUser(c)); err != nil {
		return fail(c, err, "/mensajes")
	}
	return c.Redirect(http.StatusFound, "/mensajes")
}

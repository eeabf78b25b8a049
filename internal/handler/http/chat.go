package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/ws"
)

type ChatHandler interface {
	ListGroups(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	CreateGroup(w http.ResponseWriter, r *http.Request)
	UpdateGroup(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
	Messages(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	UnreadStatus(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type ChatHandlerImpl struct {
	chatService chat.ChatService
	jwtService  jwt.Service
	hub         *ws.Hub
	upgrader    websocket.Upgrader
}

func NewChatHandler(chatService chat.ChatService, jwtService jwt.Service, hub *ws.Hub) ChatHandler {
	return &ChatHandlerImpl{
		chatService: chatService,
		jwtService:  jwtService,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the frontend origin; auth is
			// enforced by the short-lived stream token instead.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ListGroups implements ChatHandler.
func (h *ChatHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	groups, err := h.chatService.ListGroups(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}

// GetGroup implements ChatHandler.
func (h *ChatHandlerImpl) GetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.chatService.GetGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, group)
}

// CreateGroup implements ChatHandler.
func (h *ChatHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req chat.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	group, err := h.chatService.CreateGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Group created", group)
}

// UpdateGroup implements ChatHandler.
func (h *ChatHandlerImpl) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req chat.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	group, err := h.chatService.UpdateGroup(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, group)
}

// DeleteGroup implements ChatHandler.
func (h *ChatHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.DeleteGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Group deleted", nil)
}

// Messages implements ChatHandler.
func (h *ChatHandlerImpl) Messages(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	messages, err := h.chatService.Messages(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, messages)
}

// Send implements ChatHandler.
func (h *ChatHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req chat.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	message, err := h.chatService.Send(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Message sent", message)
}

// UnreadStatus implements ChatHandler.
func (h *ChatHandlerImpl) UnreadStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unread, err := h.chatService.HasUnread(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]bool{"has_unread": unread})
}

// MarkRead implements ChatHandler.
func (h *ChatHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.chatService.MarkRead(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Group marked as read", nil)
}

// Stream implements ChatHandler. It upgrades the connection to a websocket
// that pushes new messages for one group. Browsers cannot set headers on
// websocket requests, so auth uses a short-lived token in the query string.
func (h *ChatHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ValidateSSEToken(r.URL.Query().Get("token"))
	if err != nil {
		response.Unauthorized(w, "Invalid or expired stream token")
		return
	}

	groupID := chi.URLParam(r, "id")
	if _, err := h.chatService.Messages(r.Context(), actor, groupID); err != nil {
		response.HandleError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "error", err, "group_id", groupID)
		return
	}

	client := ws.NewClient(h.hub, conn, groupID)
	client.Start()
}

package chat

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/sse"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/ws"
)

type ChatServiceImpl struct {
	groupRepo    chat.GroupRepository
	messageRepo  chat.MessageRepository
	statusRepo   chat.ReadStatusRepository
	employeeRepo employee.EmployeeRepository
	adminRepo    admin.ProfileRepository
	hub          *ws.Hub
	events       *sse.Hub
	now          func() time.Time
}

func NewChatService(
	groupRepo chat.GroupRepository,
	messageRepo chat.MessageRepository,
	statusRepo chat.ReadStatusRepository,
	employeeRepo employee.EmployeeRepository,
	adminRepo admin.ProfileRepository,
	hub *ws.Hub,
	events *sse.Hub,
) chat.ChatService {
	return &ChatServiceImpl{
		groupRepo:    groupRepo,
		messageRepo:  messageRepo,
		statusRepo:   statusRepo,
		employeeRepo: employeeRepo,
		adminRepo:    adminRepo,
		hub:          hub,
		events:       events,
		now:          time.Now,
	}
}

// CreateGroup implements chat.ChatService.
func (s *ChatServiceImpl) CreateGroup(ctx context.Context, req chat.CreateGroupRequest) (chat.Group, error) {
	if err := req.Validate(); err != nil {
		return chat.Group{}, err
	}

	members := req.Members
	if members == nil {
		members = []string{}
	}

	group := chat.Group{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Topic:     req.Topic,
		CreatedAt: s.now(),
		Members:   members,
	}
	return s.groupRepo.Create(ctx, group)
}

// UpdateGroup implements chat.ChatService.
func (s *ChatServiceImpl) UpdateGroup(ctx context.Context, id string, req chat.UpdateGroupRequest) (chat.Group, error) {
	if err := req.Validate(); err != nil {
		return chat.Group{}, err
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return chat.Group{}, err
	}

	group.Name = req.Name
	group.Topic = req.Topic
	if req.Members != nil {
		group.Members = req.Members
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return chat.Group{}, err
	}
	return group, nil
}

// DeleteGroup implements chat.ChatService.
func (s *ChatServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	return s.groupRepo.Delete(ctx, id)
}

// ListGroups implements chat.ChatService.
func (s *ChatServiceImpl) ListGroups(ctx context.Context, actor auth.Actor) ([]chat.Group, error) {
	var (
		groups []chat.Group
		err    error
	)
	if actor.IsAdmin() {
		groups, err = s.groupRepo.List(ctx)
	} else {
		groups, err = s.groupRepo.ListByMember(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list chat groups: %w", err)
	}
	if groups == nil {
		groups = []chat.Group{}
	}
	return groups, nil
}

// GetGroup implements chat.ChatService.
func (s *ChatServiceImpl) GetGroup(ctx context.Context, id string) (chat.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// Messages implements chat.ChatService.
func (s *ChatServiceImpl) Messages(ctx context.Context, actor auth.Actor, groupID string) ([]chat.Message, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !slices.Contains(group.Members, actor.ID) {
		return nil, chat.ErrNotGroupMember
	}

	messages, err := s.messageRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	return messages, nil
}

// Send implements chat.ChatService.
func (s *ChatServiceImpl) Send(ctx context.Context, actor auth.Actor, groupID string, req chat.SendMessageRequest) (chat.Message, error) {
	if err := req.Validate(); err != nil {
		return chat.Message{}, err
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return chat.Message{}, err
	}

	var senderName, senderAvatar string
	if actor.IsAdmin() {
		profile, err := s.adminRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return chat.Message{}, err
		}
		senderName = profile.Name + " (Admin)"
		senderAvatar = profile.Avatar
	} else {
		if !slices.Contains(group.Members, actor.ID) {
			return chat.Message{}, chat.ErrNotGroupMember
		}
		emp, err := s.employeeRepo.GetByID(ctx, actor.ID)
		if err != nil {
			return chat.Message{}, err
		}
		senderName = emp.Name
		senderAvatar = emp.Avatar
	}

	msg := chat.Message{
		ID:           uuid.NewString(),
		GroupID:      groupID,
		SenderID:     actor.ID,
		SenderName:   senderName,
		SenderAvatar: senderAvatar,
		Text:         req.Text,
		CreatedAt:    s.now(),
	}

	created, err := s.messageRepo.Create(ctx, msg)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to store message: %w", err)
	}

	// Live fan-out: websocket to open group views, SSE unread ping to members.
	s.hub.Broadcast(groupID, ws.FrameTypeMessage, created)

	recipients := make([]string, 0, len(group.Members))
	for _, memberID := range group.Members {
		if memberID != actor.ID {
			recipients = append(recipients, memberID)
		}
	}
	s.events.PublishToMany(recipients, sse.Event{
		Event: sse.EventChatUnread,
		Data:  map[string]string{"group_id": groupID},
	})

	return created, nil
}

// HasUnread implements chat.ChatService.
func (s *ChatServiceImpl) HasUnread(ctx context.Context, actor auth.Actor) (bool, error) {
	groups, err := s.ListGroups(ctx, actor)
	if err != nil {
		return false, err
	}

	for _, group := range groups {
		latest, err := s.messageRepo.Latest(ctx, group.ID)
		if err != nil {
			return false, fmt.Errorf("failed to find latest message: %w", err)
		}
		if latest == nil {
			continue
		}
		// Your own message never flags the group unread.
		if latest.SenderID == actor.ID {
			continue
		}

		status, err := s.statusRepo.Get(ctx, actor.ID, group.ID)
		if err != nil {
			return false, fmt.Errorf("failed to load read status: %w", err)
		}
		if status == nil {
			return true, nil
		}
		if latest.CreatedAt.After(status.LastRead) {
			return true, nil
		}
	}
	return false, nil
}

// MarkRead implements chat.ChatService.
func (s *ChatServiceImpl) MarkRead(ctx context.Context, actor auth.Actor, groupID string) error {
	return s.statusRepo.Upsert(ctx, chat.ReadStatus{
		UserID:   actor.ID,
		GroupID:  groupID,
		LastRead: s.now(),
	})
}

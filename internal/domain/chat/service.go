package chat

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
)

// ChatService defines business logic for group chat and per-user read state
type ChatService interface {
	// CreateGroup creates a chat group (admin)
	CreateGroup(ctx context.Context, req CreateGroupRequest) (Group, error)

	// UpdateGroup edits a group's name, topic and member set (admin)
	UpdateGroup(ctx context.Context, id string, req UpdateGroupRequest) (Group, error)

	// DeleteGroup removes a group together with its messages and read state (admin)
	DeleteGroup(ctx context.Context, id string) error

	// ListGroups returns the groups visible to the actor: all of them for an
	// admin, member groups for an employee
	ListGroups(ctx context.Context, actor auth.Actor) ([]Group, error)

	GetGroup(ctx context.Context, id string) (Group, error)

	// Messages returns a group's messages, oldest first. Employees must be members.
	Messages(ctx context.Context, actor auth.Actor, groupID string) ([]Message, error)

	// Send appends a message from the actor. Employees must be members; admin
	// senders are labelled with an " (Admin)" name suffix.
	Send(ctx context.Context, actor auth.Actor, groupID string, req SendMessageRequest) (Message, error)

	// HasUnread reports whether any group visible to the actor holds a message
	// newer than the actor's read watermark. Self-authored messages never count.
	HasUnread(ctx context.Context, actor auth.Actor) (bool, error)

	// MarkRead moves the actor's watermark for a group to now. Idempotent.
	MarkRead(ctx context.Context, actor auth.Actor, groupID string) error
}

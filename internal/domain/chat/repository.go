package chat

import "context"

type GroupRepository interface {
	Create(ctx context.Context, group Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	Update(ctx context.Context, group Group) error

	// Delete removes the group and cascades its messages and read-status rows
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]Group, error)
	ListByMember(ctx context.Context, employeeID string) ([]Group, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg Message) (Message, error)

	// ListByGroup returns the group's messages sorted by CreatedAt ascending
	ListByGroup(ctx context.Context, groupID string) ([]Message, error)

	// Latest returns the newest message of a group, or nil when the group is empty
	Latest(ctx context.Context, groupID string) (*Message, error)
}

type ReadStatusRepository interface {
	Get(ctx context.Context, userID string, groupID string) (*ReadStatus, error)
	Upsert(ctx context.Context, status ReadStatus) error
}

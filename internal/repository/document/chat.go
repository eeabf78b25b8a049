package document

import (
	"context"
	"slices"
	"sort"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
)

type chatGroupRepositoryImpl struct {
	store *Store
}

// NewChatGroupRepository creates a new chat group repository backed by the store
func NewChatGroupRepository(store *Store) chat.GroupRepository {
	return &chatGroupRepositoryImpl{store: store}
}

func (r *chatGroupRepositoryImpl) Create(ctx context.Context, group chat.Group) (chat.Group, error) {
	err := r.store.Mutate(func(doc *Document) error {
		doc.ChatGroups = append(doc.ChatGroups, group)
		return nil
	})
	if err != nil {
		return chat.Group{}, err
	}
	return group, nil
}

func (r *chatGroupRepositoryImpl) GetByID(ctx context.Context, id string) (chat.Group, error) {
	var found chat.Group
	err := r.store.View(func(doc *Document) error {
		for _, g := range doc.ChatGroups {
			if g.ID == id {
				found = g
				return nil
			}
		}
		return chat.ErrGroupNotFound
	})
	return found, err
}

func (r *chatGroupRepositoryImpl) Update(ctx context.Context, group chat.Group) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.ChatGroups {
			if doc.ChatGroups[i].ID == group.ID {
				doc.ChatGroups[i] = group
				return nil
			}
		}
		return chat.ErrGroupNotFound
	})
}

func (r *chatGroupRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Mutate(func(doc *Document) error {
		idx := -1
		for i := range doc.ChatGroups {
			if doc.ChatGroups[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return chat.ErrGroupNotFound
		}
		doc.ChatGroups = append(doc.ChatGroups[:idx], doc.ChatGroups[idx+1:]...)

		// Cascade messages and read watermarks of the deleted group.
		keptMsgs := doc.ChatMessages[:0]
		for _, msg := range doc.ChatMessages {
			if msg.GroupID != id {
				keptMsgs = append(keptMsgs, msg)
			}
		}
		doc.ChatMessages = keptMsgs

		keptStatus := doc.UserChatStatus[:0]
		for _, st := range doc.UserChatStatus {
			if st.GroupID != id {
				keptStatus = append(keptStatus, st)
			}
		}
		doc.UserChatStatus = keptStatus
		return nil
	})
}

func (r *chatGroupRepositoryImpl) List(ctx context.Context) ([]chat.Group, error) {
	var out []chat.Group
	err := r.store.View(func(doc *Document) error {
		out = append([]chat.Group(nil), doc.ChatGroups...)
		return nil
	})
	return out, err
}

func (r *chatGroupRepositoryImpl) ListByMember(ctx context.Context, employeeID string) ([]chat.Group, error) {
	var out []chat.Group
	err := r.store.View(func(doc *Document) error {
		for _, g := range doc.ChatGroups {
			if slices.Contains(g.Members, employeeID) {
				out = append(out, g)
			}
		}
		return nil
	})
	return out, err
}

type chatMessageRepositoryImpl struct {
	store *Store
}

// NewChatMessageRepository creates a new chat message repository backed by the store
func NewChatMessageRepository(store *Store) chat.MessageRepository {
	return &chatMessageRepositoryImpl{store: store}
}

func (r *chatMessageRepositoryImpl) Create(ctx context.Context, msg chat.Message) (chat.Message, error) {
	err := r.store.Mutate(func(doc *Document) error {
		doc.ChatMessages = append(doc.ChatMessages, msg)
		return nil
	})
	if err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

func (r *chatMessageRepositoryImpl) ListByGroup(ctx context.Context, groupID string) ([]chat.Message, error) {
	var out []chat.Message
	err := r.store.View(func(doc *Document) error {
		for _, msg := range doc.ChatMessages {
			if msg.GroupID == groupID {
				out = append(out, msg)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *chatMessageRepositoryImpl) Latest(ctx context.Context, groupID string) (*chat.Message, error) {
	var latest *chat.Message
	err := r.store.View(func(doc *Document) error {
		for i := range doc.ChatMessages {
			msg := doc.ChatMessages[i]
			if msg.GroupID != groupID {
				continue
			}
			if latest == nil || msg.CreatedAt.After(latest.CreatedAt) {
				m := msg
				latest = &m
			}
		}
		return nil
	})
	return latest, err
}

type readStatusRepositoryImpl struct {
	store *Store
}

// NewReadStatusRepository creates a new read watermark repository backed by the store
func NewReadStatusRepository(store *Store) chat.ReadStatusRepository {
	return &readStatusRepositoryImpl{store: store}
}

func (r *readStatusRepositoryImpl) Get(ctx context.Context, userID string, groupID string) (*chat.ReadStatus, error) {
	var found *chat.ReadStatus
	err := r.store.View(func(doc *Document) error {
		for i := range doc.UserChatStatus {
			if doc.UserChatStatus[i].UserID == userID && doc.UserChatStatus[i].GroupID == groupID {
				st := doc.UserChatStatus[i]
				found = &st
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *readStatusRepositoryImpl) Upsert(ctx context.Context, status chat.ReadStatus) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.UserChatStatus {
			if doc.UserChatStatus[i].UserID == status.UserID && doc.UserChatStatus[i].GroupID == status.GroupID {
				doc.UserChatStatus[i] = status
				return nil
			}
		}
		doc.UserChatStatus = append(doc.UserChatStatus, status)
		return nil
	})
}

package chat

import "time"

// Group is a chat room administered by admins. Members is the set of employee
// IDs allowed to read and post; admins see every group.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"createdAt"`
	Members   []string  `json:"members"`
}

// Message is append-only; messages are removed only when their group is deleted.
// SenderID may reference an employee or an admin profile.
type Message struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	SenderID     string    `json:"employeeId"`
	SenderName   string    `json:"employeeName"`
	SenderAvatar string    `json:"employeeAvatar"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReadStatus is the per-(user, group) watermark: a message is unread when its
// CreatedAt is strictly after LastRead.
type ReadStatus struct {
	UserID   string    `json:"userId"`
	GroupID  string    `json:"groupId"`
	LastRead time.Time `json:"lastRead"`
}

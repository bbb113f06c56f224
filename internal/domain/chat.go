package domain

import "time"

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Conversation is a dialog between two users. ParticipantA always holds the
// smaller user id, which keeps lookup of an existing dialog a single query.
type Conversation struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	ParticipantA int64 `json:"participant_a" gorm:"not null;uniqueIndex:idx_conversation_pair"`
	ParticipantB int64 `json:"participant_b" gorm:"not null;uniqueIndex:idx_conversation_pair"`

	// Optional link to the booking the dialog is about.
	BookingID *int64 `json:"booking_id,omitempty"`

	LastMessageAt time.Time `json:"last_message_at" gorm:"default:CURRENT_TIMESTAMP"`
	CreatedAt     time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`

	// Filled by the service, not stored.
	OtherUser   *User    `json:"other_user,omitempty" gorm:"-"`
	LastMessage *Message `json:"last_message,omitempty" gorm:"-"`
	UnreadCount int      `json:"unread_count" gorm:"-"`
}

func (Conversation) TableName() string { return "conversations" }

type Message struct {
	ID             int64       `json:"id" gorm:"primaryKey"`
	ConversationID int64       `json:"conversation_id" gorm:"not null;index"`
	SenderID       int64       `json:"sender_id" gorm:"not null"`
	Content        string      `json:"content" gorm:"not null"`
	MessageType    MessageType `json:"message_type" gorm:"default:'text'"`
	IsRead         bool        `json:"is_read" gorm:"default:false"`
	ReadAt         *time.Time  `json:"read_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`

	Sender *User `json:"sender,omitempty" gorm:"-"`
}

func (Message) TableName() string { return "messages" }

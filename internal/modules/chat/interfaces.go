package chat

import (
	"context"

	"tourbook/internal/domain"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *domain.Conversation) error
	GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error)
	GetConversationByParticipants(ctx context.Context, a, b int64) (*domain.Conversation, error)
	GetUserConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error)
	CreateMessage(ctx context.Context, msg *domain.Message) error
	GetMessagesAfter(ctx context.Context, conversationID, afterID int64, limit int) ([]domain.Message, error)
	GetLastMessage(ctx context.Context, conversationID int64) (*domain.Message, error)
	CountUnread(ctx context.Context, conversationID, userID int64) (int64, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, userID int64) (int64, error)
	UpdateLastMessageAt(ctx context.Context, conversationID int64) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

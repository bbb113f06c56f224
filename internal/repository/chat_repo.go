package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateConversation(ctx context.Context, conv *domain.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *ChatRepository) GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	var conv domain.Conversation
	tx := r.db.WithContext(ctx).First(&conv, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &conv, nil
}

// GetConversationByParticipants expects a < b (the service normalizes order).
func (r *ChatRepository) GetConversationByParticipants(ctx context.Context, a, b int64) (*domain.Conversation, error) {
	var conv domain.Conversation
	tx := r.db.WithContext(ctx).
		Where("participant_a = ? AND participant_b = ?", a, b).
		First(&conv)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &conv, nil
}

func (r *ChatRepository) GetUserConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error) {
	var convs []domain.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("last_message_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&convs).Error
	return convs, err
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetMessagesAfter returns messages with id strictly greater than afterID in
// ascending order. afterID 0 returns the whole conversation.
func (r *ChatRepository) GetMessagesAfter(ctx context.Context, conversationID, afterID int64, limit int) ([]domain.Message, error) {
	q := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID)
	if afterID > 0 {
		q = q.Where("id > ?", afterID)
	}

	var msgs []domain.Message
	err := q.Order("id ASC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) GetLastMessage(ctx context.Context, conversationID int64) (*domain.Message, error) {
	var msg domain.Message
	tx := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id DESC").
		First(&msg)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &msg, nil
}

func (r *ChatRepository) CountUnread(ctx context.Context, conversationID, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *ChatRepository) MarkMessagesAsRead(ctx context.Context, conversationID, userID int64) (int64, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Updates(map[string]any{"is_read": true, "read_at": now})
	return tx.RowsAffected, tx.Error
}

func (r *ChatRepository) UpdateLastMessageAt(ctx context.Context, conversationID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message_at", time.Now()).Error
}

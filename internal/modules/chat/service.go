package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"tourbook/internal/domain"
)

type Service struct {
	chats ChatRepository
	users UserReader
	hub   *Hub
}

// NewService accepts a nil hub; push delivery is then simply skipped and
// clients fall back to polling.
func NewService(chats ChatRepository, users UserReader, hub *Hub) *Service {
	return &Service{chats: chats, users: users, hub: hub}
}

// GetOrCreateConversation returns the existing dialog between the two users
// or creates one. Participants are stored in (smaller, larger) id order so a
// pair maps to exactly one row.
func (s *Service) GetOrCreateConversation(ctx context.Context, userID int64, req CreateConversationRequest) (*domain.Conversation, *domain.Message, error) {
	if req.ParticipantID == userID {
		return nil, nil, fmt.Errorf("%w: cannot start a conversation with yourself", ErrValidation)
	}

	other, err := s.users.GetByID(ctx, req.ParticipantID)
	if err != nil {
		return nil, nil, err
	}
	if other == nil {
		return nil, nil, fmt.Errorf("%w: participant does not exist", ErrValidation)
	}

	a, b := userID, req.ParticipantID
	if a > b {
		a, b = b, a
	}

	conv, err := s.chats.GetConversationByParticipants(ctx, a, b)
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		conv = &domain.Conversation{
			ParticipantA: a,
			ParticipantB: b,
			BookingID:    req.BookingID,
		}
		if err := s.chats.CreateConversation(ctx, conv); err != nil {
			// Two concurrent first messages race on the unique pair index;
			// the loser picks up the winner's row.
			if isUniqueViolation(err) {
				conv, err = s.chats.GetConversationByParticipants(ctx, a, b)
				if err != nil {
					return nil, nil, err
				}
				if conv == nil {
					return nil, nil, ErrNotFound
				}
			} else {
				return nil, nil, err
			}
		}
	}

	var initial *domain.Message
	if text := strings.TrimSpace(req.InitialMessage); text != "" {
		initial, err = s.sendMessage(ctx, conv, userID, text, domain.MessageTypeText)
		if err != nil {
			return nil, nil, err
		}
	}

	conv.OtherUser = other
	return conv, initial, nil
}

func (s *Service) GetUserConversations(ctx context.Context, userID int64, limit, offset int) ([]domain.Conversation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	convs, err := s.chats.GetUserConversations(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	for i := range convs {
		conv := &convs[i]

		otherID := conv.ParticipantA
		if otherID == userID {
			otherID = conv.ParticipantB
		}
		if other, err := s.users.GetByID(ctx, otherID); err == nil {
			conv.OtherUser = other
		}

		if last, err := s.chats.GetLastMessage(ctx, conv.ID); err == nil {
			conv.LastMessage = last
		}

		if unread, err := s.chats.CountUnread(ctx, conv.ID, userID); err == nil {
			conv.UnreadCount = int(unread)
		}
	}
	return convs, nil
}

// GetMessages returns messages with id greater than afterID in send order.
// Clients repeat the call with the last id they saw, so two overlapping
// polls can never interleave or reorder the stream.
func (s *Service) GetMessages(ctx context.Context, userID, conversationID, afterID int64, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	if _, err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	return s.chats.GetMessagesAfter(ctx, conversationID, afterID, limit)
}

func (s *Service) SendMessage(ctx context.Context, userID, conversationID int64, req SendMessageRequest) (*domain.Message, error) {
	text := strings.TrimSpace(req.Content)
	if text == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrValidation)
	}

	conv, err := s.requireParticipant(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}
	return s.sendMessage(ctx, conv, userID, text, domain.MessageTypeText)
}

func (s *Service) MarkAsRead(ctx context.Context, userID, conversationID int64) (int64, error) {
	if _, err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return 0, err
	}
	return s.chats.MarkMessagesAsRead(ctx, conversationID, userID)
}

// isUniqueViolation matches both the postgres error code and the sqlite
// message used in local development.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Service) requireParticipant(ctx context.Context, userID, conversationID int64) (*domain.Conversation, error) {
	conv, err := s.chats.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrNotFound
	}
	if conv.ParticipantA != userID && conv.ParticipantB != userID {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

func (s *Service) sendMessage(ctx context.Context, conv *domain.Conversation, senderID int64, content string, msgType domain.MessageType) (*domain.Message, error) {
	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
		MessageType:    msgType,
	}
	if err := s.chats.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.chats.UpdateLastMessageAt(ctx, conv.ID); err != nil {
		return nil, err
	}

	if s.hub != nil {
		recipient := conv.ParticipantA
		if recipient == senderID {
			recipient = conv.ParticipantB
		}
		s.hub.Push(senderID, recipient, Event{
			Type:           EventNewMessage,
			ConversationID: conv.ID,
			Message:        msg,
		})
	}
	return msg, nil
}

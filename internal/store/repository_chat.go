package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/models"
)

// chatRepository is the PostgreSQL-backed implementation of
// [ChatRepository] over the "chats" and "chat_messages" tables.
type chatRepository struct {
	*DB
	logger *logger.Logger
}

// NewChatRepository constructs a [ChatRepository].
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *chatRepository) CreateChat(ctx context.Context, chat models.Chat) (models.Chat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertChatQuery(chat)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.CreateChat").Msg("failed to build query")
		return models.Chat{}, err
	}

	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&chat.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "chatRepository.CreateChat").
			Str("chat_id", chat.ChatID).
			Msg("failed to insert chat")
		return models.Chat{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return chat, nil
}

func (c *chatRepository) GetChat(ctx context.Context, userID int64, chatID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetChatQuery(userID, chatID)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.GetChat").Msg("failed to build query")
		return models.Chat{}, err
	}

	var chat models.Chat
	scanErr := c.DB.QueryRowContext(ctx, query, args...).Scan(
		&chat.ChatID,
		&chat.UserID,
		&chat.Title,
		&chat.SystemPrompt,
		&chat.Encrypted,
		&chat.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Chat{}, ErrChatNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "chatRepository.GetChat").
			Str("chat_id", chatID).
			Msg("failed to scan chat row")
		return models.Chat{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return chat, nil
}

func (c *chatRepository) AddMessage(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertChatMessageQuery(message)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.AddMessage").Msg("failed to build query")
		return models.ChatMessage{}, err
	}

	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&message.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "chatRepository.AddMessage").
			Str("chat_id", message.ChatID).
			Msg("failed to insert chat message")
		return models.ChatMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return message, nil
}

// ListMessages returns the chat's messages oldest first.
func (c *chatRepository) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChatMessagesQuery(chatID)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.ListMessages").Msg("failed to build query")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "chatRepository.ListMessages").
			Str("chat_id", chatID).
			Msg("failed to execute query for chat messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0, 32)
	for rows.Next() {
		var m models.ChatMessage
		if scanErr := rows.Scan(&m.MessageID, &m.ChatID, &m.Role, &m.Content, &m.Encrypted, &m.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "chatRepository.ListMessages").
				Str("chat_id", chatID).
				Msg("failed to scan chat message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		messages = append(messages, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "chatRepository.ListMessages").
			Str("chat_id", chatID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}

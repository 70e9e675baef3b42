package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/models"
)

// chatService is the concrete implementation of ChatService.
//
// Every text field is sealed with the content envelope before it reaches
// the repository and rows are written with encrypted=true. Reads go through
// DecryptMarked so rows from before encryption at rest still render.
type chatService struct {
	chats   store.ChatRepository
	content crypto.ContentEnvelope
	ids     idGenerator

	logger *logger.Logger
}

func (c *chatService) CreateChat(ctx context.Context, userID int64, req models.CreateChatRequest) (models.Chat, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Chat{}, ErrInvalidDataProvided
	}

	title, err := c.seal(req.Title)
	if err != nil {
		return models.Chat{}, err
	}

	chat := models.Chat{
		ChatID:    c.ids.Generate(),
		UserID:    userID,
		Title:     title,
		Encrypted: true,
	}
	if req.SystemPrompt != nil {
		prompt, err := c.content.Encrypt(*req.SystemPrompt)
		if err != nil {
			return models.Chat{}, fmt.Errorf("encrypt system prompt: %w", err)
		}
		chat.SystemPrompt = prompt
	}

	created, err := c.chats.CreateChat(ctx, chat)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.CreateChat").Int64("user_id", userID).Msg("saving chat failed")
		return models.Chat{}, fmt.Errorf("save chat: %w", err)
	}

	return c.openChat(created), nil
}

func (c *chatService) GetChat(ctx context.Context, userID int64, chatID string) (models.Chat, error) {
	chat, err := c.chats.GetChat(ctx, userID, chatID)
	if err != nil {
		return models.Chat{}, err
	}

	return c.openChat(chat), nil
}

func (c *chatService) AddMessage(ctx context.Context, userID int64, chatID string, req models.AddMessageRequest) (models.ChatMessage, error) {
	if !req.Role.Valid() {
		return models.ChatMessage{}, ErrInvalidChatRole
	}
	if req.Content == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	if _, err := c.chats.GetChat(ctx, userID, chatID); err != nil {
		return models.ChatMessage{}, err
	}

	content, err := c.seal(req.Content)
	if err != nil {
		return models.ChatMessage{}, err
	}

	msg, err := c.chats.AddMessage(ctx, models.ChatMessage{
		MessageID: c.ids.Generate(),
		ChatID:    chatID,
		Role:      req.Role,
		Content:   content,
		Encrypted: true,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.AddMessage").Str("chat_id", chatID).Msg("saving message failed")
		return models.ChatMessage{}, fmt.Errorf("save message: %w", err)
	}

	msg.Content = c.content.DecryptMarked(msg.Content, msg.Encrypted)
	return msg, nil
}

func (c *chatService) ListMessages(ctx context.Context, userID int64, chatID string) ([]models.ChatMessage, error) {
	if _, err := c.chats.GetChat(ctx, userID, chatID); err != nil {
		return nil, err
	}

	messages, err := c.chats.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	for i := range messages {
		messages[i].Content = c.content.DecryptMarked(messages[i].Content, messages[i].Encrypted)
	}

	return messages, nil
}

// seal encrypts a required text field.
func (c *chatService) seal(text string) (string, error) {
	sealed, err := c.content.Encrypt(text)
	if err != nil {
		return "", fmt.Errorf("encrypt content: %w", err)
	}
	if sealed == nil {
		return "", nil
	}
	return *sealed, nil
}

func (c *chatService) openChat(chat models.Chat) models.Chat {
	chat.Title = c.content.DecryptMarked(chat.Title, chat.Encrypted)
	if chat.SystemPrompt != nil {
		prompt := c.content.DecryptMarked(*chat.SystemPrompt, chat.Encrypted)
		chat.SystemPrompt = &prompt
	}
	return chat
}

package models

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r ChatRole) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Chat is a conversation about a user's recordings.
//
// Title and SystemPrompt are stored as content envelopes when Encrypted is
// true. Rows written before encryption was introduced keep Encrypted false
// and hold plaintext.
type Chat struct {
	ChatID       string    `json:"chat_id"`
	UserID       int64     `json:"-"`
	Title        string    `json:"title"`
	SystemPrompt *string   `json:"system_prompt,omitempty"`
	Encrypted    bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Chat model.
func (c *Chat) TableName() string {
	return "chats"
}

// ChatMessage is a single message inside a Chat. Content follows the same
// encryption marking as Chat.Title.
type ChatMessage struct {
	MessageID string    `json:"message_id"`
	ChatID    string    `json:"chat_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Encrypted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ChatMessage model.
func (m *ChatMessage) TableName() string {
	return "chat_messages"
}

// CreateChatRequest is the body of a chat creation call.
type CreateChatRequest struct {
	Title        string  `json:"title"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
}

// AddMessageRequest is the body of a message append call.
type AddMessageRequest struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

package model

import (
	"encoding/json"
	"strconv"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentType tells how ConversationMessage.Content is encoded.
type ContentType string

const (
	ContentTypeText            ContentType = "text"
	ContentTypeRecommendations ContentType = "recommendations"
)

type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	Movies    []MovieRecommendation
	CreatedAt time.Time
	// Pending marks the assistant placeholder of an unresolved send.
	Pending bool
}

type ConversationMessage struct {
	ID             int64       `json:"id" db:"id"`
	ConversationID int64       `json:"conversation_id" db:"conversation_id"`
	Role           Role        `json:"role" db:"role"`
	Content        string      `json:"content" db:"content"`
	ContentType    ContentType `json:"content_type,omitempty" db:"content_type"`
	CreatedAt      Timestamp   `json:"created_at" db:"created_at"`
}

type RecommendationPayload struct {
	Message string                `json:"message"`
	Movies  []MovieRecommendation `json:"movies"`
}

// ChatMessage converts a stored history entry into its display form. A
// recommendations entry whose content cannot be decoded is shown as plain text.
func (m ConversationMessage) ChatMessage() ChatMessage {
	msg := ChatMessage{
		ID:        strconv.FormatInt(m.ID, 10),
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Time,
	}

	if m.ContentType != ContentTypeRecommendations {
		return msg
	}

	var payload RecommendationPayload
	if err := json.Unmarshal([]byte(m.Content), &payload); err != nil {
		return msg
	}

	msg.Content = payload.Message
	msg.Movies = payload.Movies
	return msg
}

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	// ConversationID is sent as null to start a new conversation.
	ConversationID *int64 `json:"conversation_id"`
}

type ChatResponse struct {
	Message        string                `json:"message"`
	ConversationID int64                 `json:"conversation_id"`
	Movies         []MovieRecommendation `json:"movies,omitempty"`
}

package model

import "sort"

type Conversation struct {
	ID            int64     `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	StartedAt     Timestamp `json:"started_at" db:"started_at"`
	LastMessageAt Timestamp `json:"last_message_at" db:"last_message_at"`
}

type ConversationList []Conversation

// SortByLastMessage returns a copy ordered by LastMessageAt, most recent first.
func SortByLastMessage(conversations []Conversation) []Conversation {
	sorted := make([]Conversation, len(conversations))
	copy(sorted, conversations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastMessageAt.After(sorted[j].LastMessageAt.Time)
	})
	return sorted
}

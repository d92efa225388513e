package chat

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/s21platform/moviemagic/internal/model"
)

func timeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// DisplayName turns an email into a short name: "ada@example.com" becomes "Ada".
// Guests have no display name.
func DisplayName(userID string) string {
	if userID == "" || userID == model.GuestUserID {
		return ""
	}

	name, _, _ := strings.Cut(userID, "@")
	if name == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}

// GreetingText is the opening assistant line of an empty conversation.
func GreetingText(userID string, now time.Time) string {
	part := timeOfDay(now)
	if name := DisplayName(userID); name != "" {
		return part + ", " + name + "!"
	}
	return "Good " + strings.ToLower(part) + "!"
}

// Package format renders movie metadata for display.
package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	TMDBImageBaseURL = "https://image.tmdb.org/t/p"

	PosterSize   = "w342"
	BackdropSize = "w780"
	ProfileSize  = "w185"
)

const (
	notAvailable   = "N/A"
	noRating       = "-"
	unknownRuntime = "Unknown runtime"
	dateLayout     = "2006-01-02"
)

// ReleaseYear returns the year part of an ISO release date.
func ReleaseYear(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return notAvailable
	}

	if t, err := time.Parse(dateLayout, date); err == nil {
		return fmt.Sprintf("%d", t.Year())
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return fmt.Sprintf("%d", t.Year())
	}
	return notAvailable
}

func Runtime(minutes int) string {
	if minutes <= 0 {
		return unknownRuntime
	}

	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func Rating(rating *float64) string {
	if rating == nil {
		return noRating
	}
	return fmt.Sprintf("%.1f", *rating)
}

// RelativeTime describes how long ago t was, relative to now. Anything older
// than a week is printed as a date.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return noRating
	}

	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}

	return t.Local().Format("Jan 2, 2006")
}

// ImageURL builds a TMDB CDN link. An empty path yields an empty string.
func ImageURL(path *string, size string) string {
	if path == nil || *path == "" {
		return ""
	}
	if size == "" {
		size = PosterSize
	}
	return fmt.Sprintf("%s/%s%s", TMDBImageBaseURL, size, *path)
}

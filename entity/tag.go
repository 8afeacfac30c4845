package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is the global registry row behind autocomplete ranking. usage_count
// only ever grows; detaching a tag from an asset does not decrement it.
type Tag struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	UsageCount int64     `json:"usage_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

// NormalizeTagName trims whitespace and lowercases. An empty result means
// the name is unusable.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AttachTag appends the normalized name to the set. Attaching a name that is
// already present, or empty after normalization, is a no-op; the second
// return value reports whether the set changed.
func AttachTag(tags []string, name string) ([]string, bool) {
	normalized := NormalizeTagName(name)
	if normalized == "" {
		return tags, false
	}
	for _, t := range tags {
		if t == normalized {
			return tags, false
		}
	}
	return append(tags, normalized), true
}

// DetachTag removes the normalized name from the set, preserving order.
func DetachTag(tags []string, name string) []string {
	normalized := NormalizeTagName(name)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != normalized {
			out = append(out, t)
		}
	}
	return out
}

// ParseTagList splits comma-separated input into normalized tag names,
// dropping entries that are empty after trimming.
func ParseTagList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := NormalizeTagName(p); name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}

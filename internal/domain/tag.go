package domain

import (
	"context"
	"strings"
)

// Tag is a label attached to offers.
// swagger:model Tag
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagRepository defines storage for tags.
type TagRepository interface {
	// EnsureTag returns the tag with the given name, creating it if missing.
	EnsureTag(ctx context.Context, name string) (*Tag, error)
	FindAll(ctx context.Context) ([]*Tag, error)
}

// ParseTagNames splits a comma separated tag list into trimmed, unique names,
// keeping the first occurrence order. Matching is case-insensitive.
func ParseTagNames(s string) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

package helpers

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slugify derives the default URL slug from a couple name: lowercased, with
// whitespace runs collapsed to single hyphens. It is deliberately
// deterministic; two identical couple names produce the same slug and
// collisions are handled at creation time, not here.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// RandomFileName returns a randomized storage filename that preserves the
// original file's extension.
func RandomFileName(original string) string {
	ext := filepath.Ext(original)
	return strings.ReplaceAll(uuid.New().String(), "-", "") + ext
}

// RandomSlugSuffix is appended to a slug that already exists.
func RandomSlugSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:4]
}

// FormatWeddingDate renders a ceremony date the way the invitation headers
// show it, e.g. "November 14, 2026".
func FormatWeddingDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

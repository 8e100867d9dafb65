package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"helpdesk/internal/shared/id"
)

const (
	randomPartLength = 6
	maxSanitizedName = 180
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFilename folds accents ("résumé" -> "resume") and replaces every
// character outside [A-Za-z0-9.-] with an underscore.
func SanitizeFilename(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}

	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, base)
	if err != nil {
		folded = base
	}

	sanitized := unsafeFilenameChars.ReplaceAllString(folded, "_")
	sanitized = strings.TrimLeft(sanitized, ".")
	if sanitized == "" {
		sanitized = "file"
	}

	if len(sanitized) > maxSanitizedName {
		ext := filepath.Ext(sanitized)
		if len(ext) > 16 {
			ext = ""
		}
		sanitized = sanitized[:maxSanitizedName-len(ext)] + ext
	}
	return sanitized
}

// GenerateStoredName builds "<unixMillis>-<random>-<sanitized original>".
func GenerateStoredName(original string, now time.Time) (string, error) {
	random, err := id.Generate(randomPartLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}
	return fmt.Sprintf("%d-%s-%s", now.UnixMilli(), random, SanitizeFilename(original)), nil
}

// Namer adapts GenerateStoredName to an injectable component.
type Namer struct{}

func (Namer) StoredName(original string, now time.Time) (string, error) {
	return GenerateStoredName(original, now)
}

package validation

import (
	"regexp"
	"strings"

	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,}$`)
	phoneNoise   = regexp.MustCompile(`[\s\-()]`)
)

// Destination reports whether value is a well-formed destination for kind.
// Unknown kinds are never valid.
func Destination(value string, kind entities.ChannelType) bool {
	switch kind {
	case entities.ChannelEmail:
		return emailPattern.MatchString(value)
	case entities.ChannelWhatsApp:
		return phonePattern.MatchString(StripPhone(value))
	default:
		return false
	}
}

// StripPhone removes the whitespace, hyphens and parentheses people type into phone numbers
func StripPhone(value string) string {
	return phoneNoise.ReplaceAllString(value, "")
}

// Normalize returns the form of a valid destination that gets stored
func Normalize(value string, kind entities.ChannelType) string {
	value = strings.TrimSpace(value)
	if kind == entities.ChannelWhatsApp {
		return StripPhone(value)
	}
	return value
}

// NormalizeCategories trims and lower-cases category ids, dropping blanks
// and duplicates while keeping the first-seen order.
func NormalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	controlRegex    = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	spaceRegex      = regexp.MustCompile(`\s+`)
	nonSlugRegex    = regexp.MustCompile(`[^a-z0-9]+`)
	phoneStripRegex = regexp.MustCompile(`[\s\-()]`)
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizePhone strips spaces, dashes and brackets from a phone number
func NormalizePhone(phone string) string {
	return phoneStripRegex.ReplaceAllString(strings.TrimSpace(phone), "")
}

// IsValidPhoneNumber checks a loosely international phone number
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// SanitizeString replaces control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlRegex.ReplaceAllString(s, " ")
	result = spaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Truncate shortens s to maxLength runes, adding an ellipsis when cut
func Truncate(s string, maxLength int) string {
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(r[:maxLength-3]) + "..."
}

// Slugify turns a display name into a lowercase URL path segment.
// Accents are folded ("drg. Ayu Lestari, Sp.Ort" -> "drg-ayu-lestari-sp-ort").
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	slug := nonSlugRegex.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	if len(local) <= 2 {
		return email
	}
	return local[:2] + strings.Repeat("*", len(local)-2) + "@" + domain
}

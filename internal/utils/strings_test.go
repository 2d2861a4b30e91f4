package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"patient@example.com", true},
		{"first.last+tag@clinic.co.id", true},
		{".dot@example.com", false},
		{"no-at-sign.com", false},
		{"user@-domain.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+62 812-3456-7890"))
	assert.True(t, IsValidPhoneNumber("(021) 5550 1234"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("call me"))
	assert.Equal(t, "+6281234567890", NormalizePhone(" +62 (812) 3456-7890 "))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "jane-doe"},
		{"drg. Ayu Lestari, Sp.Ort", "drg-ayu-lestari-sp-ort"},
		{"  José  Müller  ", "jose-muller"},
		{"---", ""},
		{"Clinic 24/7", "clinic-24-7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeString("  hello\t\n  world "))
	assert.Equal(t, "a b", SanitizeString("a\u0000b"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello w...", Truncate("hello world!", 10))
	assert.Equal(t, "...", Truncate("hello", 2))
	assert.Equal(t, "héll...", Truncate("héllo wörld", 7))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "pa*****@example.com", MaskEmail("patient@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "invalid", MaskEmail("invalid"))
}

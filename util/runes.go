package util

import (
	"unicode"
)

// IsPunctuation checks if a non-empty string consists entirely of
// punctuation or symbols, including the CJK and full-width blocks.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isPunct(r) {
			return false
		}
	}
	return true
}

func isPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms, minus the full-width letters and digits
	if r >= 0xFF00 && r <= 0xFFEF {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return false
}

// IsHan reports whether r is a Chinese character.
func IsHan(r rune) bool {
	if r >= 0x4E00 && r <= 0x9FFF {
		return true
	}
	return unicode.Is(unicode.Han, r)
}

// IsAlphaNum reports whether r is an ASCII letter or digit.
func IsAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

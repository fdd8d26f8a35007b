// Package parser turns romanized pinyin, in tone-mark or tone-number form,
// back into structured syllables.
package parser

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/teatak/pinyin/pinyin"
)

// ErrParsing is wrapped by every *ParsingError.
var ErrParsing = errors.New("pinyin parsing failure")

// ParsingError reports the text that could not be matched.
type ParsingError struct {
	Text   string
	Reason string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

func (e *ParsingError) Unwrap() error { return ErrParsing }

const wordCacheSize = 1 << 16

var wordCache = mustCache(wordCacheSize)

func mustCache(size int) *lru.Cache[string, []pinyin.Syllable] {
	c, err := lru.New[string, []pinyin.Syllable](size)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseSyllable parses the first syllable of text and returns it with the
// unconsumed remainder, in NFC form. Leading whitespace is skipped.
func ParseSyllable(text string) (pinyin.Syllable, string, error) {
	text = strings.TrimLeftFunc(norm.NFC.String(text), unicode.IsSpace)
	if text == "" {
		return pinyin.Syllable{}, "", &ParsingError{Text: text, Reason: "empty syllable"}
	}

	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	initial, n, ok := matchInitial(lower)
	if !ok {
		return pinyin.Syllable{}, "", &ParsingError{Text: text, Reason: "couldn't find initial"}
	}
	ft, m, ok := matchFinal(initial, lower[n:])
	if !ok {
		return pinyin.Syllable{}, "", &ParsingError{Text: text, Reason: "couldn't find final"}
	}

	s := pinyin.Syllable{
		Initial: initial,
		Final:   ft.final,
		Tone:    ft.tone,
		Capital: unicode.IsUpper(runes[0]),
	}
	return s, string(runes[n+m:]), nil
}

func matchInitial(lower []rune) (pinyin.Initial, int, bool) {
	for _, n := range []int{2, 1} {
		if len(lower) < n {
			continue
		}
		if initial, ok := initials[string(lower[:n])]; ok {
			return initial, n, true
		}
	}
	if vowelStarts[lower[0]] {
		return pinyin.Empty, 0, true
	}
	return pinyin.Empty, 0, false
}

// matchFinal tries the longest candidate first, since shorter finals are
// often prefixes of longer ones (a, an, ang).
func matchFinal(initial pinyin.Initial, lower []rune) (finalTone, int, bool) {
	forms := finalForms[initial]
	for n := min(maxFormLen, len(lower)); n > 0; n-- {
		if ft, ok := forms[string(lower[:n])]; ok {
			return ft, n, true
		}
	}
	return finalTone{}, 0, false
}

// ParseWord parses a run of syllables, optionally separated by whitespace,
// e.g. "yi1 ge5 ban4", "dong1xi5" or "Běijīng".
func ParseWord(text string) ([]pinyin.Syllable, error) {
	text = norm.NFC.String(text)
	if cached, ok := wordCache.Get(text); ok {
		return slices.Clone(cached), nil
	}

	var out []pinyin.Syllable
	rest := text
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}
		s, remaining, err := ParseSyllable(rest)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		rest = remaining
	}

	wordCache.Add(text, out)
	return slices.Clone(out), nil
}

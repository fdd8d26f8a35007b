package pinyin

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Syllable is one Mandarin syllable. It is a plain comparable value: two
// syllables are equal when all four fields are equal.
type Syllable struct {
	Initial Initial
	Final   Final
	Tone    Tone
	Capital bool
}

// New builds a lower-case syllable.
func New(initial Initial, final Final, tone Tone) Syllable {
	return Syllable{Initial: initial, Final: final, Tone: tone}
}

// RenderToneMark renders s with a diacritic, e.g. "nǚ", "yī", "quē".
// A syllable without a valid tone renders unmarked.
func RenderToneMark(s Syllable) string {
	runes := []rune(finalTexts[s.Initial][s.Final])
	if s.Tone.Valid() && s.Tone != ToneNeutral {
		idx := markIndex[s.Initial][s.Final]
		runes[idx] = toneMarks[runes[idx]][s.Tone-Tone1]
	}
	return capitalize(InitialText(s.Initial)+string(runes), s.Capital)
}

// RenderToneNumber renders s with a trailing tone digit, e.g. "nv3", "yi1".
// A syllable without a valid tone gets no digit.
func RenderToneNumber(s Syllable) string {
	text := InitialText(s.Initial) + strings.ReplaceAll(finalTexts[s.Initial][s.Final], "ü", "v")
	if s.Tone.Valid() {
		text += strconv.Itoa(s.Tone.Number())
	}
	return capitalize(text, s.Capital)
}

// ToneMark is shorthand for RenderToneMark(s).
func (s Syllable) ToneMark() string { return RenderToneMark(s) }

// ToneNumber is shorthand for RenderToneNumber(s).
func (s Syllable) ToneNumber() string { return RenderToneNumber(s) }

// String returns the tone-number form.
func (s Syllable) String() string { return RenderToneNumber(s) }

// WithTone returns a copy of s carrying tone t.
func (s Syllable) WithTone(t Tone) Syllable {
	s.Tone = t
	return s
}

func capitalize(s string, capital bool) string {
	if !capital || s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// Token is one span of converted text: a dictionary word or character with
// the reading chosen for it, or literal text passed through unconverted.
type Token struct {
	Text      string
	Syllables []Syllable
}

// Literal reports whether the token carries no reading.
func (t Token) Literal() bool { return len(t.Syllables) == 0 }

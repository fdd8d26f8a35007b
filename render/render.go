// Package render formats converted tokens as pinyin text.
package render

import (
	"strings"

	"github.com/teatak/pinyin/pinyin"
)

// Options selects the output form.
type Options struct {
	// ToneNumbers renders "ma3" instead of "mǎ".
	ToneNumbers bool `json:"tone_numbers"`
	// Spaces separates every syllable, not only words.
	Spaces bool `json:"spaces"`
}

// Syllable renders one syllable.
func Syllable(s pinyin.Syllable, opts Options) string {
	if opts.ToneNumbers {
		return pinyin.RenderToneNumber(s)
	}
	return pinyin.RenderToneMark(s)
}

// Token renders one token; literal tokens come back verbatim.
func Token(t pinyin.Token, opts Options) string {
	if t.Literal() {
		return t.Text
	}
	sep := ""
	if opts.Spaces {
		sep = " "
	}
	parts := make([]string, len(t.Syllables))
	for i, s := range t.Syllables {
		parts[i] = Syllable(s, opts)
	}
	return strings.Join(parts, sep)
}

// Format renders tokens separated by single spaces.
func Format(tokens []pinyin.Token, opts Options) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = Token(t, opts)
	}
	return strings.Join(parts, " ")
}

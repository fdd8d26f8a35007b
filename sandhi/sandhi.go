// Package sandhi rewrites tones that change with the following syllable.
package sandhi

import "github.com/teatak/pinyin/pinyin"

const (
	bu = '不'
	yi = '一'
)

// Rules selects the optional rewrites. 不 and 一 always become tone 2
// before a tone 4 syllable.
type Rules struct {
	// YiFalling also rewrites 一 to tone 4 before any other tone (一起
	// yìqǐ). Reference data does not apply it consistently.
	YiFalling bool
}

type character struct {
	char     rune
	syllable *pinyin.Syllable
}

// Apply walks the characters of tokens left to right and rewrites
// syllables in place. Callers own the syllable slices they pass in.
func Apply(tokens []pinyin.Token, rules Rules) {
	var prev *character
	for ti := range tokens {
		t := &tokens[ti]
		if t.Literal() {
			prev = nil
			continue
		}
		for i, r := range []rune(t.Text) {
			if i >= len(t.Syllables) {
				prev = nil
				break
			}
			cur := &character{char: r, syllable: &t.Syllables[i]}
			if prev != nil {
				rules.rewrite(prev, *cur.syllable)
			}
			prev = cur
		}
	}
}

func (r Rules) rewrite(prev *character, next pinyin.Syllable) {
	switch prev.char {
	case bu:
		if next.Tone == pinyin.Tone4 {
			prev.syllable.Tone = pinyin.Tone2
		}
	case yi:
		if next.Tone == pinyin.Tone4 {
			prev.syllable.Tone = pinyin.Tone2
		} else if r.YiFalling {
			prev.syllable.Tone = pinyin.Tone4
		}
	}
}

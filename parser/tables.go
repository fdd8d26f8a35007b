package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/teatak/pinyin/pinyin"
)

type finalTone struct {
	final pinyin.Final
	tone  pinyin.Tone
}

// Lookup tables built once at init from every valid initial/final pair.
var (
	initials    = map[string]pinyin.Initial{}
	finalForms  = map[pinyin.Initial]map[string]finalTone{}
	maxFormLen  int
	vowelStarts = map[rune]bool{}
)

func init() {
	for _, initial := range pinyin.Initials() {
		if initial != pinyin.Empty {
			initials[initial.String()] = initial
		}
		forms := map[string]finalTone{}
		for _, final := range pinyin.Finals() {
			if !pinyin.ValidCombination(initial, final) {
				continue
			}
			for _, tone := range pinyin.Tones() {
				for _, form := range spellings(initial, final, tone) {
					if _, taken := forms[form]; taken {
						continue
					}
					forms[form] = finalTone{final: final, tone: tone}
					if n := utf8.RuneCountInString(form); n > maxFormLen {
						maxFormLen = n
					}
					if initial == pinyin.Empty {
						r, _ := utf8.DecodeRuneInString(form)
						vowelStarts[r] = true
					}
				}
			}
		}
		finalForms[initial] = forms
	}
}

// spellings lists every accepted written form of final+tone after initial:
// the tone-mark form, the tone-number form, and the ü variants v and u:.
// Neutral tone is also accepted without a digit.
func spellings(initial pinyin.Initial, final pinyin.Final, tone pinyin.Tone) []string {
	s := pinyin.New(initial, final, tone)
	prefix := len(pinyin.InitialText(initial))
	marked := pinyin.RenderToneMark(s)[prefix:]
	plain := pinyin.FinalText(initial, final)
	digit := strconv.Itoa(tone.Number())

	bases := []string{plain}
	if strings.Contains(plain, "ü") {
		bases = append(bases,
			strings.ReplaceAll(plain, "ü", "v"),
			strings.ReplaceAll(plain, "ü", "u:"))
	}

	out := []string{marked}
	for _, b := range bases {
		out = append(out, b+digit)
		if tone == pinyin.ToneNeutral {
			out = append(out, b)
		}
	}
	return out
}

package pinyin

import (
	"fmt"
	"strings"
)

type vowelScan struct {
	count int
	first int
}

// Init-time tables, shared read-only by every renderer and by the parser.
var (
	finalVowels [numFinals]vowelScan
	finalTexts  [numInitials][numFinals]string
	markIndex   [numInitials][numFinals]int
)

func init() {
	for f := Final(0); f < numFinals; f++ {
		finalVowels[f] = scanVowels(f.Text())
	}
	for i := Initial(0); i < numInitials; i++ {
		for f := Final(0); f < numFinals; f++ {
			text := finalText(i, f)
			idx := vowelForToneMark(text)
			if idx < 0 {
				panic(fmt.Sprintf("pinyin: no vowel in final %q", text))
			}
			finalTexts[i][f] = text
			markIndex[i][f] = idx
		}
	}
}

func scanVowels(text string) vowelScan {
	scan := vowelScan{first: -1}
	for i, r := range []rune(text) {
		if isVowel(r) {
			if scan.first < 0 {
				scan.first = i
			}
			scan.count++
		}
	}
	return scan
}

var zeroInitialSpellings = map[Final]string{
	U:   "wu",
	Ui:  "wei",
	Un:  "wen",
	I:   "yi",
	Iu:  "you",
	In:  "yin",
	Ing: "ying",
}

// Dots are dropped after j, q and x since u cannot follow them.
var jqxSpellings = map[Final]string{
	V:   "u",
	Ve:  "ue",
	Van: "uan",
	Vn:  "un",
}

func finalText(initial Initial, final Final) string {
	text := final.Text()
	if initial == Empty {
		if s, ok := zeroInitialSpellings[final]; ok {
			return s
		}
		switch {
		case strings.HasPrefix(text, "i"):
			return "y" + text[len("i"):]
		case strings.HasPrefix(text, "u"):
			return "w" + text[len("u"):]
		case strings.HasPrefix(text, "ü"):
			return "yu" + text[len("ü"):]
		}
		return text
	}
	if initial == J || initial == Q || initial == X {
		if s, ok := jqxSpellings[final]; ok {
			return s
		}
	}
	return text
}

// vowelForToneMark returns the rune index in text that carries the tone mark,
// or -1 when text has no vowel.
func vowelForToneMark(text string) int {
	runes := []rune(text)
	scan := scanVowels(text)
	switch {
	case scan.count == 0:
		return -1
	case scan.count == 1:
		return scan.first
	}
	if i := runeIndex(runes, 'a'); i >= 0 {
		return i
	}
	if i := runeIndex(runes, 'e'); i >= 0 {
		return i
	}
	if strings.Contains(text, "ou") {
		return runeIndex(runes, 'o')
	}
	return scan.first + 1
}

func runeIndex(runes []rune, want rune) int {
	for i, r := range runes {
		if r == want {
			return i
		}
	}
	return -1
}

// InitialText returns the written initial, "" for Empty.
func InitialText(initial Initial) string {
	return initial.String()
}

// FinalText returns the final as written after initial, applying the
// zero-initial y/w spellings and dropping the dots of ü after j, q and x.
func FinalText(initial Initial, final Final) string {
	return finalTexts[initial][final]
}

// ValidCombination reports whether initial and final can form a Mandarin
// syllable.
func ValidCombination(initial Initial, final Final) bool {
	group := final.Group()
	switch initial {
	case J, Q, X:
		if group == GroupA || group == GroupU {
			return false
		}
	case G, K, H:
		if group == GroupI || group == GroupV {
			return false
		}
	case B, P, M, F:
		if group == GroupU {
			return final == U
		}
		if group == GroupV {
			return false
		}
	case Z, C, S, Zh, Ch, Sh, R:
		if group == GroupI || group == GroupV {
			return final == I
		}
	}
	if final == Er && initial != Empty {
		return false
	}
	return true
}

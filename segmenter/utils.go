package segmenter

import (
	"unicode"

	"github.com/teatak/pinyin/util"
)

// literal runs group runes of the same class
const (
	classSingle = iota
	classAlphaNum
	classSpace
	classASCIISymbol
)

func runClass(r rune) int {
	switch {
	case util.IsAlphaNum(r):
		return classAlphaNum
	case unicode.IsSpace(r):
		return classSpace
	case r < 128 && unicode.IsPrint(r):
		return classASCIISymbol
	default:
		return classSingle
	}
}

// literalKind classifies text the dictionary has no reading for.
func literalKind(text string, r rune) Kind {
	switch {
	case util.IsAlphaNum(r):
		return KindAlphaNum
	case unicode.IsSpace(r):
		return KindSpace
	case util.IsPunctuation(text):
		return KindPunctuation
	case util.IsHan(r):
		return KindUnknown
	default:
		return KindOther
	}
}

// Package segmenter splits Chinese text into dictionary spans and turns
// them into ranked pinyin alternatives.
package segmenter

import (
	"slices"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/pinyin"
	"github.com/teatak/pinyin/render"
	"github.com/teatak/pinyin/sandhi"
)

// DefaultMaxAlternatives caps the number of full-string alternatives.
const DefaultMaxAlternatives = 16

// Kind describes how a span was matched.
type Kind int

const (
	KindWord        Kind = iota // KindWord is a multi-character dictionary word.
	KindCharacter               // KindCharacter is a single dictionary character.
	KindAlphaNum                // KindAlphaNum is a run of ASCII letters and digits.
	KindPunctuation             // KindPunctuation is punctuation or a symbol.
	KindUnknown                 // KindUnknown is a Han character missing from the dictionary.
	KindSpace                   // KindSpace is a run of whitespace.
	KindOther                   // KindOther is anything else passed through.
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindCharacter:
		return "character"
	case KindAlphaNum:
		return "alphanum"
	case KindPunctuation:
		return "punctuation"
	case KindUnknown:
		return "unknown"
	case KindSpace:
		return "space"
	default:
		return "other"
	}
}

// Span is one segment of the input with its ranked readings. Literal spans
// have no candidates.
type Span struct {
	Text       string
	Kind       Kind
	Candidates dictionary.CandidateList
}

// Literal reports whether the span is passed through unconverted.
func (s Span) Literal() bool { return len(s.Candidates) == 0 }

func (s Span) alternatives() int {
	if s.Literal() {
		return 1
	}
	return len(s.Candidates)
}

// Segmenter converts text using a compiled dictionary.
type Segmenter struct {
	Dict            *dictionary.Dictionary
	MaxAlternatives int
	Sandhi          sandhi.Rules
}

// NewSegmenter creates a new segmenter with the given dictionary.
func NewSegmenter(dict *dictionary.Dictionary) *Segmenter {
	return &Segmenter{Dict: dict, MaxAlternatives: DefaultMaxAlternatives}
}

// New creates a segmenter configured from cfg.
func New(dict *dictionary.Dictionary, cfg config.ConversionConfig) *Segmenter {
	s := NewSegmenter(dict)
	if cfg.MaxAlternatives > 0 {
		s.MaxAlternatives = cfg.MaxAlternatives
	}
	s.Sandhi.YiFalling = cfg.YiFalling
	return s
}

// Segment splits text left to right, preferring the longest dictionary
// word at each position. Text without a reading becomes literal spans at
// its original position.
func (s *Segmenter) Segment(text string) []Span {
	runes := []rune(text)
	n := len(runes)
	var spans []Span

	for i := 0; i < n; {
		if span, end, ok := s.matchWord(runes, i); ok {
			spans = append(spans, span)
			i = end
			continue
		}

		ch := string(runes[i])
		if list, ok := s.Dict.Character(ch); ok {
			spans = append(spans, Span{Text: ch, Kind: KindCharacter, Candidates: list})
			i++
			continue
		}

		// keep "25", "PKU", "..." and runs of spaces together
		end := s.literalEnd(runes, i)
		lit := string(runes[i:end])
		spans = append(spans, Span{Text: lit, Kind: literalKind(lit, runes[i])})
		i = end
	}
	return spans
}

func (s *Segmenter) matchWord(runes []rune, i int) (Span, int, bool) {
	maxLen := min(s.Dict.MaxLen, len(runes)-i)
	for l := maxLen; l >= 2; l-- {
		word := string(runes[i : i+l])
		if list, ok := s.Dict.Word(word); ok {
			return Span{Text: word, Kind: KindWord, Candidates: list}, i + l, true
		}
	}
	return Span{}, i, false
}

// literalEnd returns the end of the literal run starting at i. A run stops
// early where a dictionary word begins, so "3D打印" style words are still
// found.
func (s *Segmenter) literalEnd(runes []rune, i int) int {
	class := runClass(runes[i])
	if class == classSingle {
		return i + 1
	}
	j := i + 1
	for j < len(runes) && runClass(runes[j]) == class {
		if _, _, ok := s.matchWord(runes, j); ok {
			break
		}
		j++
	}
	return j
}

// Cut returns the text of each span, leaving out whitespace.
func (s *Segmenter) Cut(text string) []string {
	var out []string
	for _, sp := range s.Segment(text) {
		if sp.Kind != KindSpace {
			out = append(out, sp.Text)
		}
	}
	return out
}

// Solutions returns up to MaxAlternatives token sequences for text, best
// first, with tone sandhi applied. Each sequence owns its syllables.
func (s *Segmenter) Solutions(text string) [][]pinyin.Token {
	spans := s.Segment(text)
	if len(spans) == 0 {
		return nil
	}

	sizes := make([]int, len(spans))
	for i, sp := range spans {
		sizes[i] = sp.alternatives()
	}

	limit := s.MaxAlternatives
	if limit <= 0 {
		limit = DefaultMaxAlternatives
	}

	combos := bestCombinations(sizes, limit)
	out := make([][]pinyin.Token, 0, len(combos))
	for _, ranks := range combos {
		tokens := make([]pinyin.Token, len(spans))
		for i, sp := range spans {
			tokens[i] = pinyin.Token{Text: sp.Text}
			if !sp.Literal() {
				tokens[i].Syllables = slices.Clone(sp.Candidates[ranks[i]].Syllables)
			}
		}
		sandhi.Apply(tokens, s.Sandhi)
		out = append(out, tokens)
	}
	return out
}

// Convert renders the alternatives for text, most preferred first, with
// duplicates removed. Unknown characters pass through unchanged.
func (s *Segmenter) Convert(text string, opts render.Options) []string {
	solutions := s.Solutions(text)
	if len(solutions) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(solutions))
	out := make([]string, 0, len(solutions))
	for _, tokens := range solutions {
		str := render.Format(tokens, opts)
		if _, ok := seen[str]; ok {
			continue
		}
		seen[str] = struct{}{}
		out = append(out, str)
	}
	return out
}

// Best returns the most preferred rendering of text, or "" for empty input.
func (s *Segmenter) Best(text string, opts render.Options) string {
	results := s.Convert(text, opts)
	if len(results) == 0 {
		return ""
	}
	return results[0]
}

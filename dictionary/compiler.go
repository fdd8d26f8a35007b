// Package dictionary compiles CEDICT-style entries into frequency-ranked
// readings per character and per word.
package dictionary

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/teatak/pinyin/parser"
	"github.com/teatak/pinyin/pinyin"
)

// RawEntry is one dictionary line split into its fields.
type RawEntry struct {
	Traditional string
	Simplified  string
	Pinyin      string
	Gloss       string
}

// Stats holds compiler statistics for logging.
type Stats struct {
	TotalLines     int
	CommentLines   int
	MalformedLines int
	Entries        int
	Failures       int
}

type candidates struct {
	entries []Entry
	index   map[string]int
}

func (c *candidates) add(syllables []pinyin.Syllable) {
	k := sequenceKey(syllables)
	if i, ok := c.index[k]; ok {
		c.entries[i].Occurrences++
		return
	}
	c.index[k] = len(c.entries)
	c.entries = append(c.entries, Entry{Syllables: syllables, Occurrences: 1})
}

// ranked sorts by occurrences, keeping first-seen order among ties.
func (c *candidates) ranked() CandidateList {
	list := slices.Clone(c.entries)
	slices.SortStableFunc(list, func(a, b Entry) int {
		return cmp.Compare(b.Occurrences, a.Occurrences)
	})
	return list
}

func sequenceKey(syllables []pinyin.Syllable) string {
	b := make([]byte, 0, len(syllables)*4)
	for _, s := range syllables {
		capital := byte(0)
		if s.Capital {
			capital = 1
		}
		b = append(b, byte(s.Initial), byte(s.Final), byte(s.Tone), capital)
	}
	return string(b)
}

// Compiler accumulates entries. Call Compile once every entry is added.
type Compiler struct {
	characters map[string]*candidates
	words      map[string]*candidates
	stats      Stats
	logger     *slog.Logger
}

// NewCompiler creates an empty compiler. A nil logger uses slog.Default().
func NewCompiler(logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Compiler{
		characters: make(map[string]*candidates),
		words:      make(map[string]*candidates),
		logger:     logger,
	}
}

// AddLine parses and adds one CEDICT line. Comments and blank lines are
// counted and ignored; malformed lines and unparseable pinyin are counted,
// logged and returned, leaving the compiler usable.
func (c *Compiler) AddLine(line string) error {
	c.stats.TotalLines++
	entry, err := ParseLine(line)
	if errors.Is(err, ErrSkipLine) {
		c.stats.CommentLines++
		return nil
	}
	if err != nil {
		c.stats.MalformedLines++
		c.logger.Debug("skip malformed line", slog.Int("line", c.stats.TotalLines), slog.String("error", err.Error()))
		return err
	}
	return c.Add(entry)
}

// AddLines adds every line, continuing past failures.
func (c *Compiler) AddLines(lines []string) {
	for _, line := range lines {
		_ = c.AddLine(line)
	}
}

// Add records e's reading under its simplified and traditional keys, and
// under each character of a multi-character key.
func (c *Compiler) Add(e RawEntry) error {
	syllables, err := parser.ParseWord(e.Pinyin)
	if err == nil && len(syllables) == 0 {
		err = &parser.ParsingError{Text: e.Pinyin, Reason: "no syllables"}
	}
	if err != nil {
		c.stats.Failures++
		c.logger.Debug("skip entry", slog.String("key", e.Simplified), slog.String("error", err.Error()))
		return fmt.Errorf("entry %s: %w", e.Simplified, err)
	}

	keys := []string{e.Simplified}
	if e.Traditional != "" && e.Traditional != e.Simplified {
		keys = append(keys, e.Traditional)
	}

	seen := make(map[string]struct{})
	addChar := func(ch string, s []pinyin.Syllable) {
		k := ch + sequenceKey(s)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		c.bucket(c.characters, ch).add(s)
	}

	for _, key := range keys {
		runes := []rune(key)
		if len(runes) == 1 {
			addChar(key, syllables)
			continue
		}
		c.bucket(c.words, key).add(syllables)
		if len(runes) != len(syllables) {
			continue
		}
		for i, r := range runes {
			addChar(string(r), syllables[i:i+1])
		}
	}
	c.stats.Entries++
	return nil
}

func (c *Compiler) bucket(m map[string]*candidates, key string) *candidates {
	b, ok := m[key]
	if !ok {
		b = &candidates{index: make(map[string]int)}
		m[key] = b
	}
	return b
}

// Stats returns the counters accumulated so far.
func (c *Compiler) Stats() Stats { return c.stats }

// Compile ranks every candidate list and returns the dictionary.
func (c *Compiler) Compile() *Dictionary {
	d := NewDictionary()
	for k, b := range c.characters {
		d.Characters[k] = b.ranked()
	}
	for k, b := range c.words {
		d.Words[k] = b.ranked()
		d.updateMaxLen(k)
	}
	return d
}

// Compile is a convenience wrapper that builds a dictionary from lines.
func Compile(lines []string, logger *slog.Logger) (*Dictionary, Stats) {
	c := NewCompiler(logger)
	c.AddLines(lines)
	return c.Compile(), c.Stats()
}

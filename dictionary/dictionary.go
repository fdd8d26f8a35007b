package dictionary

import (
	"unicode/utf8"

	"github.com/teatak/pinyin/pinyin"
)

// Entry is one observed reading of a character or word and how many
// dictionary lines produced it.
type Entry struct {
	Syllables   []pinyin.Syllable
	Occurrences int
}

// CandidateList holds the readings of one key, most frequent first.
type CandidateList []Entry

// Best returns the top-ranked reading.
func (l CandidateList) Best() (Entry, bool) {
	if len(l) == 0 {
		return Entry{}, false
	}
	return l[0], true
}

// Dictionary holds ranked readings for single characters and for
// multi-character words. It is read-only once compiled, apart from
// ApplyCorrections.
type Dictionary struct {
	Characters map[string]CandidateList
	Words      map[string]CandidateList
	MaxLen     int
}

// NewDictionary creates a new empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Characters: make(map[string]CandidateList),
		Words:      make(map[string]CandidateList),
	}
}

// Character returns the readings of a single character.
func (d *Dictionary) Character(ch string) (CandidateList, bool) {
	list, ok := d.Characters[ch]
	return list, ok && len(list) > 0
}

// Word returns the readings of a multi-character word.
func (d *Dictionary) Word(word string) (CandidateList, bool) {
	list, ok := d.Words[word]
	return list, ok && len(list) > 0
}

// Lookup returns the readings of key from the character or word map,
// depending on its length.
func (d *Dictionary) Lookup(key string) (CandidateList, bool) {
	if utf8.RuneCountInString(key) == 1 {
		return d.Character(key)
	}
	return d.Word(key)
}

// Contains checks if a character or word exists in the dictionary.
func (d *Dictionary) Contains(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Len returns the number of keys in both maps.
func (d *Dictionary) Len() int {
	return len(d.Characters) + len(d.Words)
}

func (d *Dictionary) table(key string) map[string]CandidateList {
	if utf8.RuneCountInString(key) == 1 {
		return d.Characters
	}
	return d.Words
}

func (d *Dictionary) updateMaxLen(key string) {
	if n := utf8.RuneCountInString(key); n > 1 && n > d.MaxLen {
		d.MaxLen = n
	}
}

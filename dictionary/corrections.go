package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/teatak/pinyin/parser"
)

// Correction pins the preferred reading of a character or word.
type Correction struct {
	Chinese string `yaml:"chinese" json:"chinese"`
	Pinyin  string `yaml:"pinyin"  json:"pinyin"`
}

// ParseCorrections reads a YAML list of corrections.
func ParseCorrections(r io.Reader) ([]Correction, error) {
	var out []Correction
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode corrections: %w", err)
	}
	return out, nil
}

// LoadCorrections reads a YAML corrections file.
func LoadCorrections(path string) ([]Correction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corrections: %w", err)
	}
	defer f.Close()
	return ParseCorrections(f)
}

// AppendCorrection appends c to the YAML corrections file at path,
// creating it if needed.
func AppendCorrection(path string, c Correction) error {
	data, err := yaml.Marshal([]Correction{c})
	if err != nil {
		return fmt.Errorf("encode correction: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open corrections: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write corrections: %w", err)
	}
	return f.Close()
}

// ApplyCorrection moves c's reading to the front of its key's candidate
// list, inserting it when absent. The head keeps the highest occurrence
// count so the list stays sorted.
//
// Not safe for use while other goroutines read d.
func (d *Dictionary) ApplyCorrection(c Correction) error {
	syllables, err := parser.ParseWord(c.Pinyin)
	if err != nil {
		return fmt.Errorf("correction %s: %w", c.Chinese, err)
	}
	if n := utf8.RuneCountInString(c.Chinese); n == 0 || n != len(syllables) {
		return fmt.Errorf("correction %s: %d syllables for %d characters", c.Chinese, len(syllables), n)
	}

	table := d.table(c.Chinese)
	list := table[c.Chinese]

	occurrences := 1
	if head, ok := list.Best(); ok {
		occurrences = head.Occurrences + 1
	}
	idx := slices.IndexFunc(list, func(e Entry) bool {
		return slices.Equal(e.Syllables, syllables)
	})
	switch {
	case idx == 0:
		return nil
	case idx > 0:
		list = slices.Delete(slices.Clone(list), idx, idx+1)
	}

	updated := make(CandidateList, 0, len(list)+1)
	updated = append(updated, Entry{Syllables: syllables, Occurrences: occurrences})
	updated = append(updated, list...)
	table[c.Chinese] = updated
	d.updateMaxLen(c.Chinese)
	return nil
}

// ApplyCorrections applies each correction in order. Failing corrections
// are skipped; their errors are joined and returned.
func (d *Dictionary) ApplyCorrections(corrections []Correction) error {
	var errs []error
	for _, c := range corrections {
		if err := d.ApplyCorrection(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

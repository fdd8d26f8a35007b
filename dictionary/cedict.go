package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// ErrSkipLine signals a comment or blank line.
var ErrSkipLine = errors.New("skip line")

// traditional simplified [pin1 yin1] /gloss/gloss/
var cedictLine = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]*)\]\s*(?:/(.*)/)?\s*$`)

// ParseLine splits one CEDICT line into its fields.
func ParseLine(line string) (RawEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return RawEntry{}, ErrSkipLine
	}
	m := cedictLine.FindStringSubmatch(line)
	if m == nil {
		return RawEntry{}, fmt.Errorf("malformed line %q", line)
	}
	return RawEntry{
		Traditional: m[1],
		Simplified:  m[2],
		Pinyin:      m[3],
		Gloss:       m[4],
	}, nil
}

// Load compiles a dictionary from CEDICT text. Bad lines are skipped and
// counted in Stats; only read errors are returned.
func Load(r io.Reader, logger *slog.Logger) (*Dictionary, Stats, error) {
	c := NewCompiler(logger)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		_ = c.AddLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, c.Stats(), fmt.Errorf("read dictionary: %w", err)
	}
	return c.Compile(), c.Stats(), nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string, logger *slog.Logger) (*Dictionary, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return Load(f, logger)
}

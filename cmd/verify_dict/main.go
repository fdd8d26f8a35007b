// Command verify_dict checks that every reading in a CC-CEDICT file parses
// and that every parsed syllable renders back to something that parses to
// the same syllable.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/parser"
	"github.com/teatak/pinyin/pinyin"
)

type report struct {
	lines     int
	entries   int
	malformed int
	failures  []string
	mismatch  []string
}

func main() {
	inputPath := flag.String("input", "data/cedict_ts.u8", "CC-CEDICT file path")
	outputPath := flag.String("output", "", "Write failing lines here instead of stdout")
	flag.Parse()

	logger := config.NewLogger(config.LogConfig{Level: "info", Format: "text"})
	os.Exit(run(*inputPath, *outputPath, logger))
}

// run returns the exit code: 1 on I/O errors, 2 when any reading fails.
func run(inputPath, outputPath string, logger *slog.Logger) int {
	in, err := os.Open(inputPath)
	if err != nil {
		logger.Error("open input", slog.Any("error", err))
		return 1
	}
	r, err := verify(in)
	in.Close()
	if err != nil {
		logger.Error("scan input", slog.Any("error", err))
		return 1
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.Error("create output", slog.Any("error", err))
			return 1
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	for _, line := range r.failures {
		fmt.Fprintln(w, line)
	}
	for _, line := range r.mismatch {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		logger.Error("write output", slog.Any("error", err))
		return 1
	}

	logger.Info("verified",
		slog.Int("lines", r.lines),
		slog.Int("entries", r.entries),
		slog.Int("malformed", r.malformed),
		slog.Int("parse_failures", len(r.failures)),
		slog.Int("round_trip_mismatches", len(r.mismatch)),
	)
	if len(r.failures)+len(r.mismatch) > 0 {
		return 2
	}
	return 0
}

func verify(in io.Reader) (report, error) {
	var r report
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)

	for scanner.Scan() {
		r.lines++
		line := scanner.Text()
		entry, err := dictionary.ParseLine(line)
		if errors.Is(err, dictionary.ErrSkipLine) {
			continue
		}
		if err != nil {
			r.malformed++
			continue
		}
		r.entries++

		syllables, err := parser.ParseWord(entry.Pinyin)
		if err != nil {
			r.failures = append(r.failures, fmt.Sprintf("%d\t%s\t%v", r.lines, line, err))
			continue
		}
		for _, s := range syllables {
			if text, ok := roundTrip(s); !ok {
				r.mismatch = append(r.mismatch, fmt.Sprintf("%d\t%s\t%s", r.lines, line, text))
			}
		}
	}
	return r, scanner.Err()
}

// roundTrip reports whether both renderings of s parse back to s.
func roundTrip(s pinyin.Syllable) (string, bool) {
	for _, text := range []string{s.ToneMark(), s.ToneNumber()} {
		got, rest, err := parser.ParseSyllable(text)
		if err != nil || rest != "" || got != s {
			return text, false
		}
	}
	return "", true
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/render"
	"github.com/teatak/pinyin/segmenter"
)

func main() {
	inputPath := flag.String("input", "data/text.txt", "Input file path")
	outputPath := flag.String("output", "data/text_pinyin.txt", "Output file path")
	configPath := flag.String("config", "", "Path to config file")
	dictPath := flag.String("dict", "", "Dictionary path (overrides config)")
	toneNumbers := flag.Bool("tone-numbers", false, "Render ma3 instead of mǎ")
	spaces := flag.Bool("spaces", false, "Separate every syllable")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "batch_convert: %v\n", err)
		os.Exit(1)
	}
	if *dictPath != "" {
		cfg.Dictionary.Path = *dictPath
	}
	logger := config.NewLogger(cfg.Log)

	opts := render.Options{
		ToneNumbers: *toneNumbers || cfg.Conversion.ToneNumbers,
		Spaces:      *spaces || cfg.Conversion.Spaces,
	}
	if err := run(cfg, opts, *inputPath, *outputPath, logger); err != nil {
		logger.Error("batch convert failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts render.Options, inputPath, outputPath string, logger *slog.Logger) error {
	// 1. Load Dictionary
	dict, err := dictionary.Open(cfg.Dictionary, logger)
	if err != nil {
		return err
	}
	seg := segmenter.New(dict, cfg.Conversion)

	// 2. Open Files
	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	// 3. Process
	count, err := convert(seg, opts, inFile, outFile, logger)
	if closeErr := outFile.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		return err
	}
	logger.Info("done", slog.Int("lines", count), slog.String("output", outputPath))
	return nil
}

// convert writes one "text\tpinyin" line per non-blank input line.
func convert(seg *segmenter.Segmenter, opts render.Options, in io.Reader, out io.Writer, logger *slog.Logger) (int, error) {
	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fmt.Fprintf(writer, "%s\t%s\n", line, seg.Best(line, opts))
		count++
		if count%1000 == 0 {
			logger.Info("progress", slog.Int("lines", count))
		}
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("scan input: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return count, fmt.Errorf("flush output: %w", err)
	}
	return count, nil
}

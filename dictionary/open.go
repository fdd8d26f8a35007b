package dictionary

import (
	"fmt"
	"log/slog"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/util"
)

// Open loads the configured CEDICT file and applies the corrections file
// when one is configured and present. Corrections that fail to parse are
// logged and skipped.
func Open(cfg config.DictionaryConfig, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dict, stats, err := LoadFile(cfg.Path, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("dictionary loaded",
		slog.String("path", cfg.Path),
		slog.Int("lines", stats.TotalLines),
		slog.Int("entries", stats.Entries),
		slog.Int("malformed", stats.MalformedLines),
		slog.Int("failures", stats.Failures),
		slog.Int("characters", len(dict.Characters)),
		slog.Int("words", len(dict.Words)))

	if cfg.CorrectionsPath == "" {
		return dict, nil
	}
	if !util.FileExists(cfg.CorrectionsPath) {
		logger.Info("corrections file not found", slog.String("path", cfg.CorrectionsPath))
		return dict, nil
	}
	corrections, err := LoadCorrections(cfg.CorrectionsPath)
	if err != nil {
		return nil, fmt.Errorf("load corrections: %w", err)
	}
	if err := dict.ApplyCorrections(corrections); err != nil {
		logger.Warn("some corrections skipped", slog.String("error", err.Error()))
	}
	logger.Info("corrections applied", slog.Int("count", len(corrections)))
	return dict, nil
}

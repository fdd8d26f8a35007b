// Command pinyin converts Chinese text to pinyin from the command line.
//
//	pinyin convert 忘拿一些东西了
//	pinyin convert --tone-numbers --spaces --all 东西
//	pinyin parse "nv3 xiē"
//	pinyin segment 忘拿一些东西了
//
// With no text argument, convert and segment read lines from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/parser"
	"github.com/teatak/pinyin/render"
	"github.com/teatak/pinyin/segmenter"
)

type app struct {
	configPath      string
	dictPath        string
	correctionsPath string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pinyin",
		Short:        "Convert Chinese text to pinyin",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&a.dictPath, "dict", "", "Path to CC-CEDICT file (overrides config)")
	root.PersistentFlags().StringVar(&a.correctionsPath, "corrections", "", "Path to corrections file (overrides config)")

	root.AddCommand(a.convertCmd(), a.parseCmd(), a.segmentCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dictPath != "" {
		cfg.Dictionary.Path = a.dictPath
	}
	if a.correctionsPath != "" {
		cfg.Dictionary.CorrectionsPath = a.correctionsPath
	}
	a.cfg = cfg
	a.logger = config.NewLogger(cfg.Log)
	return nil
}

func (a *app) segmenter() (*segmenter.Segmenter, error) {
	dict, err := dictionary.Open(a.cfg.Dictionary, a.logger)
	if err != nil {
		return nil, err
	}
	return segmenter.New(dict, a.cfg.Conversion), nil
}

func (a *app) convertCmd() *cobra.Command {
	var toneNumbers, spaces, all bool
	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Print the pinyin for text",
		RunE: func(cmd *cobra.Command, args []string) error {
			seg, err := a.segmenter()
			if err != nil {
				return err
			}
			opts := render.Options{
				ToneNumbers: toneNumbers || a.cfg.Conversion.ToneNumbers,
				Spaces:      spaces || a.cfg.Conversion.Spaces,
			}
			return eachInput(cmd, args, func(out io.Writer, text string) {
				results := seg.Convert(text, opts)
				if len(results) == 0 {
					return
				}
				if !all {
					results = results[:1]
				}
				for _, r := range results {
					fmt.Fprintln(out, r)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&toneNumbers, "tone-numbers", false, "Render ma3 instead of mǎ")
	cmd.Flags().BoolVar(&spaces, "spaces", false, "Separate every syllable")
	cmd.Flags().BoolVar(&all, "all", false, "Print every alternative, best first")
	return cmd
}

func (a *app) segmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment [text...]",
		Short: "Print the dictionary spans of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			seg, err := a.segmenter()
			if err != nil {
				return err
			}
			return eachInput(cmd, args, func(out io.Writer, text string) {
				fmt.Fprintln(out, strings.Join(seg.Cut(text), " / "))
			})
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <pinyin...>",
		Short: "Parse pinyin and print both renderings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syllables, err := parser.ParseWord(strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range syllables {
				fmt.Fprintf(out, "%s\t%s\n", s.ToneMark(), s.ToneNumber())
			}
			return nil
		},
	}
}

// eachInput runs fn on the joined args, or on every non-blank stdin line
// when there are none.
func eachInput(cmd *cobra.Command, args []string, fn func(out io.Writer, text string)) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		fn(out, strings.Join(args, " "))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fn(out, text)
	}
	return scanner.Err()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/vocab"
)

// app carries what every command needs once flags are parsed
var app struct {
	cfg     config.Config
	logger  *slog.Logger
	vocab   *vocab.Vocabulary
	printer *observability.Printer
}

var (
	rootConfigPath string
	rootVocabPath  string
	rootLogLevel   string
	rootLogFormat  string
	rootVerbose    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&rootVocabPath, "vocab", "", "Path to a YAML vocabulary (defaults to the built-in English/Spanish tables)")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&rootLogFormat, "log-format", "", "Log format: text or json")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Print boxed summaries")
}

// setupApp loads config, applies persistent flag overrides, then builds the
// logger and vocabulary
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("vocab") {
		cfg.Vocabulary = rootVocabPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = rootLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	app.printer = observability.NewPrinter(os.Stdout)

	if cfg.Vocabulary == "" {
		app.vocab = vocab.Default()
	} else {
		v, err := vocab.Load(cfg.Vocabulary)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		app.vocab = v
		app.logger.Info("loaded vocabulary", slog.String("path", cfg.Vocabulary))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(observability.ContextWithLogger(ctx, app.logger))
	return nil
}

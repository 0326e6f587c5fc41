package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/artmetrics/internal/config"
	"github.com/pthm/artmetrics/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string

	cfg    *config.Config
	logger *slog.Logger
	out    *ui.UI
)

// RootCmd is the artmetrics command tree
var RootCmd = &cobra.Command{
	Use:   "artmetrics",
	Short: "Sentiment and readability metrics for news articles",
	Long: `artmetrics computes sentiment and readability metrics for English
news articles: polarity and subjectivity, Gunning Fog Index, sentence
and word lengths, syllables per word, complex words and personal pronouns.

It analyzes local files, or downloads a work list of article URLs,
saves the extracted text and writes one row of metrics per article.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (terminal, plain, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
}

// setup loads the configuration and builds the logger and UI shared by
// every command.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		loaded.Output.Format = format
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	out = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Format)
	logger = newLogger(out)
	logger.Debug("config loaded", "path", configPath, "format", cfg.Output.Format)
	return nil
}

// newLogger logs to stderr. While a progress display owns the terminal only
// warnings get through unless --verbose is set.
func newLogger(u *ui.UI) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case u.IsInteractive():
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(u.ErrWriter, &slog.HandlerOptions{Level: level}))
}

// GetUI returns the UI built for the running command
func GetUI() *ui.UI {
	if out == nil {
		out = ui.New(os.Stdout, os.Stderr, format)
	}
	return out
}

// warn prints a styled warning on stderr
func warn(msg string, args ...interface{}) {
	u := GetUI()
	fmt.Fprintln(u.ErrWriter, u.Styles.Warning.Render(
		fmt.Sprintf("%s %s", u.Styles.IconWarning, fmt.Sprintf(msg, args...)),
	))
}

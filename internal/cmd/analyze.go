package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pthm/artmetrics/internal/parser"
	"github.com/pthm/artmetrics/internal/reporter"
	"github.com/pthm/artmetrics/internal/textmetrics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Compute metrics for article files",
	Long: `Compute the sentiment and readability metrics of one or more articles.

Text, markdown (.md) and HTML (.html) files are accepted. With no file, or
with "-", the article is read from standard input.

Examples:
  artmetrics analyze extracted_articles/37.txt
  artmetrics analyze --format json notes.md page.html
  curl -s https://example.com/story | artmetrics analyze --html -`,
	RunE: runAnalyze,
}

var analyzeHTML bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "Treat standard input as HTML")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	analyzer := textmetrics.New()
	results := make([]reporter.Result, 0, len(args))

	for _, name := range args {
		article, err := readArticle(cmd.InOrStdin(), name)
		if err != nil {
			logger.Warn("article failed", "path", name, "err", err)
			results = append(results, reporter.Result{Name: name, Err: err})
			continue
		}

		record := analyzer.Analyze(article.Text())
		logger.Debug("article analyzed", "path", name, "words", record.WordCount)
		results = append(results, reporter.Result{Name: name, Record: record})
	}

	if err := newReporter(cmd.OutOrStdout()).Report(results); err != nil {
		return err
	}

	if summary := reporter.ComputeSummary(results); summary.Failed > 0 {
		return fmt.Errorf("%d of %d articles could not be analyzed", summary.Failed, summary.Articles)
	}
	return nil
}

// readArticle parses a file, or standard input for "-"
func readArticle(stdin io.Reader, name string) (*parser.Article, error) {
	if name != "-" {
		return parser.ParseFile(name)
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	source := "stdin.txt"
	if analyzeHTML {
		source = "stdin.html"
	}
	article, err := parser.ParseBytes(source, content)
	if err != nil {
		return nil, err
	}
	article.ID = "-"
	return article, nil
}

// newReporter picks the reporter for the configured format
func newReporter(w io.Writer) reporter.Reporter {
	u := GetUI()
	if u.IsJSON() {
		return reporter.NewJSONReporter(w)
	}
	return reporter.NewTerminalReporter(w, u.Styles)
}

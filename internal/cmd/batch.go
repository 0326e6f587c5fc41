package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/artmetrics/internal/batch"
	"github.com/pthm/artmetrics/internal/reporter"
	"github.com/pthm/artmetrics/internal/textmetrics"
	"github.com/pthm/artmetrics/internal/ui"
	"github.com/pthm/artmetrics/internal/worklist"
)

var (
	batchOutput    string
	batchDir       string
	batchFeed      string
	batchIDColumn  string
	batchURLColumn string
	batchRPS       float64
)

var batchCmd = &cobra.Command{
	Use:   "batch [input]",
	Short: "Download and analyze every article in a work list",
	Long: `Read a work list of article ids and URLs, download each page, save the
extracted article to <dir>/<id>.txt and write one row of metrics per
article to the output table.

The work list is an .xlsx or .csv file whose header contains the id and URL
columns (URL_ID and URL by default). With --feed the work list is built from
the entries of an RSS or Atom feed instead.

A page that cannot be downloaded or parsed does not stop the run: its row
gets zero metrics and the reason in the Error column.

Examples:
  artmetrics batch
  artmetrics batch links.csv -o results.csv --dir articles
  artmetrics batch --feed https://example.com/rss.xml -o feed.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output table (.xlsx or .csv)")
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory for the extracted articles")
	batchCmd.Flags().StringVar(&batchFeed, "feed", "", "Build the work list from an RSS or Atom feed URL")
	batchCmd.Flags().StringVar(&batchIDColumn, "id-column", "", "Header of the article id column")
	batchCmd.Flags().StringVar(&batchURLColumn, "url-column", "", "Header of the article URL column")
	batchCmd.Flags().Float64Var(&batchRPS, "rps", 0, "Maximum requests per second (0 means unlimited)")
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	u := GetUI()

	input := cfg.Input.Path
	if len(args) > 0 {
		input = args[0]
	}
	cols := worklist.Columns{ID: cfg.Input.IDColumn, URL: cfg.Input.URLColumn}
	if batchIDColumn != "" {
		cols.ID = batchIDColumn
	}
	if batchURLColumn != "" {
		cols.URL = batchURLColumn
	}
	output := cfg.Output.Path
	if batchOutput != "" {
		output = batchOutput
	}
	dir := cfg.Output.ArticlesDir
	if batchDir != "" {
		dir = batchDir
	}
	if cmd.Flags().Changed("rps") {
		if batchRPS < 0 {
			return errors.New("--rps must not be negative")
		}
		cfg.Fetch.RequestsPerSecond = batchRPS
	}

	progress := u.StartProgress()

	// Load
	progress.SetStage(ui.StageLoadWorklist)
	var (
		list *worklist.List
		err  error
	)
	if batchFeed != "" {
		list, err = worklist.FromFeed(ctx, batchFeed, cfg.Fetch.UserAgent)
	} else {
		list, err = worklist.Read(input, cols)
	}
	if err != nil {
		progress.Done(err)
		return fmt.Errorf("load work list: %w", err)
	}
	if len(list.Items) == 0 {
		progress.Done(nil)
		warn("work list has no articles")
		return nil
	}

	// Process
	progress.SetStage(ui.StageProcess)
	progress.SetArticleCount(len(list.Items))

	bc := batch.Config{ArticlesDir: dir, Logger: logger}
	if progress != nil {
		bc.Observer = progress
	}
	runner := batch.New(newFetcher(), textmetrics.New(), bc)

	rows, runErr := runner.Run(ctx, list)
	if runErr != nil && len(rows) == 0 {
		// Nothing was processed; leave any previous output table alone
		progress.Done(runErr)
		return fmt.Errorf("batch failed before any article: %w", runErr)
	}

	// Write what was processed even when the run was interrupted
	progress.SetStage(ui.StageWrite)
	progress.SetOperation(output)
	if err := worklist.Write(output, list.Header, rows); err != nil {
		progress.Done(err)
		return fmt.Errorf("write %s: %w", output, err)
	}
	progress.Done(runErr)

	logger.Info("results written", "path", output, "rows", len(rows))
	if runErr != nil {
		return fmt.Errorf("batch stopped after %d of %d articles: %w", len(rows), len(list.Items), runErr)
	}

	return batchReporter(cmd, runner.RunID()).Report(reporter.FromRows(rows))
}

// batchReporter tags JSON output with the run id so it can be matched
// with the log lines of the same run.
func batchReporter(cmd *cobra.Command, runID string) reporter.Reporter {
	if GetUI().IsJSON() {
		return reporter.NewJSONReporter(cmd.OutOrStdout()).WithRunID(runID)
	}
	return newReporter(cmd.OutOrStdout())
}

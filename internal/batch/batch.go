// Package batch runs the article pipeline over a work list: download each
// URL, extract the article, save it as text, read it back and analyze it.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pthm/artmetrics/internal/fetcher"
	"github.com/pthm/artmetrics/internal/parser"
	"github.com/pthm/artmetrics/internal/textmetrics"
	"github.com/pthm/artmetrics/internal/worklist"
)

// Fetcher downloads a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Page, error)
}

// Analyzer turns article text into metrics.
type Analyzer interface {
	Analyze(text string) textmetrics.Record
}

// Observer is told when each article starts and finishes.
type Observer interface {
	ArticleStart(index, total int, id string)
	ArticleDone(index, total int, id string, err error)
}

// Config configures a Runner.
type Config struct {
	// ArticlesDir receives one <URL_ID>.txt per article.
	ArticlesDir string
	Logger      *slog.Logger
	Observer    Observer
}

// Runner processes work lists sequentially.
type Runner struct {
	fetcher  Fetcher
	analyzer Analyzer
	config   Config
	runID    string
	logger   *slog.Logger
}

// New creates a Runner.
func New(f Fetcher, a Analyzer, cfg Config) *Runner {
	if cfg.ArticlesDir == "" {
		cfg.ArticlesDir = "extracted_articles"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.NewString()

	return &Runner{
		fetcher:  f,
		analyzer: a,
		config:   cfg,
		runID:    runID,
		logger:   logger.With("run_id", runID),
	}
}

// RunID identifies this runner's output in logs and reports.
func (r *Runner) RunID() string {
	return r.runID
}

// Run processes every item. A failing article does not stop the run: its
// row carries zero metrics and the error. Run itself fails only when the
// articles directory cannot be created or ctx is done; the rows processed
// so far are returned either way.
func (r *Runner) Run(ctx context.Context, list *worklist.List) ([]worklist.Row, error) {
	if err := os.MkdirAll(r.config.ArticlesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create articles dir: %w", err)
	}

	total := len(list.Items)
	rows := make([]worklist.Row, 0, total)
	start := time.Now()
	var failed int

	r.logger.Info("batch started", "articles", total, "dir", r.config.ArticlesDir)

	for i, item := range list.Items {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		if r.config.Observer != nil {
			r.config.Observer.ArticleStart(i, total, item.ID)
		}

		record, err := r.Process(ctx, item)
		if err != nil {
			failed++
			r.logger.Warn("article failed", "url_id", item.ID, "url", item.URL, "err", err)
		}
		rows = append(rows, worklist.Row{Item: item, Record: record, Err: err})

		if r.config.Observer != nil {
			r.config.Observer.ArticleDone(i, total, item.ID, err)
		}
	}

	r.logger.Info("batch finished",
		"articles", total,
		"failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return rows, nil
}

// Process runs one item through the pipeline.
func (r *Runner) Process(ctx context.Context, item worklist.Item) (textmetrics.Record, error) {
	path, err := r.Extract(ctx, item)
	if err != nil {
		return textmetrics.Record{}, err
	}

	saved, err := parser.ParseFile(path)
	if err != nil {
		return textmetrics.Record{}, fmt.Errorf("read saved article: %w", err)
	}

	text := saved.Text()
	record := r.analyzer.Analyze(text)
	r.logger.Debug("article analyzed", "url_id", item.ID, "path", path, "words", record.WordCount)
	return record, nil
}

// Extract downloads the item's page and saves its title and body to
// <ArticlesDir>/<id>.txt, returning the file path.
func (r *Runner) Extract(ctx context.Context, item worklist.Item) (string, error) {
	name, err := fileName(item.ID)
	if err != nil {
		return "", err
	}
	if item.URL == "" {
		return "", errors.New("empty URL")
	}

	page, err := r.fetcher.Fetch(ctx, item.URL)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	article, err := (&parser.HTMLParser{}).Parse(page.URL, page.Body)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	path := filepath.Join(r.config.ArticlesDir, name)
	if err := os.WriteFile(path, []byte(article.Text()), 0o644); err != nil {
		return "", fmt.Errorf("save article: %w", err)
	}

	r.logger.Info("article saved", "url_id", item.ID, "path", path)
	return path, nil
}

// fileName maps an id to a file name inside the articles directory.
func fileName(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("empty URL_ID")
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("URL_ID %q is not a valid file name", id)
	}
	return id + ".txt", nil
}

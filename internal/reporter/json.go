package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/artmetrics/internal/textmetrics"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w     io.Writer
	runID string
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// WithRunID tags the output with a batch run id
func (r *JSONReporter) WithRunID(id string) *JSONReporter {
	r.runID = id
	return r
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	RunID    string        `json:"runId,omitempty"`
	Articles []JSONArticle `json:"articles"`
	Summary  Summary       `json:"summary"`
}

// JSONArticle represents one article in JSON format
type JSONArticle struct {
	Name    string              `json:"name"`
	Metrics *textmetrics.Record `json:"metrics,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []Result) error {
	output := JSONOutput{
		RunID:    r.runID,
		Articles: make([]JSONArticle, 0, len(results)),
		Summary:  ComputeSummary(results),
	}

	for _, res := range results {
		article := JSONArticle{Name: res.Name}
		if res.Err != nil {
			article.Error = res.Err.Error()
		} else {
			record := res.Record
			article.Metrics = &record
		}
		output.Articles = append(output.Articles, article)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

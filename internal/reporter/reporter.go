package reporter

import (
	"github.com/pthm/artmetrics/internal/textmetrics"
	"github.com/pthm/artmetrics/internal/worklist"
)

// Result is the outcome of analyzing one article
type Result struct {
	Name   string // file path, URL_ID or "-" for stdin
	Record textmetrics.Record
	Err    error
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the results
	Report(results []Result) error
}

// Summary holds summary statistics for a run
type Summary struct {
	Articles          int     `json:"articles"`
	Failed            int     `json:"failed"`
	Words             int     `json:"words"`
	MeanFogIndex      float64 `json:"meanFogIndex"`
	MeanPolarityScore float64 `json:"meanPolarityScore"`
}

// ComputeSummary computes summary statistics from results. Means cover the
// articles that succeeded.
func ComputeSummary(results []Result) Summary {
	s := Summary{Articles: len(results)}

	var fog, polarity float64
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Words += int(r.Record.WordCount)
		fog += r.Record.FogIndex
		polarity += r.Record.PolarityScore
	}

	if ok := s.Articles - s.Failed; ok > 0 {
		s.MeanFogIndex = fog / float64(ok)
		s.MeanPolarityScore = polarity / float64(ok)
	}
	return s
}

// FromRows converts batch rows into results named by URL_ID
func FromRows(rows []worklist.Row) []Result {
	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		name := row.Item.ID
		if name == "" {
			name = row.Item.URL
		}
		results = append(results, Result{Name: name, Record: row.Record, Err: row.Err})
	}
	return results
}

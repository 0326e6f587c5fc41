package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/artmetrics/internal/textmetrics"
	"github.com/pthm/artmetrics/internal/ui"
)

// countKeys are printed without decimals
var countKeys = map[string]bool{
	textmetrics.KeyComplexWordCount: true,
	textmetrics.KeyWordCount:        true,
	textmetrics.KeyPersonalPronouns: true,
}

// TerminalReporter outputs results to the terminal, one block per article
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter. A nil styles prints
// plain text.
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// Report outputs results to the terminal
func (r *TerminalReporter) Report(results []Result) error {
	s := r.styles

	if len(results) == 0 {
		_, err := fmt.Fprintln(r.w, s.Info.Render(s.IconInfo+" No articles analyzed"))
		return err
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.printResult(res)
	}

	return r.printSummary(results)
}

func (r *TerminalReporter) printResult(res Result) {
	s := r.styles

	if res.Err != nil {
		fmt.Fprintf(r.w, "%s %s\n", s.Error.Render(s.IconError), s.Header.Render(res.Name))
		fmt.Fprintf(r.w, "    %s\n", s.Error.Render(res.Err.Error()))
		return
	}

	fmt.Fprintln(r.w, s.Header.Render(res.Name))
	for i, v := range res.Record.Values() {
		key := textmetrics.Keys[i]
		label := fmt.Sprintf("  %-*s", labelWidth, key)
		fmt.Fprintf(r.w, "%s %s\n", s.Label.Render(label), formatValue(key, v))
	}
}

func (r *TerminalReporter) printSummary(results []Result) error {
	s := r.styles
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 37)))

	line := fmt.Sprintf("Analyzed %d articles, %d words, mean Fog Index %.2f",
		summary.Articles-summary.Failed, summary.Words, summary.MeanFogIndex)
	if summary.Failed > 0 {
		line += ", " + s.Error.Render(fmt.Sprintf("%d failed", summary.Failed))
		_, err := fmt.Fprintln(r.w, s.Warning.Render(s.IconWarning)+" "+line)
		return err
	}
	_, err := fmt.Fprintln(r.w, s.Success.Render(s.IconSuccess)+" "+line)
	return err
}

var labelWidth = func() int {
	w := 0
	for _, k := range textmetrics.Keys {
		w = max(w, len(k))
	}
	return w
}()

func formatValue(key string, v float64) string {
	if countKeys[key] {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.4f", v)
}

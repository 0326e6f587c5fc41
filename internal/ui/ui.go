package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Output formats accepted by New
const (
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
	FormatJSON     = "json"
)

// OutputMode determines how output should be formatted
type OutputMode int

const (
	// OutputModeInteractive enables colors and the progress display
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress (piped output, NO_COLOR)
	OutputModePlain
	// OutputModeJSON writes machine-readable results only
	OutputModeJSON
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeJSON:
		return "json"
	default:
		return "plain"
	}
}

// UI bundles the writers and styles a command prints with
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI for a format. "terminal" (or empty) is interactive only
// when w is a TTY and NO_COLOR is unset.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	switch format {
	case FormatJSON:
		return OutputModeJSON
	case FormatPlain:
		return OutputModePlain
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if isTerminal(w) {
		return OutputModeInteractive
	}
	return OutputModePlain
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive returns true if the output is interactive (TTY)
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON returns true if JSON output mode is enabled
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}

// animated reports whether spinners and progress bars can be drawn: the
// mode is interactive and stderr, where they render, is a terminal too.
func (ui *UI) animated() bool {
	return ui.IsInteractive() && isTerminal(ui.ErrWriter)
}

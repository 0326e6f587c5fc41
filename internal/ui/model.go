package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a batch run
type Stage int

const (
	StageLoadWorklist Stage = iota
	StageProcess
	StageWrite
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoadWorklist:
		return "load"
	case StageProcess:
		return "process"
	case StageWrite:
		return "write"
	default:
		return "done"
	}
}

// Messages sent to the model by ProgressController
type (
	StageMsg        Stage
	OperationMsg    string
	ArticleCountMsg int
	DoneMsg         struct{ Err error }
)

// ArticleStartMsg announces the article being downloaded
type ArticleStartMsg struct {
	Index int
	Total int
	ID    string
}

// ArticleDoneMsg counts a finished article
type ArticleDoneMsg struct {
	ID     string
	Failed bool
}

// Model renders the batch progress: a bar over the work list, the article in
// flight and the most recent failure.
type Model struct {
	stage      Stage
	spinner    spinner.Model
	progress   progress.Model
	currentOp  string
	total      int
	done       int
	failed     int
	lastFailed string
	quitting   bool
	err        error
}

// NewModel returns a model in the load stage
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		stage:    StageLoadWorklist,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = max(10, min(msg.Width-16, 60))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		m.currentOp = ""

	case OperationMsg:
		m.currentOp = string(msg)

	case ArticleCountMsg:
		m.total = int(msg)

	case ArticleStartMsg:
		m.currentOp = fmt.Sprintf("Fetching %s (%d/%d)...", msg.ID, msg.Index+1, msg.Total)

	case ArticleDoneMsg:
		m.done++
		if msg.Failed {
			m.failed++
			m.lastFailed = msg.ID
		}

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.spinner.View())
	sb.WriteByte(' ')

	switch m.stage {
	case StageLoadWorklist:
		sb.WriteString("Loading work list...")

	case StageProcess:
		op := m.currentOp
		if op == "" {
			op = "Processing articles..."
		}
		sb.WriteString(op)
		if m.total > 0 {
			sb.WriteByte('\n')
			sb.WriteString(m.progress.ViewAs(float64(m.done) / float64(m.total)))
			fmt.Fprintf(&sb, " %d/%d", m.done, m.total)
		}
		if m.failed > 0 {
			fmt.Fprintf(&sb, " (%d failed, last %s)", m.failed, m.lastFailed)
		}

	case StageWrite:
		sb.WriteString("Writing results")
		if m.currentOp != "" {
			fmt.Fprintf(&sb, " to %s", m.currentOp)
		}
	}

	return sb.String()
}

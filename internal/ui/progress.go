package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressController drives the batch progress display. It satisfies the
// batch runner's Observer interface. Every method is a no-op on nil.
type ProgressController struct {
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the batch progress display on stderr. It returns nil
// when nothing can be animated; a nil controller ignores every call.
func (ui *UI) StartProgress() *ProgressController {
	if !ui.animated() {
		return nil
	}

	pc := &ProgressController{
		program: tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter), tea.WithInput(nil)),
		done:    make(chan struct{}),
	}

	go func() {
		// A failed renderer must not fail the run
		_, _ = pc.program.Run()
		close(pc.done)
	}()

	return pc
}

func (pc *ProgressController) send(msg tea.Msg) {
	if pc != nil && pc.program != nil {
		pc.program.Send(msg)
	}
}

// SetStage moves the display to a new stage
func (pc *ProgressController) SetStage(stage Stage) {
	pc.send(StageMsg(stage))
}

// SetOperation describes what the current stage is doing
func (pc *ProgressController) SetOperation(op string) {
	pc.send(OperationMsg(op))
}

// SetArticleCount sets the number of articles in the work list
func (pc *ProgressController) SetArticleCount(count int) {
	pc.send(ArticleCountMsg(count))
}

// ArticleStart reports that an article is being downloaded
func (pc *ProgressController) ArticleStart(index, total int, id string) {
	pc.send(ArticleStartMsg{Index: index, Total: total, ID: id})
}

// ArticleDone reports that an article finished, successfully or not
func (pc *ProgressController) ArticleDone(index, total int, id string, err error) {
	pc.send(ArticleDoneMsg{ID: id, Failed: err != nil})
}

// Done clears the display and waits for the renderer to exit
func (pc *ProgressController) Done(err error) {
	if pc == nil || pc.program == nil {
		return
	}
	pc.program.Send(DoneMsg{Err: err})
	<-pc.done
}

// SimpleSpinner shows a single spinning line for one short operation
type SimpleSpinner struct {
	program *tea.Program
	done    chan struct{}
}

type simpleSpinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

func (m simpleSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m simpleSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case DoneMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m simpleSpinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// StartSimpleSpinner shows message next to a spinner on w. Without a
// terminal the message is printed once and nil is returned.
func (ui *UI) StartSimpleSpinner(w io.Writer, message string) *SimpleSpinner {
	if !ui.animated() {
		fmt.Fprintln(w, message)
		return nil
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ss := &SimpleSpinner{
		program: tea.NewProgram(simpleSpinnerModel{spinner: s, message: message},
			tea.WithOutput(w), tea.WithInput(nil)),
		done: make(chan struct{}),
	}

	go func() {
		_, _ = ss.program.Run()
		close(ss.done)
	}()

	return ss
}

// Stop removes the spinner line
func (ss *SimpleSpinner) Stop() {
	if ss != nil && ss.program != nil {
		ss.program.Send(DoneMsg{})
		<-ss.done
	}
}

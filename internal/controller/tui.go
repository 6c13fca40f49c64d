package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 80
	progressResolution   = 1000
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu           sync.Mutex
	program      *tea.Program
	done         chan struct{}
	lastProgress int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the live search view in solve mode; other modes print static views.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	if cfg.mode != ModeSolve {
		return nil
	}

	model := newSolveModel(cfg.total, t.progressWidth())
	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	t.mu.Lock()
	t.program = program
	t.done = done
	t.lastProgress = -1
	t.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("TUI stopped with error", "error", err)
		}
	}()

	return nil
}

// Close stops the live view, if any, and waits for it to exit.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the live view exits on its own or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayAlmanac prints the chain's stages and the seed ranges.
func (t *TUI) DisplayAlmanac(ctx context.Context, chain m.Chain, ranges m.RangeSet) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s\n%s\n%s\n%s",
		titleStyle.Render("Stages"), renderStagesTable(chain),
		titleStyle.Render("Seed ranges"), renderRangesTable(ranges))
}

// DisplaySolveStart shows the search parameters above the progress bar.
func (t *TUI) DisplaySolveStart(ctx context.Context, info SolveInfo) {
	if ctx.Err() != nil {
		return
	}

	if !t.send(solveStartMsg(info)) {
		t.printf("%s\n", subtleStyle.Render(describeSolve(info)))
	}
}

// DisplayProgress advances the progress bar. Calls that do not move it by at
// least a tenth of a percent are dropped.
func (t *TUI) DisplayProgress(ctx context.Context, done, total uint64) {
	if ctx.Err() != nil {
		return
	}

	step := int(percent(done, total) * progressResolution)

	t.mu.Lock()
	if step <= t.lastProgress {
		t.mu.Unlock()
		return
	}

	t.lastProgress = step
	t.mu.Unlock()

	t.send(progressMsg{done: done, total: total})
}

// DisplayResult shows the lowest location and ends the live view.
func (t *TUI) DisplayResult(ctx context.Context, minimum uint64, elapsed time.Duration) {
	if ctx.Err() != nil {
		return
	}

	if !t.send(resultMsg{minimum: minimum, elapsed: elapsed}) {
		t.printf("%s\n", renderResult(minimum, elapsed))
	}
}

// DisplayTrace prints the value of a seed after every stage.
func (t *TUI) DisplayTrace(ctx context.Context, chain m.Chain, seed uint64, trail []uint64) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s\n", renderTrace(chain, seed, trail))
}

// DisplayReports prints saved reports.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.Report) {
	if ctx.Err() != nil {
		return
	}

	if len(reports) == 0 {
		t.printf("%s\n", subtleStyle.Render("No reports found"))
		return
	}

	t.printf("%s\n%s", titleStyle.Render(fmt.Sprintf("Reports (%d)", len(reports))), renderReportsTable(reports))
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func (t *TUI) progressWidth() int {
	f, ok := t.output.(*os.File)
	if !ok {
		return defaultProgressWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return defaultProgressWidth
	}

	return clampProgressWidth(width)
}

func clampProgressWidth(terminalWidth int) int {
	width := terminalWidth - 4
	if width < 10 {
		return 10
	}

	return min(width, maxProgressWidth)
}

type (
	solveStartMsg SolveInfo
	progressMsg   struct{ done, total uint64 }
	resultMsg     struct {
		minimum uint64
		elapsed time.Duration
	}
)

// solveModel is the Bubble Tea model of a running search.
type solveModel struct {
	spinner  spinner.Model
	progress progress.Model
	info     *SolveInfo
	done     uint64
	total    uint64
	minimum  uint64
	elapsed  time.Duration
	finished bool
}

func newSolveModel(total uint64, width int) solveModel {
	return solveModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(width)),
		total:    total,
	}
}

func (sm solveModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solveStartMsg:
		info := SolveInfo(msg)
		sm.info = &info
	case progressMsg:
		sm.done, sm.total = msg.done, msg.total
	case resultMsg:
		sm.finished = true
		sm.minimum, sm.elapsed = msg.minimum, msg.elapsed

		return sm, tea.Quit
	case tea.WindowSizeMsg:
		sm.progress.Width = clampProgressWidth(msg.Width)
	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm solveModel) View() string {
	var b strings.Builder

	if sm.info != nil {
		b.WriteString(subtleStyle.Render(describeSolve(*sm.info)))
		b.WriteString("\n")
	}

	if sm.finished {
		b.WriteString(renderResult(sm.minimum, sm.elapsed))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(sm.spinner.View())
	b.WriteString(" Searching ")
	b.WriteString(sm.progress.ViewAs(percent(sm.done, sm.total)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d / %d seeds", sm.done, sm.total)))
	b.WriteString("\n")

	return b.String()
}

func describeSolve(info SolveInfo) string {
	return fmt.Sprintf("%d seed(s) in %d range(s), %d worker(s), mode %s, strategy %s",
		info.Seeds, info.Ranges, info.Threads, info.Mode, info.Strategy)
}

func renderResult(minimum uint64, elapsed time.Duration) string {
	return resultStyle.Render(fmt.Sprintf("Lowest location: %d", minimum)) +
		subtleStyle.Render(fmt.Sprintf(" (%s)", elapsed.Round(time.Millisecond)))
}

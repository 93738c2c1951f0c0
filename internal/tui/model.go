// Package tui implements the interactive dashboard: an equation form on
// top, the solution list below it, and a status line sampling system load.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/diocalc/internal/cli"
	"github.com/agbru/diocalc/internal/config"
	apperrors "github.com/agbru/diocalc/internal/errors"
	"github.com/agbru/diocalc/internal/metrics"
	"github.com/agbru/diocalc/internal/orchestration"
	"github.com/agbru/diocalc/internal/sysmon"
)

// Field indices of the equation form.
const (
	fieldD = iota
	fieldV
	fieldW
	fieldP
	fieldQ
	numFields
)

var fieldLabels = [numFields]string{"d", "v", "w", "p", "q"}

// Messages exchanged between commands and the model.
type (
	// SolveDoneMsg carries the outcome of a background solve.
	SolveDoneMsg struct {
		Result orchestration.Result
	}
	// SysStatsMsg carries a system load and heap sample.
	SysStatsMsg struct {
		CPUPercent float64
		MemPercent float64
		HeapAlloc  uint64
	}
	// TickMsg drives periodic sampling.
	TickMsg time.Time
	// ContextCancelledMsg reports that the parent context ended.
	ContextCancelledMsg struct{ Err error }
)

// Model is the root bubbletea model for the dashboard.
type Model struct {
	inputs     [numFields]textinput.Model
	focus      int
	constrainT bool

	result   *orchestration.Result
	inputErr string
	solving  bool

	cpuPercent float64
	memPercent float64
	heapAlloc  uint64

	keymap   KeyMap
	version  string
	width    int
	height   int
	done     bool
	exitCode int

	ctx     context.Context
	timeout time.Duration
}

// NewModel creates a dashboard model seeded from cfg.
func NewModel(ctx context.Context, cfg config.AppConfig, version string) Model {
	m := Model{
		constrainT: cfg.ConstrainT,
		keymap:     DefaultKeyMap(),
		version:    version,
		exitCode:   apperrors.ExitSuccess,
		ctx:        ctx,
		timeout:    cfg.Timeout,
	}

	seeds := [numFields]int64{cfg.D, cfg.V, cfg.W, cfg.P, cfg.Q}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fieldLabels[i] + " = "
		ti.PromptStyle = labelStyle
		ti.CharLimit = 20
		ti.Width = 22
		ti.SetValue(strconv.FormatInt(seeds[i], 10))
		m.inputs[i] = ti
	}
	m.inputs[fieldD].Focus()
	m.inputs[fieldD].PromptStyle = focusPromptStyle

	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SolveDoneMsg:
		m.solving = false
		res := msg.Result
		m.result = &res
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		m.heapAlloc = msg.HeapAlloc
		return m, nil

	case ContextCancelledMsg:
		m.done = true
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextField):
		return m.setFocus((m.focus + 1) % numFields), nil

	case key.Matches(msg, m.keymap.PrevField):
		return m.setFocus((m.focus + numFields - 1) % numFields), nil

	case key.Matches(msg, m.keymap.ToggleBound):
		m.constrainT = !m.constrainT
		return m, nil

	case key.Matches(msg, m.keymap.Solve):
		job, err := m.currentJob()
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.inputErr = ""
		m.solving = true
		return m, solveCmd(m.ctx, job, m.timeout)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to field i.
func (m Model) setFocus(i int) Model {
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].PromptStyle = labelStyle
	m.focus = i
	m.inputs[i].Focus()
	m.inputs[i].PromptStyle = focusPromptStyle
	return m
}

// currentJob parses the form into a solvable job.
func (m Model) currentJob() (orchestration.Job, error) {
	var vals [numFields]int64
	for i, ti := range m.inputs {
		n, err := strconv.ParseInt(strings.TrimSpace(ti.Value()), 10, 64)
		if err != nil {
			return orchestration.Job{}, fmt.Errorf("%s is not an integer", fieldLabels[i])
		}
		vals[i] = n
	}
	return orchestration.Job{
		D: vals[fieldD], V: vals[fieldV], W: vals[fieldW],
		P: vals[fieldP], Q: vals[fieldQ],
		ConstrainT: m.constrainT,
	}, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := headerStyle.Render("Diophantine Solver") + " " + versionStyle.Render(m.version)

	var form strings.Builder
	for i := range m.inputs {
		form.WriteString(m.inputs[i].View())
		form.WriteByte('\n')
	}
	side := "s"
	if m.constrainT {
		side = "t"
	}
	form.WriteString(labelStyle.Render("bound applies to ") + valueStyle.Render(side))
	formPanel := panelStyle.Render(form.String())

	resultPanel := panelStyle.Render(m.renderResults())

	stats := statsStyle.Render(fmt.Sprintf("CPU %5.1f%%  MEM %5.1f%%  HEAP %.1f MiB",
		m.cpuPercent, m.memPercent, float64(m.heapAlloc)/(1024*1024)))
	footer := strings.Join([]string{
		footerKeyStyle.Render("enter") + footerDescStyle.Render(" solve"),
		footerKeyStyle.Render("tab") + footerDescStyle.Render(" field"),
		footerKeyStyle.Render("ctrl+t") + footerDescStyle.Render(" bound side"),
		footerKeyStyle.Render("esc") + footerDescStyle.Render(" quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left, header, formPanel, resultPanel, stats, footer)
}

// renderResults renders the body of the solution panel.
func (m Model) renderResults() string {
	switch {
	case m.inputErr != "":
		return errorStyle.Render(m.inputErr)
	case m.solving:
		return labelStyle.Render("solving...")
	case m.result == nil:
		return labelStyle.Render("press enter to solve")
	}

	res := *m.result
	if res.Err != nil {
		return errorStyle.Render(res.Err.Error())
	}

	var b strings.Builder
	b.WriteString(valueStyle.Render(cli.FormatIdentity(res.Job.D, res.Job.V, res.GCD, res.A, res.B)))
	b.WriteByte('\n')
	if len(res.Solutions) == 0 {
		b.WriteString(emptyStyle.Render("no solution in range"))
		return b.String()
	}
	for _, sol := range res.Solutions {
		b.WriteString(solutionStyle.Render(cli.FormatSolution(sol)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// solveCmd runs one solve off the UI goroutine.
func solveCmd(ctx context.Context, job orchestration.Job, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		solveCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return SolveDoneMsg{Result: orchestration.SolveJob(solveCtx, job)}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats plus the
// process heap size.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		snap := metrics.NewMemoryCollector().Snapshot()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent, HeapAlloc: snap.HeapAlloc}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}

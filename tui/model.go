// Package tui drives a traversal.Stepper from a bubbletea program.
//
// Controls: left click, space or enter steps; r resets and restarts the
// search; tab cycles the algorithm; q or ctrl+c quits. Scene reloads arrive
// as ReloadMsg values and relabel the board in place.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/logging"
	"github.com/katalvlaran/graphwalk/render"
	"github.com/katalvlaran/graphwalk/scene"
	"github.com/katalvlaran/graphwalk/traversal"
)

// Layout
const (
	logPaneHeight  = 6
	chromeHeight   = 4 // header, status, help, spacing
	defaultWidth   = 72
	defaultHeight  = 20
	minCanvasWidth = 10
	minCanvasRows  = 5
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
)

// ReloadMsg carries the result of a scene file reload.
type ReloadMsg struct {
	Def *scene.Definition
	Err error
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the header title.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithRing shows the lines of ring in the log pane.
func WithRing(r *logging.Ring) Option {
	return func(m *Model) { m.ring = r }
}

// WithLogger sets the logger for reload events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithCanvasSize sets the canvas size used until the first window resize.
func WithCanvasSize(width, height int) Option {
	return func(m *Model) {
		if width >= minCanvasWidth {
			m.width = width
		}
		if height >= minCanvasRows {
			m.height = height
		}
	}
}

// Model is the bubbletea model wrapping a Stepper and its Board.
type Model struct {
	stepper *traversal.Stepper
	board   *render.Board
	ring    *logging.Ring
	log     *zap.Logger
	logs    viewport.Model
	title   string
	notice  string
	width   int
	height  int
	seq     uint64
}

// New builds a Model. The stepper is expected to be initialized with
// board among its observers.
func New(st *traversal.Stepper, board *render.Board, opts ...Option) Model {
	m := Model{
		stepper: st,
		board:   board,
		log:     zap.NewNop(),
		title:   "graphwalk",
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logs = viewport.New(m.width, logPaneHeight)
	m.logs.Style = paneStyle
	m.syncLogs()

	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.step()
		case "r":
			m.stepper.Reset()
			m.stepper.Start()
			m.notice = ""
		case "tab":
			m.stepper.SwitchAlgorithm()
		default:
			m.logs, cmd = m.logs.Update(msg)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.step()
		} else {
			m.logs, cmd = m.logs.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = max(msg.Width-2, minCanvasWidth)
		m.height = max(msg.Height-logPaneHeight-chromeHeight-2, minCanvasRows)
		m.logs.Width = msg.Width
		m.logs.Height = logPaneHeight

	case ReloadMsg:
		m.reload(msg)
	}

	m.syncLogs()

	return m, cmd
}

// step advances the search when one is running.
func (m *Model) step() {
	if m.stepper.State() != traversal.Searching {
		return
	}
	res := m.stepper.Step()
	if res.Reached {
		m.notice = "goal reached"
	}
}

// reload applies a reloaded definition: names and priorities in place,
// anything else needs a restart.
func (m *Model) reload(msg ReloadMsg) {
	if msg.Err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", msg.Err)
		m.log.Warn("scene reload rejected", zap.Error(msg.Err))
		return
	}
	g := m.stepper.Graph()
	changed, err := scene.Relabel(g, msg.Def)
	if errors.Is(err, scene.ErrTopologyChanged) {
		m.notice = "topology changed: restart to apply"
		m.log.Warn("scene topology changed; relabel skipped")
		return
	}
	if err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", err)
		return
	}
	for _, id := range changed {
		m.board.Relabel(id, g.Name(id))
	}
	if len(changed) > 0 {
		m.stepper.Reprioritize()
	}
	m.notice = fmt.Sprintf("reloaded: %d vertices updated", len(changed))
	m.log.Info("scene relabeled", zap.Int("changed", len(changed)))
}

// syncLogs refreshes the log pane when the ring has new lines.
func (m *Model) syncLogs() {
	if m.ring == nil {
		return
	}
	if seq := m.ring.Seq(); seq != m.seq {
		m.seq = seq
		m.logs.SetContent(strings.Join(m.ring.Lines(), "\n"))
		m.logs.GotoBottom()
	}
}

// Notice returns the last transient message (reload result, goal reached).
func (m Model) Notice() string { return m.notice }

func (m Model) View() string {
	header := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(m.title),
		m.stepper.Algorithm().Title(),
		stateStyle.Render(m.stepper.State().String()),
	)
	status := statusStyle.Render(m.board.StatusLine())
	if m.notice != "" {
		status += "  " + noticeStyle.Render(m.notice)
	}
	help := subtleStyle.Render("click/space: step • r: reset • tab: algorithm • q: quit")

	parts := []string{header, m.board.Canvas(m.width, m.height), status}
	if m.ring != nil {
		parts = append(parts, m.logs.View())
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

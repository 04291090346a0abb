package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fourstack/connect4/internal/domain"
	"github.com/fourstack/connect4/internal/engine"
)

// Mode selects who sits at the table.
type Mode int

const (
	// ModeSelfPlay has the engine play both colors.
	ModeSelfPlay Mode = iota
	// ModeHuman puts the human on Red (first move), keys 1-7.
	ModeHuman
)

// selfPlayPause keeps engine-vs-engine games watchable.
const selfPlayPause = 400 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	redStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	blackStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type engineMoveMsg struct {
	res engine.Result
	err error
}

type Model struct {
	game     *domain.Game
	engine   *engine.Engine
	mode     Mode
	human    domain.Cell
	last     *engine.Result
	status   string
	errText  string
	thinking bool
}

func New(mode Mode, eng *engine.Engine) Model {
	m := Model{
		game:   domain.NewGame(),
		engine: eng,
		mode:   mode,
		human:  domain.Red,
	}
	if mode == ModeHuman {
		m.status = "Your move: press 1-7 to drop a piece"
	} else {
		m.status = "Engine self-play"
	}
	return m
}

// Run starts the interactive program and blocks until it quits.
func Run(mode Mode, eng *engine.Engine) error {
	_, err := tea.NewProgram(New(mode, eng), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.engineToMove() {
		return m.think()
	}
	return nil
}

func (m Model) engineToMove() bool {
	if m.game.IsFinished() {
		return false
	}
	return m.mode == ModeSelfPlay || m.game.CurrentPlayer != m.human
}

// think searches on a clone so the live board is never mutated from
// the command goroutine.
func (m Model) think() tea.Cmd {
	board := m.game.Board.Clone()
	player := m.game.CurrentPlayer
	eng := m.engine
	pause := time.Duration(0)
	if m.mode == ModeSelfPlay {
		pause = selfPlayPause
	}
	return func() tea.Msg {
		res, err := eng.ChooseMove(context.Background(), board, player)
		if pause > 0 {
			time.Sleep(pause)
		}
		return engineMoveMsg{res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7":
			return m.humanMove(int(key[0] - '1'))
		}

	case engineMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.errText = fmt.Sprintf("engine error: %v", msg.err)
			return m, nil
		}
		if _, err := m.game.MakeMove(msg.res.Column); err != nil {
			m.errText = fmt.Sprintf("engine move rejected: %v", err)
			return m, nil
		}
		res := msg.res
		m.last = &res
		m.status = fmt.Sprintf("Engine played column %d (score %d, depth %d)",
			res.Column+1, res.Score, res.Depth)
		if m.game.IsFinished() {
			m.status = m.outcome()
			return m, nil
		}
		if m.engineToMove() {
			m.thinking = true
			return m, m.think()
		}
		m.status += ", your move"
		return m, nil
	}
	return m, nil
}

func (m Model) humanMove(column int) (tea.Model, tea.Cmd) {
	if m.mode != ModeHuman || m.thinking || m.game.IsFinished() {
		return m, nil
	}
	if _, err := m.game.MakeMove(column); err != nil {
		m.status = fmt.Sprintf("Column %d: %v", column+1, err)
		return m, nil
	}
	m.errText = ""
	if m.game.IsFinished() {
		m.status = m.outcome()
		return m, nil
	}
	m.status = "Engine thinking..."
	m.thinking = true
	return m, m.think()
}

func (m Model) outcome() string {
	switch m.game.Status {
	case domain.StatusWon:
		return fmt.Sprintf("%s wins after %d moves! Press q to quit.",
			playerName(m.game.Winner), len(m.game.Moves))
	case domain.StatusDraw:
		return "The game is a draw. Press q to quit."
	}
	return ""
}

func playerName(c domain.Cell) string {
	if c == domain.Red {
		return "Red"
	}
	return "Black"
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Connect Four"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")

	if !m.game.IsFinished() {
		turn := playerName(m.game.CurrentPlayer)
		sb.WriteString(fmt.Sprintf("Turn %d: %s to move\n", len(m.game.Moves)+1, turn))
	}
	sb.WriteString(statusStyle.Render(m.status))
	sb.WriteString("\n")
	if m.errText != "" {
		sb.WriteString(errStyle.Render(m.errText))
		sb.WriteString("\n")
	}
	sb.WriteString(frameStyle.Render("q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderBoard() string {
	var sb strings.Builder
	for row := domain.Rows - 1; row >= 0; row-- {
		sb.WriteString(frameStyle.Render("|"))
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(" ")
			switch m.game.Board.Cell(col, row) {
			case domain.Red:
				sb.WriteString(redStyle.Render("●"))
			case domain.Black:
				sb.WriteString(blackStyle.Render("●"))
			default:
				sb.WriteString(frameStyle.Render("·"))
			}
		}
		sb.WriteString(" ")
		sb.WriteString(frameStyle.Render("|"))
		sb.WriteString("\n")
	}
	sb.WriteString(frameStyle.Render("  1 2 3 4 5 6 7"))
	return sb.String()
}

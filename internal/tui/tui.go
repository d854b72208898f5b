package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tatianab/maze-game/internal/engine"
	"github.com/tatianab/maze-game/internal/models"
)

type sessionState int

const (
	stateLoading sessionState = iota
	statePlaying
	stateFinished
	stateError
)

type model struct {
	ctx       context.Context
	state     sessionState
	engine    *engine.Engine
	game      models.GameState
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
	busy      bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F")).
			Bold(true)

	titleCase = cases.Title(language.English)
)

// NewModel returns a model whose engine calls are bound to ctx.
func NewModel(ctx context.Context, eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do? (type help)"
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	return model{
		ctx:       ctx,
		state:     stateLoading,
		engine:    eng,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.start())
}

type startedMsg struct {
	narrative string
	game      models.GameState
}

type turnProcessedMsg struct {
	outcome string
	status  string
	game    models.GameState
	err     error
}

// walkKeys maps arrow keys to walk commands while the input line is empty.
var walkKeys = map[tea.KeyType]string{
	tea.KeyUp:    "walk north",
	tea.KeyDown:  "walk south",
	tea.KeyLeft:  "walk west",
	tea.KeyRight: "walk east",
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying || m.busy {
				return m, nil
			}
			action := strings.TrimSpace(m.textInput.Value())
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()

			switch strings.ToLower(action) {
			case "/quit", "quit", "q":
				return m, tea.Quit
			}
			return m.submit(action)

		case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
			if m.state == statePlaying && !m.busy && m.textInput.Value() == "" {
				return m.submit(walkKeys[msg.Type])
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case startedMsg:
		m.game = msg.game
		m.state = statePlaying
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), max(m.height-6, 10))
		}
		m.appendLog(gameStyle.Render(m.wrap(msg.narrative)))
		m.appendLog(gameStyle.Render(m.wrap(msg.game.Description)))
		return m, nil

	case turnProcessedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.game = msg.game
		m.appendLog(styleOutcome(msg.status).Render(m.wrap(msg.outcome)))
		if msg.status != models.StatusPlaying {
			m.state = stateFinished
			m.textInput.Placeholder = "The tale has ended. Press Esc to quit."
			m.textInput.Blur()
		}
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) submit(action string) (tea.Model, tea.Cmd) {
	m.busy = true
	m.appendLog(userStyle.Width(m.logWidth()).Render("> " + action))
	return m, m.processTurn(action)
}

func (m *model) appendLog(s string) {
	if m.gameLog != "" {
		m.gameLog += "\n\n"
	}
	m.gameLog += s
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	if m.width == 0 {
		return 80
	}
	return int(float64(m.width) * 0.65)
}

func (m model) wrap(s string) string {
	return wordwrap.String(s, m.logWidth()-2)
}

func styleOutcome(status string) lipgloss.Style {
	switch status {
	case models.StatusWon:
		return wonStyle
	case models.StatusLost:
		return lostStyle
	default:
		return gameStyle
	}
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = "\n  Lighting the torches... please wait.\n"

	case statePlaying, stateFinished:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: help, /quit. Arrow keys walk when the prompt is empty.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	g := m.game

	room := titleStyle.Render("ROOM") + "\n" + g.Room + "\n\n"
	score := titleStyle.Render("SCORE") + "\n" + fmt.Sprintf("%d", g.Score) + "\n\n"

	exits := titleStyle.Render("EXITS") + "\n"
	if len(g.Directions) == 0 {
		exits += "(none)\n\n"
	} else {
		names := make([]string, len(g.Directions))
		for i, d := range g.Directions {
			names[i] = titleCase.String(d)
		}
		exits += strings.Join(names, ", ") + "\n\n"
	}

	actions := titleStyle.Render("ACTIONS") + "\n"
	if len(g.Actions) == 0 {
		actions += "(none)\n\n"
	} else {
		actions += strings.Join(g.Actions, ", ") + "\n\n"
	}

	inventory := titleStyle.Render("INVENTORY") + "\n"
	if len(g.Inventory) == 0 {
		inventory += "(empty)\n"
	} else {
		for _, item := range g.Inventory {
			inventory += "- " + item + "\n"
		}
	}

	content := room + score + exits + actions + inventory + "\n" + titleStyle.Render("MAP") + "\n" + renderMap(g.Map)

	stateWidth := m.width - m.logWidth() - 3
	return stateStyle.Width(max(stateWidth, 24)).Height(m.viewport.Height).Render(content)
}

func (m model) start() tea.Cmd {
	return func() tea.Msg {
		narrative := m.engine.Start(m.ctx)
		return startedMsg{narrative: narrative, game: m.engine.State()}
	}
}

func (m model) processTurn(action string) tea.Cmd {
	return func() tea.Msg {
		outcome, status, err := m.engine.ProcessTurn(m.ctx, action)
		return turnProcessedMsg{outcome: outcome, status: status, game: m.engine.State(), err: err}
	}
}

// Run plays the game full screen until the player quits or ctx is done.
func Run(ctx context.Context, eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(ctx, eng), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

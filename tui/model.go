// Package tui é o frontend de terminal: um tea.Model que dirige a partida.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/controls"
	"github.com/wvoliveira/pong/game"
)

const (
	minCols = 40
	minRows = 12
)

// Terminal não avisa quando a tecla é solta, então cada aperto vale alguns ticks.
const pulseTicks = 6

// Publisher recebe cada frame; o hub de espectadores implementa.
type Publisher interface {
	Publish(game.Snapshot)
	NewMatch() string
}

type tickMsg time.Time

type bannerMsg struct{ gen int }

type Model struct {
	match *game.Match
	latch *controls.Latch
	keys  keyMap
	pub   Publisher

	interval  time.Duration
	bannerLag time.Duration

	running bool
	banner  bool
	gen     int

	cols int
	rows int
}

func New(match *game.Match, rt configs.Runtime, pub Publisher) Model {
	interval := rt.TickInterval()
	return Model{
		match:     match,
		latch:     controls.NewLatch(),
		keys:      defaultKeys(),
		pub:       pub,
		interval:  interval,
		bannerLag: time.Duration(rt.BannerLag) * interval,
		cols:      80,
		rows:      20,
	}
}

// Começa no menu, sem ticks.
func (m Model) Init() tea.Cmd {
	m.publish()
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(minCols, msg.Width-2)
		m.rows = max(minRows, msg.Height-5)
		return m, nil

	case tickMsg:
		return m.handleTick()

	case bannerMsg:
		if msg.gen == m.gen {
			m.banner = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	return Render(m.match.Snapshot(), m.cols, m.rows, m.banner)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.running = false
	if m.match.Mode() != game.ModePlaying {
		return m, nil
	}

	events := m.match.Step(m.latch.Snapshot())
	m.publish()

	var cmds []tea.Cmd
	for _, e := range events {
		if e.Type == game.EventGameEnded {
			gen := m.gen
			cmds = append(cmds, tea.Tick(m.bannerLag, func(time.Time) tea.Msg { return bannerMsg{gen: gen} }))
		}
	}

	var tick tea.Cmd
	m, tick = m.schedule()
	cmds = append(cmds, tick)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.LeftUp):
		m.latch.Pulse(controls.LeftUp, pulseTicks)
	case key.Matches(msg, m.keys.LeftDown):
		m.latch.Pulse(controls.LeftDown, pulseTicks)
	case key.Matches(msg, m.keys.RightUp):
		m.latch.Pulse(controls.RightUp, pulseTicks)
	case key.Matches(msg, m.keys.RightDown):
		m.latch.Pulse(controls.RightDown, pulseTicks)

	case key.Matches(msg, m.keys.OnePlayer):
		m = m.start(game.SinglePlayer)
	case key.Matches(msg, m.keys.TwoPlayer):
		m = m.start(game.TwoPlayer)

	case key.Matches(msg, m.keys.Restart):
		m.match.RestartRound()
		m.latch.Reset()
		m.banner = false
		m.gen++
	case key.Matches(msg, m.keys.Pause):
		m.match.TogglePause()
	case key.Matches(msg, m.keys.Menu):
		m.match.OpenMenu()
		m.latch.Reset()
	default:
		return m, nil
	}

	m.publish()
	return m.schedule()
}

// start só vale a partir do menu ou de uma partida encerrada, como os botões do menu.
func (m Model) start(v game.Variant) Model {
	if mode := m.match.Mode(); mode != game.ModeMenu && mode != game.ModeEnded {
		return m
	}
	m.match.StartGame(v)
	m.latch.Reset()
	m.banner = false
	m.gen++
	if m.pub != nil {
		m.pub.NewMatch()
	}
	return m
}

// schedule agenda o próximo tick só enquanto a partida estiver rodando.
func (m Model) schedule() (Model, tea.Cmd) {
	if m.running || m.match.Mode() != game.ModePlaying {
		return m, nil
	}
	m.running = true
	return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) publish() {
	if m.pub != nil {
		m.pub.Publish(m.match.Snapshot())
	}
}

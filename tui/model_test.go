package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
)

type recorder struct {
	frames  []game.Snapshot
	matches int
}

func (r *recorder) Publish(s game.Snapshot) { r.frames = append(r.frames, s) }
func (r *recorder) NewMatch() string {
	r.matches++
	return "match"
}

func newTestModel(t *testing.T) (Model, *game.Match, *recorder) {
	t.Helper()
	cfg := configs.New()
	match := game.NewMatch(cfg.Rules, game.NewRand(1))
	rec := &recorder{}
	return New(match, cfg.Runtime, rec), match, rec
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_StartsInMenuWithoutTicks(t *testing.T) {
	m, match, _ := newTestModel(t)

	assert.Nil(t, m.Init())
	assert.Equal(t, game.ModeMenu, match.Mode())
	assert.Contains(t, m.View(), "two players")
}

func TestModel_StartSchedulesTicks(t *testing.T) {
	m, match, rec := newTestModel(t)

	m, cmd := update(t, m, runes("2"))

	assert.Equal(t, game.ModePlaying, match.Mode())
	assert.Equal(t, game.TwoPlayer, match.Variant())
	assert.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Equal(t, 1, rec.matches)

	m, cmd = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, uint64(1), match.Tick())
	assert.NotNil(t, cmd, "keeps ticking while playing")
	assert.NotEmpty(t, rec.frames)
}

func TestModel_PauseStopsScheduling(t *testing.T) {
	m, match, _ := newTestModel(t)
	m, _ = update(t, m, runes("1"))

	m, _ = update(t, m, runes("p"))
	assert.Equal(t, game.ModePaused, match.Mode())

	m, cmd := update(t, m, tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.False(t, m.running)
	assert.Equal(t, uint64(0), match.Tick())

	m, cmd = update(t, m, runes("p"))
	assert.Equal(t, game.ModePlaying, match.Mode())
	assert.NotNil(t, cmd, "resume schedules the next tick")
}

func TestModel_KeyPulsesMovePaddle(t *testing.T) {
	m, match, _ := newTestModel(t)
	m, _ = update(t, m, runes("2"))
	before := match.Paddle(game.Left).Y

	m, _ = update(t, m, runes("w"))
	m, _ = update(t, m, tickMsg(time.Now()))

	assert.Less(t, match.Paddle(game.Left).Y, before)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	beforeRight := match.Paddle(game.Right).Y
	update(t, m, tickMsg(time.Now()))
	assert.Greater(t, match.Paddle(game.Right).Y, beforeRight)
}

func TestModel_StartIgnoredMidGame(t *testing.T) {
	m, match, _ := newTestModel(t)
	m, _ = update(t, m, runes("1"))
	update(t, m, runes("2"))

	assert.Equal(t, game.SinglePlayer, match.Variant())
}

func TestModel_EscOpensMenu(t *testing.T) {
	m, match, _ := newTestModel(t)
	m, _ = update(t, m, runes("1"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, game.ModeMenu, match.Mode())
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_StaleBannerIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runes("1"))
	gen := m.gen
	m, _ = update(t, m, runes("r"))

	m, _ = update(t, m, bannerMsg{gen: gen})
	assert.False(t, m.banner)

	m, _ = update(t, m, bannerMsg{gen: m.gen})
	assert.True(t, m.banner)
}

func TestModel_WindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 118, m.cols)
	assert.Equal(t, 35, m.rows)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, minCols, m.cols)
	assert.Equal(t, minRows, m.rows)
}

func TestGrid_Dimensions(t *testing.T) {
	cfg := configs.New()
	match := game.NewMatch(cfg.Rules, game.NewRand(1))
	match.StartGame(game.TwoPlayer)

	lines := Grid(match.Snapshot(), 60, 20, false)
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Equal(t, 60, utf8.RuneCountInString(l))
	}

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, string(ballRune))
	assert.Equal(t, 6, strings.Count(joined, string(paddleRune)), "three rows per paddle")
}

func TestGrid_OffscreenBallSkipped(t *testing.T) {
	s := game.Snapshot{
		Arena: game.Arena{W: 960, H: 540},
		Ball:  game.Ball{X: -40, Y: 100, R: 9},
		Mode:  game.ModePlaying,
	}
	assert.NotContains(t, strings.Join(Grid(s, 60, 20, false), ""), string(ballRune))
}

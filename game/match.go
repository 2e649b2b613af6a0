package game

import (
	"fmt"

	"github.com/wvoliveira/pong/configs"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeEnded
)

var modeNames = [...]string{"menu", "playing", "paused", "ended"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if name == string(text) {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", text)
}

type Variant int

const (
	SinglePlayer Variant = iota
	TwoPlayer
)

var variantNames = [...]string{"1p", "2p"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Variant) UnmarshalText(text []byte) error {
	for i, name := range variantNames {
		if name == string(text) {
			*v = Variant(i)
			return nil
		}
	}
	return fmt.Errorf("unknown variant %q", text)
}

const (
	PlayerOne = "Player 1"
	PlayerTwo = "Player 2"
	Computer  = "AI"
)

// Match é o estado inteiro da partida. Só o driver de frames segura a instância.
type Match struct {
	rules configs.Rules
	rng   Rand
	ai    *AI

	arena   Arena
	mode    Mode
	variant Variant
	score   Score
	winner  string
	left    Paddle
	right   Paddle
	ball    Ball
	tick    uint64
}

func NewMatch(rules configs.Rules, rng Rand) *Match {
	m := &Match{
		rules: rules,
		rng:   rng,
		ai:    NewAI(rules, rng),
		arena: Arena{W: rules.ScreenWidth, H: rules.ScreenHeight},
		mode:  ModeMenu,
	}
	m.resetObjects()
	return m
}

func (m *Match) Mode() Mode { return m.mode }
func (m *Match) Variant() Variant { return m.variant }
func (m *Match) Score() Score { return m.score }
func (m *Match) Winner() string { return m.winner }
func (m *Match) Ball() Ball { return m.ball }
func (m *Match) Arena() Arena { return m.arena }
func (m *Match) Tick() uint64 { return m.tick }
func (m *Match) Paddle(s Side) Paddle {
	if s == Left {
		return m.left
	}
	return m.right
}

// StartGame zera o placar e começa uma partida nova no modo pedido.
func (m *Match) StartGame(v Variant) {
	m.variant = v
	m.score = Score{}
	m.winner = ""
	m.resetObjects()
	m.mode = ModePlaying
}

func (m *Match) TogglePause() {
	switch m.mode {
	case ModePlaying:
		m.mode = ModePaused
	case ModePaused:
		m.mode = ModePlaying
	}
}

// RestartRound reinicia placar e objetos. No menu só reseta, não começa.
func (m *Match) RestartRound() {
	m.score = Score{}
	m.winner = ""
	m.resetObjects()
	if m.mode == ModeMenu {
		return
	}
	m.mode = ModePlaying
}

func (m *Match) OpenMenu() {
	m.mode = ModeMenu
}

func (m *Match) resetObjects() {
	r := m.rules
	m.left = Paddle{
		X: r.PaddleMargin,
		Y: (r.ScreenHeight - r.PaddleHeight) / 2,
		W: r.PaddleWidth,
		H: r.PaddleHeight,
	}
	m.right = Paddle{
		X: r.ScreenWidth - r.PaddleMargin - r.PaddleWidth,
		Y: (r.ScreenHeight - r.PaddleHeight) / 2,
		W: r.PaddleWidth,
		H: r.PaddleHeight,
	}
	m.serve()
}

// serve recoloca a bola no centro com direção sorteada.
func (m *Match) serve() {
	r := m.rules
	vx := -r.ServeSpeedX
	if m.rng.Float64() > 0.5 {
		vx = r.ServeSpeedX
	}
	m.ball = Ball{
		X:  r.ScreenWidth / 2,
		Y:  r.ScreenHeight / 2,
		R:  r.BallRadius,
		VX: vx,
		VY: m.rng.Float64()*2*r.ServeSpreadY - r.ServeSpreadY,
	}
}

func (m *Match) winnerName(s Side) string {
	switch {
	case s == Left:
		return PlayerOne
	case m.variant == SinglePlayer:
		return Computer
	default:
		return PlayerTwo
	}
}

// checkWin encerra a partida quando algum lado chega ao placar limite.
func (m *Match) checkWin() (Event, bool) {
	for _, s := range []Side{Left, Right} {
		if m.score.Of(s) >= m.rules.WinningScore {
			m.winner = m.winnerName(s)
			m.mode = ModeEnded
			return Event{Type: EventGameEnded, Side: s, Winner: m.winner}, true
		}
	}
	return Event{}, false
}

package game

import (
	"testing"

	"github.com/wvoliveira/pong/configs"
)

// fixedRand devolve sempre o mesmo valor. 0.5 zera o ruído da IA
// e o VY do saque, e manda o saque para a esquerda.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func testRules() configs.Rules {
	return configs.New().Rules
}

func newTestMatch(t *testing.T, v Variant) *Match {
	t.Helper()
	m := NewMatch(testRules(), fixedRand(0.5))
	m.StartGame(v)
	return m
}

// parkBall deixa a bola no meio da arena, parada, longe de tudo.
func parkBall(m *Match) {
	m.ball.X = m.arena.W / 2
	m.ball.Y = m.arena.H / 2
	m.ball.VX = 0
	m.ball.VY = 0
}

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

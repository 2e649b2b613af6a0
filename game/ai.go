package game

import (
	"math"

	"github.com/wvoliveira/pong/configs"
)

// AI controla a raquete direita no modo de um jogador.
// Segue só a posição vertical da bola, com ruído e velocidade limitada
// abaixo da humana, então dá para ganhar dela.
type AI struct {
	speed   float64
	damping float64
	noise   float64
	rng     Rand
}

func NewAI(rules configs.Rules, rng Rand) *AI {
	return &AI{
		speed:   rules.AISpeed,
		damping: rules.AIDamping,
		noise:   rules.AINoise,
		rng:     rng,
	}
}

// Displacement devolve quanto a raquete anda neste tick, sem limitar à arena.
func (ai *AI) Displacement(p Paddle, b Ball) float64 {
	diff := b.Y - p.CenterY()
	noise := (ai.rng.Float64()*2 - 1) * ai.noise
	return sign(diff+noise) * math.Min(ai.speed, math.Abs(diff)/ai.damping)
}

// Move aplica o deslocamento e prende a raquete na arena.
func (ai *AI) Move(p *Paddle, b Ball, a Arena) {
	p.Y += ai.Displacement(*p, b)
	p.clamp(a)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

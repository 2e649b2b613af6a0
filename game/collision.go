package game

import (
	"math"

	"github.com/wvoliveira/pong/configs"
)

// Ângulo máximo de saída da raquete, medido a partir da horizontal.
const MaxBounceAngle = math.Pi / 3

// resolveWalls rebate a bola no teto e no chão. Devolve true se houve batida.
func resolveWalls(b *Ball, a Arena) bool {
	hit := false

	// Teto
	if b.Y-b.R <= 0 {
		b.Y = b.R
		b.VY = -b.VY
		hit = true
	}

	// Chão
	if b.Y+b.R >= a.H {
		b.Y = a.H - b.R
		b.VY = -b.VY
		hit = true
	}

	return hit
}

func paddleHit(b Ball, p Paddle, side Side) bool {
	if !p.spans(b.Y) {
		return false
	}

	// Basta a borda da bola alcançar ou passar a face; resolvePaddle a traz de volta.
	if side == Left {
		return b.X-b.R <= p.facingEdge(Left)
	}
	return b.X+b.R >= p.facingEdge(Right)
}

// resolvePaddle encosta a bola na face da raquete e calcula a nova velocidade.
func resolvePaddle(b *Ball, p Paddle, side Side, rules configs.Rules) bool {
	if !paddleHit(*b, p, side) {
		return false
	}

	dir := 1.0
	if side == Left {
		b.X = p.facingEdge(Left) + b.R
	} else {
		b.X = p.facingEdge(Right) - b.R
		dir = -1
	}

	deflect(b, p, dir, rules)
	return true
}

func deflect(b *Ball, p Paddle, dir float64, rules configs.Rules) {
	rel := (b.Y - p.CenterY()) / (p.H / 2)
	rel = math.Max(-1, math.Min(1, rel))
	angle := rel * MaxBounceAngle

	speed := math.Min(rules.SpeedCap, math.Abs(b.VX)+rules.SpeedIncrement)
	b.VX = speed * math.Cos(angle) * dir
	b.VY = speed * math.Sin(angle)

	// Evita a bola presa quicando quase na vertical.
	if math.Abs(b.VX) < rules.MinSpeedX {
		vx := math.Min(rules.MinSpeedX, speed)
		b.VX = vx * dir
		b.VY = math.Copysign(math.Sqrt(speed*speed-vx*vx), b.VY)
	}
}

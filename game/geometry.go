package game

import "math"

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Arena retangular, origem no canto superior esquerdo.
type Arena struct {
	W float64
	H float64
}

// Raquete: X fixo por lado, só Y muda.
type Paddle struct {
	X float64
	Y float64
	W float64
	H float64
}

func (p Paddle) CenterY() float64 { return p.Y + p.H/2 }

// Borda voltada para a bola: a direita na raquete esquerda, a esquerda na direita.
func (p Paddle) facingEdge(side Side) float64 {
	if side == Left {
		return p.X + p.W
	}
	return p.X
}

func (p Paddle) spans(y float64) bool {
	return y >= p.Y && y <= p.Y+p.H
}

// clamp mantém a raquete dentro da arena.
func (p *Paddle) clamp(a Arena) {
	p.Y = math.Max(0, math.Min(a.H-p.H, p.Y))
}

// Bola: centro (X, Y), raio R e velocidade por tick.
type Ball struct {
	X  float64
	Y  float64
	R  float64
	VX float64
	VY float64
}

func (b Ball) Speed() float64 { return math.Hypot(b.VX, b.VY) }

func (b *Ball) integrate() {
	b.X += b.VX
	b.Y += b.VY
}

type Score struct {
	Left  int
	Right int
}

func (s Score) Of(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

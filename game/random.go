package game

import "math/rand/v2"

// Rand é a fonte de aleatoriedade do saque e do ruído da IA.
// *rand.Rand satisfaz a interface; testes usam fontes fixas.
type Rand interface {
	Float64() float64
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

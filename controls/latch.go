package controls

import (
	"sync"

	"github.com/wvoliveira/pong/game"
)

// Controles lógicos que a apresentação pode segurar.
type Control int

const (
	LeftUp Control = iota
	LeftDown
	RightUp
	RightDown

	numControls
)

// Latch guarda quais controles estão pressionados. A apresentação escreve
// de qualquer goroutine; o driver lê uma vez por tick com Snapshot.
//
// Hold marca o controle como preso até Release. Pulse segura só por alguns
// ticks, para terminais que mandam o aperto e nunca a soltura.
type Latch struct {
	mu     sync.Mutex
	held   [numControls]bool
	pulses [numControls]int
}

func NewLatch() *Latch {
	return &Latch{}
}

func (l *Latch) Hold(c Control) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held[c] = true
}

func (l *Latch) Release(c Control) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held[c] = false
	l.pulses[c] = 0
}

// Set é um atalho para Hold/Release conforme pressed.
func (l *Latch) Set(c Control, pressed bool) {
	if pressed {
		l.Hold(c)
		return
	}
	l.Release(c)
}

func (l *Latch) Pulse(c Control, ticks int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ticks > l.pulses[c] {
		l.pulses[c] = ticks
	}
	// Direção oposta cancela o pulso anterior, senão a raquete trava.
	if o := opposite(c); l.pulses[o] > 0 {
		l.pulses[o] = 0
	}
}

// Snapshot lê tudo de uma vez e consome um tick dos pulsos.
func (l *Latch) Snapshot() game.Input {
	l.mu.Lock()
	defer l.mu.Unlock()

	var on [numControls]bool
	for c := range on {
		on[c] = l.held[c] || l.pulses[c] > 0
		if l.pulses[c] > 0 {
			l.pulses[c]--
		}
	}

	return game.Input{
		LeftUp:    on[LeftUp],
		LeftDown:  on[LeftDown],
		RightUp:   on[RightUp],
		RightDown: on[RightDown],
	}
}

// Reset solta tudo, usado ao abrir o menu.
func (l *Latch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = [numControls]bool{}
	l.pulses = [numControls]int{}
}

func opposite(c Control) Control {
	switch c {
	case LeftUp:
		return LeftDown
	case LeftDown:
		return LeftUp
	case RightUp:
		return RightDown
	default:
		return RightUp
	}
}

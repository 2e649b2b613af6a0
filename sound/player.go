package sound

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/wvoliveira/pong/game"
)

// Player toca os bipes dos eventos do jogo. Qualquer falha de áudio desliga o
// som e é logada uma vez; nunca volta para a simulação.
type Player struct {
	ctx    *audio.Context
	gain   float64
	mute   bool
	failed bool

	mu    sync.Mutex
	cache map[Tone][]byte
}

func NewPlayer(gain float64, mute bool) *Player {
	p := &Player{
		gain:  gain,
		mute:  mute,
		cache: make(map[Tone][]byte),
	}
	if mute {
		return p
	}

	if err := p.open(); err != nil {
		slog.Warn("audio disabled", "error", err)
		p.failed = true
	}
	return p
}

func (p *Player) open() (err error) {
	// audio.NewContext entra em pânico se já existir um contexto.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("creating audio context: %v", r)
		}
	}()

	p.ctx = audio.CurrentContext()
	if p.ctx == nil {
		p.ctx = audio.NewContext(SampleRate)
	}
	if p.ctx.SampleRate() != SampleRate {
		return fmt.Errorf("audio context runs at %d Hz, want %d", p.ctx.SampleRate(), SampleRate)
	}
	return nil
}

func (p *Player) Enabled() bool {
	return !p.mute && !p.failed && p.ctx != nil
}

func (p *Player) SetMute(mute bool) {
	p.mute = mute
	if !mute && p.ctx == nil && !p.failed {
		if err := p.open(); err != nil {
			slog.Warn("audio disabled", "error", err)
			p.failed = true
		}
	}
}

// Play toca o bipe de cada evento que tiver um.
func (p *Player) Play(events []game.Event) {
	if !p.Enabled() {
		return
	}
	for _, e := range events {
		tone, ok := CueFor(e)
		if !ok {
			continue
		}
		if err := p.beep(tone); err != nil {
			slog.Warn("audio disabled", "error", err, "event", e.Type.String())
			p.failed = true
			return
		}
	}
}

func (p *Player) beep(t Tone) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("playing %v Hz: %v", t.Freq, r)
		}
	}()

	player := p.ctx.NewPlayerFromBytes(p.pcm(t))
	player.Play()
	return nil
}

func (p *Player) pcm(t Tone) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	if b, ok := p.cache[t]; ok {
		return b
	}
	b := Square(t, p.gain, SampleRate)
	p.cache[t] = b
	return b
}

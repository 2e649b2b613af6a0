package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/wvoliveira/pong/game"
)

const SampleRate = 44100

// Tail de silêncio depois do bipe, para o player não cortar no meio da onda.
const tail = 20 * time.Millisecond

type Tone struct {
	Freq float64
	Dur  time.Duration
}

var (
	wallTone   = Tone{Freq: 600, Dur: 50 * time.Millisecond}
	paddleTone = Tone{Freq: 800, Dur: 50 * time.Millisecond}
	scoreTone  = Tone{Freq: 300, Dur: 80 * time.Millisecond}
	endTone    = Tone{Freq: 200, Dur: 300 * time.Millisecond}
)

// CueFor escolhe o bipe de cada evento.
func CueFor(e game.Event) (Tone, bool) {
	switch e.Type {
	case game.EventWallBounce:
		return wallTone, true
	case game.EventPaddleBounce:
		return paddleTone, true
	case game.EventScored:
		return scoreTone, true
	case game.EventGameEnded:
		return endTone, true
	}
	return Tone{}, false
}

// Square gera uma onda quadrada em PCM 16 bits estéreo little endian,
// com decaimento exponencial de gain até quase zero ao fim de t.Dur.
func Square(t Tone, gain float64, sampleRate int) []byte {
	n := int(float64(sampleRate) * t.Dur.Seconds())
	total := n + int(float64(sampleRate)*tail.Seconds())
	buf := make([]byte, total*4)
	if n == 0 {
		return buf
	}

	// gain * k^n = 0.0001
	k := math.Pow(0.0001/math.Max(gain, 0.0001), 1/float64(n))
	amp := gain
	period := float64(sampleRate) / t.Freq

	for i := 0; i < n; i++ {
		v := amp
		if math.Mod(float64(i), period) >= period/2 {
			v = -amp
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
		amp *= k
	}
	return buf
}

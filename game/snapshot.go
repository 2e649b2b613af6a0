package game

// Snapshot é a visão somente leitura que o render desenha a cada frame.
type Snapshot struct {
	Tick    uint64  `json:"tick"`
	Arena   Arena   `json:"arena"`
	Left    Paddle  `json:"left"`
	Right   Paddle  `json:"right"`
	Ball    Ball    `json:"ball"`
	Score   Score   `json:"score"`
	Mode    Mode    `json:"mode"`
	Variant Variant `json:"variant"`
	Winner  string  `json:"winner,omitempty"`
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:    m.tick,
		Arena:   m.arena,
		Left:    m.left,
		Right:   m.right,
		Ball:    m.ball,
		Score:   m.score,
		Mode:    m.mode,
		Variant: m.variant,
		Winner:  m.winner,
	}
}

package hud

// Banner atrasa o aviso de vencedor por alguns ticks depois do fim da partida.
// O valor zero está desarmado.
type Banner struct {
	armed bool
	left  int
}

// Arm começa a contagem; com lag 0 o aviso aparece já no próximo desenho.
func (b *Banner) Arm(lag int) {
	b.armed = true
	b.left = max(0, lag)
}

func (b *Banner) Reset() { *b = Banner{} }

// Tick deve rodar uma vez por Update, antes de simular o tick.
func (b *Banner) Tick() {
	if b.armed && b.left > 0 {
		b.left--
	}
}

func (b Banner) Visible() bool { return b.armed && b.left == 0 }

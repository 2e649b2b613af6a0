package game

// Controles seguros no início do tick.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

func axis(up, down bool) float64 {
	var d float64
	if up {
		d--
	}
	if down {
		d++
	}
	return d
}

// Direção vertical de cada raquete: -1 sobe, +1 desce, 0 parada.
func (in Input) LeftAxis() float64  { return axis(in.LeftUp, in.LeftDown) }
func (in Input) RightAxis() float64 { return axis(in.RightUp, in.RightDown) }

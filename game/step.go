package game

// Step avança um tick. Fora do modo playing não mexe em nada.
// Ordem: controles, raquetes, bola, paredes, raquete esquerda, direita, ponto.
func (m *Match) Step(in Input) []Event {
	if m.mode != ModePlaying {
		return nil
	}
	m.tick++

	var events []Event

	// 1. Raquetes
	m.left.Y += in.LeftAxis() * m.rules.PaddleSpeed
	if m.variant == TwoPlayer {
		m.right.Y += in.RightAxis() * m.rules.PaddleSpeed
	} else {
		m.ai.Move(&m.right, m.ball, m.arena)
	}
	m.left.clamp(m.arena)
	m.right.clamp(m.arena)

	// 2. Bola
	m.ball.integrate()

	// 3. Colisões
	if resolveWalls(&m.ball, m.arena) {
		events = append(events, Event{Type: EventWallBounce})
	}
	if resolvePaddle(&m.ball, m.left, Left, m.rules) {
		events = append(events, Event{Type: EventPaddleBounce, Side: Left})
	}
	if resolvePaddle(&m.ball, m.right, Right, m.rules) {
		events = append(events, Event{Type: EventPaddleBounce, Side: Right})
	}

	// 4. Ponto
	if scorer, ok := m.scorer(); ok {
		events = append(events, m.point(scorer)...)
	}

	return events
}

// scorer diz quem pontuou quando a bola sai da arena com folga.
func (m *Match) scorer() (Side, bool) {
	switch {
	case m.ball.X < -m.rules.ScoreMargin:
		return Right, true
	case m.ball.X > m.arena.W+m.rules.ScoreMargin:
		return Left, true
	}
	return Left, false
}

func (m *Match) point(s Side) []Event {
	if s == Left {
		m.score.Left++
	} else {
		m.score.Right++
	}
	events := []Event{{Type: EventScored, Side: s}}

	m.serve()
	if ended, ok := m.checkWin(); ok {
		events = append(events, ended)
	}
	return events
}

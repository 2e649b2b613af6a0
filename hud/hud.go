// Package hud monta os textos da sobreposição (menu, pausa, vencedor),
// iguais para todos os frontends.
package hud

import (
	"fmt"

	"github.com/wvoliveira/pong/game"
)

const Title = "PONG"

var menuLines = []string{
	"1  one player (vs AI)",
	"2  two players",
	"R  restart",
	"P  pause    Esc  menu",
}

// Controls descreve as teclas de cada lado no modo atual.
func Controls(v game.Variant) string {
	if v == game.TwoPlayer {
		return "Player 1: W/S  |  Player 2: Arrows"
	}
	return "Player 1: W/S  |  AI on the right"
}

func WinnerLine(winner string) string {
	return fmt.Sprintf("%s wins!", winner)
}

// Overlay devolve as linhas a desenhar sobre a arena. Vazio durante o jogo.
// banner diz se o anúncio do vencedor já pode aparecer.
func Overlay(s game.Snapshot, banner bool) []string {
	switch s.Mode {
	case game.ModeMenu:
		lines := []string{Title}
		if s.Winner != "" && banner {
			lines = append(lines, WinnerLine(s.Winner))
		}
		return append(lines, menuLines...)
	case game.ModePaused:
		return []string{"PAUSED", "P  resume    Esc  menu"}
	case game.ModeEnded:
		if !banner {
			return nil
		}
		return []string{WinnerLine(s.Winner), `Press "R" to restart or Esc for the menu`}
	}
	return nil
}

func ScoreText(s game.Score) (left, right string) {
	return fmt.Sprint(s.Left), fmt.Sprint(s.Right)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/hud"
)

const (
	paddleRune = '█'
	ballRune   = 'O'
	netRune    = '┊'
)

// Grid rasteriza o snapshot numa grade cols x rows, sem estilos.
func Grid(s game.Snapshot, cols, rows int, banner bool) []string {
	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", cols))
		if y%2 == 0 {
			cells[y][cols/2] = netRune
		}
	}
	if s.Arena.W <= 0 || s.Arena.H <= 0 {
		return join(cells)
	}

	sx := float64(cols) / s.Arena.W
	sy := float64(rows) / s.Arena.H

	for _, p := range []game.Paddle{s.Left, s.Right} {
		col := clampInt(int(p.X*sx), 0, cols-1)
		top := clampInt(int(p.Y*sy), 0, rows-1)
		bottom := clampInt(int((p.Y+p.H)*sy), top+1, rows)
		for y := top; y < bottom; y++ {
			cells[y][col] = paddleRune
		}
	}

	bx, by := int(s.Ball.X*sx), int(s.Ball.Y*sy)
	if bx >= 0 && bx < cols && by >= 0 && by < rows {
		cells[by][bx] = ballRune
	}

	lines := hud.Overlay(s, banner)
	start := rows/2 - len(lines)/2
	for i, line := range lines {
		y := start + i
		if y < 0 || y >= rows {
			continue
		}
		r := []rune(line)
		if len(r) > cols {
			r = r[:cols]
		}
		x := (cols - len(r)) / 2
		copy(cells[y][x:], r)
	}

	return join(cells)
}

func join(cells [][]rune) []string {
	out := make([]string, len(cells))
	for i, row := range cells {
		out[i] = string(row)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render monta a tela completa: placar, arena com borda e dica de controles.
func Render(s game.Snapshot, cols, rows int, banner bool) string {
	left, right := hud.ScoreText(s.Score)
	header := lipgloss.PlaceHorizontal(cols+2, lipgloss.Center, ScoreStyle.Render(left+"   "+right))

	arena := strings.Join(Grid(s, cols, rows, banner), "\n")

	parts := []string{header, ArenaStyle.Render(arena)}
	if s.Winner != "" && banner {
		parts = append(parts, BannerStyle.Render(hud.WinnerLine(s.Winner)))
	}
	parts = append(parts, HintStyle.Render(hud.Controls(s.Variant)+"   q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

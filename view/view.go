package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/hud"
)

var (
	background = color.RGBA{0x00, 0x00, 0x00, 0xff}
	netColor   = color.RGBA{0x0f, 0xf3, 0xb7, 0xff}
	paddleFill = color.RGBA{0x00, 0xff, 0xea, 0xff}
	ballFill   = color.RGBA{0xff, 0x2d, 0x6f, 0xff}
	bannerText = color.RGBA{0xff, 0x00, 0x44, 0xff}
	hintText   = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	shade      = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Renderer desenha um game.Snapshot numa imagem do ebiten. Não guarda estado
// do jogo, só a fonte.
type Renderer struct {
	face *text.GoXFace
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw pinta a arena inteira. banner libera o anúncio do vencedor.
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot, banner bool) {
	screen.Fill(background)

	w, h := float32(s.Arena.W), float32(s.Arena.H)

	// Rede tracejada no meio
	for y := float32(10); y < h; y += 28 {
		vector.FillRect(screen, w/2-3, y, 6, 16, netColor, false)
	}

	drawPaddle(screen, s.Left)
	drawPaddle(screen, s.Right)
	vector.FillCircle(screen, float32(s.Ball.X), float32(s.Ball.Y), float32(s.Ball.R), ballFill, true)

	left, right := hud.ScoreText(s.Score)
	r.centered(screen, left, float64(w)*0.25, 50, 4, paddleFill)
	r.centered(screen, right, float64(w)*0.75, 50, 4, paddleFill)

	r.drawOverlay(screen, s, banner)

	r.centered(screen, hud.Controls(s.Variant), float64(w)/2, float64(h)-20, 1, hintText)
}

func drawPaddle(screen *ebiten.Image, p game.Paddle) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), paddleFill, false)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s game.Snapshot, banner bool) {
	lines := hud.Overlay(s, banner)
	if len(lines) == 0 {
		return
	}

	w, h := s.Arena.W, s.Arena.H
	if s.Mode != game.ModeEnded {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), shade, false)
	}

	y := h/2 - float64(len(lines))*14
	for i, line := range lines {
		scale, clr := 1.5, color.Color(hintText)
		if i == 0 {
			scale, clr = 2.5, bannerText
			if s.Mode != game.ModeEnded && line == hud.Title {
				clr = paddleFill
			}
		}
		r.centered(screen, line, w/2, y, scale, clr)
		y += 14*scale + 8
	}
}

func (r *Renderer) centered(screen *ebiten.Image, msg string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, r.face, op)
}

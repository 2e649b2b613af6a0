package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/spectate"
	"github.com/wvoliveira/pong/view"
)

// Viewer só desenha o que chega do servidor; não manda nada de volta.
type Viewer struct {
	cfg      configs.Config
	renderer *view.Renderer

	mu      sync.Mutex
	frame   spectate.Frame
	waiting bool
	gone    bool
}

func (v *Viewer) receive(f spectate.Frame) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if f.MatchID != v.frame.MatchID {
		slog.Info("watching match", "match", f.MatchID)
	}
	v.frame = f
	v.waiting = false
}

func (v *Viewer) Update() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gone {
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	s := v.frame.Snapshot
	waiting := v.waiting
	v.mu.Unlock()

	if waiting {
		s = game.Snapshot{
			Arena: game.Arena{W: v.cfg.ScreenWidth, H: v.cfg.ScreenHeight},
			Mode:  game.ModeMenu,
		}
	}
	v.renderer.Draw(screen, s, true)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.cfg.ScreenWidth), int(v.cfg.ScreenHeight)
}

func main() {
	cfg, err := configs.FromArgs("spectator", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("error to load config", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := &Viewer{cfg: cfg, renderer: view.NewRenderer(), waiting: true}

	// Goroutine para receber atualizações do servidor
	go func() {
		err := spectate.Watch(ctx, cfg.ServerURL, viewer.receive)
		if err != nil {
			slog.Error("error to watch match", "url", cfg.ServerURL, "error", err)
		} else {
			slog.Info("disconnected from server")
		}
		viewer.mu.Lock()
		viewer.gone = true
		viewer.mu.Unlock()
	}()

	ebiten.SetWindowSize(int(cfg.ScreenWidth*cfg.Scale), int(cfg.ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle("Pong spectator")

	if err := ebiten.RunGame(viewer); err != nil {
		slog.Error("error to run viewer", "error", err)
		os.Exit(1)
	}
}

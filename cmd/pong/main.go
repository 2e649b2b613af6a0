package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/controls"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/hud"
	"github.com/wvoliveira/pong/sound"
	"github.com/wvoliveira/pong/spectate"
	"github.com/wvoliveira/pong/view"
)

// Teclas seguradas de cada raquete.
var held = map[controls.Control][]ebiten.Key{
	controls.LeftUp:    {ebiten.KeyW},
	controls.LeftDown:  {ebiten.KeyS},
	controls.RightUp:   {ebiten.KeyArrowUp},
	controls.RightDown: {ebiten.KeyArrowDown},
}

type Game struct {
	cfg      configs.Config
	match    *game.Match
	latch    *controls.Latch
	renderer *view.Renderer
	sound    *sound.Player
	hub      *spectate.Hub
	banner   hud.Banner
}

func (g *Game) Update() error {
	g.banner.Tick()
	g.readCommands()

	for c, keys := range held {
		pressed := false
		for _, k := range keys {
			pressed = pressed || ebiten.IsKeyPressed(k)
		}
		g.latch.Set(c, pressed)
	}

	// Só simula enquanto a partida estiver rodando.
	if g.match.Mode() == game.ModePlaying {
		events := g.match.Step(g.latch.Snapshot())
		g.sound.Play(events)
		for _, e := range events {
			if e.Type == game.EventGameEnded {
				slog.Info("game ended", "winner", e.Winner, "left", g.match.Score().Left, "right", g.match.Score().Right)
				g.banner.Arm(g.cfg.BannerLag)
			}
		}
	}

	if g.hub != nil {
		g.hub.Publish(g.match.Snapshot())
	}
	return nil
}

func (g *Game) readCommands() {
	mode := g.match.Mode()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.match.OpenMenu()
		g.latch.Reset()

	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.match.TogglePause()

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.match.RestartRound()
		g.banner.Reset()

	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.cfg.Mute = !g.cfg.Mute
		g.sound.SetMute(g.cfg.Mute)

	case mode == game.ModeMenu || mode == game.ModeEnded:
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad1) {
			g.start(game.SinglePlayer)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad2) {
			g.start(game.TwoPlayer)
		}
	}
}

func (g *Game) start(v game.Variant) {
	g.match.StartGame(v)
	g.latch.Reset()
	g.banner.Reset()

	if g.hub != nil {
		id := g.hub.NewMatch()
		slog.Info("game started", "variant", v.String(), "match", id)
		return
	}
	slog.Info("game started", "variant", v.String())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.match.Snapshot(), g.banner.Visible())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

func main() {
	cfg, err := configs.FromArgs("pong", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("error to load config", "error", err)
		os.Exit(2)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		cfg:      cfg,
		match:    game.NewMatch(cfg.Rules, game.NewRand(seed)),
		latch:    controls.NewLatch(),
		renderer: view.NewRenderer(),
		sound:    sound.NewPlayer(cfg.Volume, cfg.Mute),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.SpectateAddr != "" {
		g.hub = spectate.NewHub()
		go func() {
			// Falha no servidor de espectadores não derruba o jogo.
			if err := spectate.Serve(ctx, cfg.SpectateAddr, g.hub); err != nil {
				slog.Error("spectator server stopped", "error", err)
			}
		}()
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(int(cfg.ScreenWidth*cfg.Scale), int(cfg.ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle("Pong")

	slog.Info("starting", "seed", seed, "tps", cfg.TickRate, "spectate", cfg.SpectateAddr)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

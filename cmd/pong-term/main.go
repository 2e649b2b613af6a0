package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/spectate"
	"github.com/wvoliveira/pong/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := configs.FromArgs("pong-term", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	// O terminal é a tela; log só vai para arquivo quando pedido.
	if path := os.Getenv("PONG_LOG"); path != "" {
		f, err := tea.LogToFile(path, "pong")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	match := game.NewMatch(cfg.Rules, game.NewRand(seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pub tui.Publisher
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		pub = hub
		go func() {
			if err := spectate.Serve(ctx, cfg.SpectateAddr, hub); err != nil {
				slog.Error("spectator server stopped", "error", err)
			}
		}()
	}

	p := tea.NewProgram(tui.New(match, cfg.Runtime, pub), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

package configs

import (
	"flag"
	"fmt"
	"io"
)

// FromArgs lê as flags comuns aos binários. O arquivo de -config é aplicado
// primeiro; flags passadas explicitamente ganham do arquivo.
func FromArgs(name string, args []string, output io.Writer) (Config, error) {
	var (
		path string
		over = New().Runtime
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&path, "config", "", "YAML file with runtime settings")
	fs.Float64Var(&over.Scale, "scale", over.Scale, "window scale")
	fs.IntVar(&over.TickRate, "tps", over.TickRate, "simulation ticks per second")
	fs.Uint64Var(&over.Seed, "seed", over.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&over.Mute, "mute", over.Mute, "disable sound")
	fs.Float64Var(&over.Volume, "volume", over.Volume, "beep gain between 0 and 1")
	fs.StringVar(&over.SpectateAddr, "spectate", over.SpectateAddr, "address to publish the match to spectators (e.g. :8080)")
	fs.StringVar(&over.ServerURL, "server", over.ServerURL, "spectator websocket URL to watch")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = over.Scale
		case "tps":
			cfg.TickRate = over.TickRate
		case "seed":
			cfg.Seed = over.Seed
		case "mute":
			cfg.Mute = over.Mute
		case "volume":
			cfg.Volume = over.Volume
		case "spectate":
			cfg.SpectateAddr = over.SpectateAddr
		case "server":
			cfg.ServerURL = over.ServerURL
		}
	})

	if err := cfg.Runtime.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

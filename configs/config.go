package configs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRuntime = errors.New("invalid runtime config")

// Constantes do jogo. Não são configuráveis: todo frontend usa as mesmas.
type Rules struct {
	ScreenWidth  float64
	ScreenHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleSpeed  float64

	BallRadius     float64
	ServeSpeedX    float64
	ServeSpreadY   float64
	SpeedIncrement float64
	SpeedCap       float64
	MinSpeedX      float64

	AISpeed   float64
	AIDamping float64
	AINoise   float64

	ScoreMargin  float64
	WinningScore int
}

// Ajustes de execução, podem vir de arquivo YAML ou flags.
type Runtime struct {
	Scale     float64 `yaml:"scale"`
	TickRate  int     `yaml:"tick_rate"`
	Seed      uint64  `yaml:"seed"`
	Mute      bool    `yaml:"mute"`
	Volume    float64 `yaml:"volume"`
	BannerLag int     `yaml:"banner_lag"`

	SpectateAddr string `yaml:"spectate_addr"`
	ServerURL    string `yaml:"server_url"`
}

type Config struct {
	Rules
	Runtime
}

func New() Config {
	return Config{
		Rules: Rules{
			ScreenWidth:  960,
			ScreenHeight: 540,

			PaddleWidth:  14,
			PaddleHeight: 100,
			PaddleMargin: 20,
			PaddleSpeed:  6,

			BallRadius:     9,
			ServeSpeedX:    6,
			ServeSpreadY:   3,
			SpeedIncrement: 0.7,
			SpeedCap:       12,
			MinSpeedX:      3,

			AISpeed:   4.5,
			AIDamping: 15,
			AINoise:   10,

			ScoreMargin:  50,
			WinningScore: 11,
		},
		Runtime: Runtime{
			Scale:     1,
			TickRate:  60,
			Volume:    0.03,
			BannerLag: 12,
			ServerURL: "ws://localhost:8080/ws",
		},
	}
}

// Load parte dos valores padrão e sobrepõe o que estiver no arquivo.
// Caminho vazio devolve só os padrões.
func Load(path string) (Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg.Runtime); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Runtime.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r Runtime) Validate() error {
	switch {
	case r.Scale <= 0 || r.Scale > 4:
		return fmt.Errorf("%w: scale %v out of (0, 4]", ErrInvalidRuntime, r.Scale)
	case r.TickRate < 10 || r.TickRate > 240:
		return fmt.Errorf("%w: tick_rate %d out of [10, 240]", ErrInvalidRuntime, r.TickRate)
	case r.Volume < 0 || r.Volume > 1:
		return fmt.Errorf("%w: volume %v out of [0, 1]", ErrInvalidRuntime, r.Volume)
	case r.BannerLag < 0:
		return fmt.Errorf("%w: banner_lag must not be negative", ErrInvalidRuntime)
	}
	return nil
}

// Intervalo entre ticks do loop de simulação.
func (r Runtime) TickInterval() time.Duration {
	return time.Second / time.Duration(r.TickRate)
}

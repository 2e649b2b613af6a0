package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNew_DefaultsAreConsistent(t *testing.T) {
	cfg := New()

	assert.NoError(t, cfg.Runtime.Validate())
	assert.Less(t, cfg.AISpeed, cfg.PaddleSpeed, "AI must be slower than a human paddle")
	assert.Greater(t, cfg.SpeedCap, cfg.ServeSpeedX)
	assert.Less(t, cfg.MinSpeedX, cfg.ServeSpeedX)
	assert.Equal(t, 11, cfg.WinningScore)
	assert.Less(t, cfg.PaddleHeight, cfg.ScreenHeight)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_OverlaysRuntime(t *testing.T) {
	path := writeConfig(t, "scale: 2\nseed: 42\nmute: true\nspectate_addr: \":9000\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Mute)
	assert.Equal(t, ":9000", cfg.SpectateAddr)
	assert.Equal(t, 60, cfg.TickRate, "unset fields keep defaults")
	assert.Equal(t, New().Rules, cfg.Rules)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_RejectsPhysicsKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "speed_cap: 40\n"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "tick_rate: 1\n"))
	assert.ErrorIs(t, err, ErrInvalidRuntime)

	_, err = Load(writeConfig(t, "volume: 3\n"))
	assert.ErrorIs(t, err, ErrInvalidRuntime)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRuntime_TickInterval(t *testing.T) {
	r := New().Runtime
	r.TickRate = 50
	assert.Equal(t, 20*time.Millisecond, r.TickInterval())
}

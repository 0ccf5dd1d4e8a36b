package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	conf := Default()
	require.NoError(t, conf.Validate())
	assert.Equal(t, DefaultNbTested, conf.NbTested)
	assert.Equal(t, DefaultTickInterval, conf.TickInterval.Duration)
	assert.Equal(t, 3, conf.Population.NiceAsteroids)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
nb_tested: 50
seed: 7
tick_interval: 15ms
population:
  asteroids: 12
  enterprises: 0
ssh:
  port: "2323"
`)
	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, conf.NbTested)
	assert.Equal(t, uint64(7), conf.Seed)
	assert.Equal(t, 15*time.Millisecond, conf.TickInterval.Duration)
	assert.Equal(t, 12, conf.Population.Asteroids)
	assert.Equal(t, 0, conf.Population.Enterprises)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2, conf.Population.SpaceTrucks)
	assert.Equal(t, DefaultRenderSamples, conf.RenderSamples)
	assert.Equal(t, "2323", conf.SSH.Port)
	assert.Equal(t, "::", conf.SSH.Host)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "scene.toml", `
nb_tested = 25
tick_interval = "1s"
log_level = "debug"

[population]
asteroids = 4
nice_asteroids = 0
`)
	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, conf.NbTested)
	assert.Equal(t, time.Second, conf.TickInterval.Duration)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 4, conf.Population.Asteroids)
	assert.Equal(t, 0, conf.Population.NiceAsteroids)
	assert.Equal(t, 1, conf.Population.Enterprises)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported extension", "scene.json", `{}`, ErrUnsupportedFormat},
		{"zero budget", "scene.yaml", "nb_tested: 0\n", ErrInvalidConfig},
		{"negative population", "scene.toml", "[population]\nasteroids = -1\n", ErrInvalidConfig},
		{"zero tick", "scene.yaml", "tick_interval: 0s\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadBadDuration(t *testing.T) {
	_, err := Load(writeFile(t, "scene.yaml", "tick_interval: soon\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	path := writeFile(t, "scene.yaml", "nb_tested: 9\nlog_level: info\n")
	t.Setenv("COLLIDER_CONFIG", path)
	t.Setenv("COLLIDER_LOG_LEVEL", "error")

	conf, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9, conf.NbTested)
	assert.Equal(t, "error", conf.LogLevel)
	assert.Equal(t, "error", conf.SSH.LogLevel)
}

func TestSSHLogLevelFromFile(t *testing.T) {
	path := writeFile(t, "server.yaml", "log_level: error\nssh:\n  log_level: debug\n")
	t.Setenv("COLLIDER_CONFIG", path)
	t.Setenv("COLLIDER_LOG_LEVEL", "")

	conf, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "error", conf.LogLevel)
	assert.Equal(t, "debug", conf.SSH.LogLevel)

	assert.Equal(t, "info", Default().SSH.LogLevel)
	assert.Equal(t, "warn", Default().LogLevel)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("COLLIDER_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("COLLIDER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("COLLIDER_TEST_MISSING_KEY", "fallback"))
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	cfg, err := config.Load(writeConfig(t, `
input_dir: puzzles
parallelism: 4
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, "input%02d.txt", cfg.InputPattern, "unset keys keep their default")
	assert.Equal(t, 4, cfg.Parallelism)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
	assert.Equal(t, filepath.Join("puzzles", "input07.txt"), cfg.InputPath(7))
}

func TestLoad_MixedCaseLevel(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	cfg, err := config.Load(writeConfig(t, "logging:\n  level: Debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)

	log, err := logging.New(cfg.Logging, false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/srv/aoc")
	cfg, err := config.Load(writeConfig(t, "input_dir: puzzles\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/aoc", cfg.InputDir)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	cases := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"UnknownKey", "inputs: x\n", false},
		{"Malformed", "parallelism: [\n", false},
		{"WrongType", "parallelism: many\n", false},
		{"ZeroParallelism", "parallelism: 0\n", true},
		{"BadLevel", "logging:\n  level: loud\n", true},
		{"BadFormat", "logging:\n  format: xml\n", true},
		{"BadPattern", "input_pattern: input.txt\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	_, err := config.Load(t.TempDir())
	assert.Error(t, err, "a directory is not a config file")
}

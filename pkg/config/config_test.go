package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     func() *Config
		wantErr  bool
	}{
		{
			name:     "empty file keeps defaults",
			contents: "",
			want:     Default,
		},
		{
			name: "overrides",
			contents: `
debug = true

[window]
width = 1024
height = 768
title = "Pong!"

[log]
level = "debug"

[game]
seed = 42
`,
			want: func() *Config {
				cfg := Default()
				cfg.Debug = true
				cfg.Window.Width = 1024
				cfg.Window.Height = 768
				cfg.Window.Title = "Pong!"
				cfg.Log.Level = "debug"
				cfg.Game.Seed = 42
				return cfg
			},
		},
		{
			name:     "invalid log level",
			contents: "[log]\nlevel = \"loud\"\n",
			wantErr:  true,
		},
		{
			name:     "field too small",
			contents: "[window]\nwidth = 100\n",
			wantErr:  true,
		},
		{
			name:     "zero tps",
			contents: "[window]\ntps = 0\n",
			wantErr:  true,
		},
		{
			name:     "malformed",
			contents: "[window\n",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.contents))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestLoad_NoPath(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
	assert.NoError(t, got.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "does not exist")
}

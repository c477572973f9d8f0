package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Rooms.Ante)
	assert.Equal(t, 60, cfg.Rooms.SelectionSeconds)
	assert.Equal(t, 6, cfg.Rooms.MaxSeats)
	require.NoError(t, cfg.Validate())
}

func TestLoadServerConfigFromFile(t *testing.T) {
	content := `
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

room_defaults {
  ante                      = 25
  selection_timeout_seconds = 45
  scoop_bonus               = 5
  max_seats                 = 4
}
`
	path := filepath.Join(t.TempDir(), "peanuts.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 25, cfg.Rooms.Ante)
	assert.Equal(t, 45, cfg.Rooms.SelectionSeconds)
	assert.Equal(t, 5, cfg.Rooms.ScoopBonus)
	assert.Equal(t, 4, cfg.Rooms.MaxSeats)
	assert.Equal(t, "0.0.0.0:9000", cfg.GetServerAddress())

	rc := cfg.RoomConfig()
	assert.Equal(t, 25, rc.Ante)
	assert.Equal(t, 45*time.Second, rc.SelectTimeout)
	assert.Equal(t, 5, rc.ScoopBonus)
	assert.Equal(t, 4, rc.MaxSeats)
}

func TestLoadServerConfigInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`server { port = `), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ServerConfig)
	}{
		{"bad port", func(cfg *ServerConfig) { cfg.Server.Port = 0 }},
		{"negative ante", func(cfg *ServerConfig) { cfg.Rooms.Ante = -1 }},
		{"zero timeout", func(cfg *ServerConfig) { cfg.Rooms.SelectionSeconds = 0 }},
		{"negative bonus", func(cfg *ServerConfig) { cfg.Rooms.ScoopBonus = -5 }},
		{"one seat", func(cfg *ServerConfig) { cfg.Rooms.MaxSeats = 1 }},
		{"too many seats", func(cfg *ServerConfig) { cfg.Rooms.MaxSeats = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultServerConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/room"
)

// ServerConfig represents the complete server configuration
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Rooms  RoomDefaults   `hcl:"room_defaults,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RoomDefaults contains the settings newly created rooms start from. The
// ante can still be changed per room from the lobby.
type RoomDefaults struct {
	Ante             int   `hcl:"ante,optional"`
	SelectionSeconds int   `hcl:"selection_timeout_seconds,optional"`
	ScoopBonus       int   `hcl:"scoop_bonus,optional"`
	MaxSeats         int   `hcl:"max_seats,optional"`
	Seed             int64 `hcl:"seed,optional"` // 0 means time-based seeding
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Rooms: RoomDefaults{
			Ante:             10,
			SelectionSeconds: 60,
			ScoopBonus:       0,
			MaxSeats:         6,
		},
	}
}

// LoadServerConfig loads server configuration from HCL file
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Rooms.Ante == 0 {
		config.Rooms.Ante = 10
	}
	if config.Rooms.SelectionSeconds == 0 {
		config.Rooms.SelectionSeconds = 60
	}
	if config.Rooms.MaxSeats == 0 {
		config.Rooms.MaxSeats = 6
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Rooms.Ante < 0 {
		return fmt.Errorf("ante must not be negative: %d", c.Rooms.Ante)
	}
	if c.Rooms.SelectionSeconds < 1 {
		return fmt.Errorf("selection timeout must be at least 1 second: %d", c.Rooms.SelectionSeconds)
	}
	if c.Rooms.ScoopBonus < 0 {
		return fmt.Errorf("scoop bonus must not be negative: %d", c.Rooms.ScoopBonus)
	}
	if c.Rooms.MaxSeats < 2 || c.Rooms.MaxSeats > 6 {
		return fmt.Errorf("max seats must be between 2 and 6: %d", c.Rooms.MaxSeats)
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RoomConfig converts the configured defaults into a room configuration.
func (c *ServerConfig) RoomConfig() room.Config {
	return room.Config{
		Ante:          c.Rooms.Ante,
		SelectTimeout: time.Duration(c.Rooms.SelectionSeconds) * time.Second,
		ScoopBonus:    c.Rooms.ScoopBonus,
		MaxSeats:      c.Rooms.MaxSeats,
	}
}

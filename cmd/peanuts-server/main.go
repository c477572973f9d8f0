package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/server"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/stats"
)

var CLI struct {
	Config   string `short:"c" long:"config" default:"peanuts-server.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" long:"addr" help:"Server address to bind to (overrides config)"`
	LogLevel string `short:"l" long:"log-level" help:"Log level (overrides config)"`
	Ante     int    `long:"ante" help:"Default ante for new rooms (overrides config)"`
	Seed     int64  `long:"seed" help:"Fixed RNG seed for reproducible deals (debugging only)"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Load configuration
	cfg, err := server.LoadServerConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	// Apply command line overrides
	if CLI.Addr != "" {
		cfg.Server.Address = CLI.Addr
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}
	if CLI.Ante > 0 {
		cfg.Rooms.Ante = CLI.Ante
	}
	if CLI.Seed != 0 {
		cfg.Rooms.Seed = CLI.Seed
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	// Setup logging
	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("Starting Peanuts Poker server",
		"addr", cfg.GetServerAddress(),
		"ante", cfg.Rooms.Ante,
		"selectionTimeout", cfg.Rooms.SelectionSeconds)

	// Create WebSocket server
	wsServer := server.NewServer(cfg.GetServerAddress(), logger)

	// Create room service and wire it into the connection handlers
	roomService := server.NewRoomService(
		wsServer,
		cfg.RoomConfig(),
		cfg.Rooms.Seed,
		quartz.NewReal(),
		stats.NewMemorySink(),
		logger,
	)
	wsServer.SetRoomService(roomService)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Shutting down server...")
		_ = wsServer.Stop()
		os.Exit(0)
	}()

	// Start server (this blocks)
	if err := wsServer.Start(); err != nil {
		logger.Error("Server failed", "error", err)
		ctx.Exit(1)
	}
}

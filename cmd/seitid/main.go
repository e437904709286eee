// Command seitid runs the board-generation/leveling HTTP façade: health
// check, generate, and level, mirroring the reference backend's three
// routes and permissive CORS policy.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gasin/seiti/internal/config"
	"github.com/gasin/seiti/internal/httpapi"
	"github.com/gasin/seiti/pkg/board"
)

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (optional; defaults are used if omitted)")
	portFlag   = flag.Int("port", 0, "Override the listen port from config (0 = use config port)")
)

// stdoutLogger is the board.Logger wired into the server: every leveling
// log line goes straight to stdout, same as the reference backend's
// StdoutLogger.
type stdoutLogger struct{}

func (stdoutLogger) Log(s string) { fmt.Println(s) }

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if *portFlag != 0 {
		cfg.Server.Port = *portFlag
	}
	if err := cfg.Server.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	handler := httpapi.NewServer(cfg.Server, stdoutLogger{})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	log.Printf("seitid listening on http://%s", addr)
	log.Printf("logging: SEITI_LOG_PATTERNS=%v", board.LogPatternsEnabled())

	if err := http.ListenAndServe(addr, handler); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

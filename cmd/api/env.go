package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// config holds everything read from the environment.
type config struct {
	// ListenAddr is the HTTP listen address (CALC_HTTP_ADDR).
	ListenAddr string

	// RegistryPath points at the element registry file produced by the
	// exploration tooling (CALC_REGISTRY_PATH).
	RegistryPath string

	// ProcessName is the calculator's process name as it appears in the
	// process list (CALC_PROCESS_NAME).
	ProcessName string

	// LaunchPath starts the calculator when it is not running
	// (CALC_LAUNCH_PATH).
	LaunchPath string

	// Settle is the render delay between clicks (CALC_SETTLE_MS).
	Settle time.Duration
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// loadConfig reads the configuration, applying defaults for the Windows
// built-in calculator.
func loadConfig() (config, error) {
	cfg := config{
		ListenAddr:   envOr("CALC_HTTP_ADDR", ":8080"),
		RegistryPath: envOr("CALC_REGISTRY_PATH", "apps/calc/fdom.json"),
		ProcessName:  envOr("CALC_PROCESS_NAME", "CalculatorApp.exe"),
		LaunchPath:   envOr("CALC_LAUNCH_PATH", "calc.exe"),
	}

	settleMS, err := strconv.Atoi(envOr("CALC_SETTLE_MS", "300"))
	if err != nil || settleMS < 0 {
		return config{}, fmt.Errorf("CALC_SETTLE_MS must be a non-negative integer, got %q", os.Getenv("CALC_SETTLE_MS"))
	}
	cfg.Settle = time.Duration(settleMS) * time.Millisecond

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

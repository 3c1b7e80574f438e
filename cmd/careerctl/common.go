package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"career-compass/internal/app"
	"career-compass/internal/config"
)

func openContainer() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c, err := app.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init container: %w", err)
	}
	return c, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

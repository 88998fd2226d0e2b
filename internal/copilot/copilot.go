// Package copilot dispatches natural-language requests to GitHub Copilot,
// either through the gh CLI extension or the GitHub Models HTTP API.
package copilot

import (
	"context"
	"fmt"
	"time"

	"github.com/apka/techbuddy/internal/config"
)

// Asker is the single operation the documentation pipeline depends on:
// send one request string, receive one text response.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// New creates an Asker for the configured dispatch mode.
func New(cfg config.CopilotConfig, token string) (Asker, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	switch cfg.Mode {
	case "cli", "":
		return NewCLIAsker(timeout), nil
	case "api":
		if token == "" {
			return nil, fmt.Errorf("api mode requires a GitHub token")
		}
		return NewAPIAsker(cfg.Endpoint, cfg.Model, token, timeout), nil
	default:
		return nil, fmt.Errorf("unknown copilot mode: %q", cfg.Mode)
	}
}

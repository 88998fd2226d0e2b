package copilot

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CLIAsker dispatches prompts through the gh CLI Copilot extension.
type CLIAsker struct {
	binary  string
	timeout time.Duration
}

// NewCLIAsker creates a CLIAsker with the given per-request timeout.
func NewCLIAsker(timeout time.Duration) *CLIAsker {
	return &CLIAsker{binary: "gh", timeout: timeout}
}

// Ask runs "gh copilot explain" with the prompt. When explain exits
// non-zero it falls back once to "gh copilot suggest". Each request is a
// single blocking call bounded by the configured timeout; a timeout is
// reported as an ordinary error for the caller to embed as text.
func (c *CLIAsker) Ask(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, explainErr := c.run(ctx, "copilot", "explain", prompt)
	if explainErr == nil {
		return out, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("request timed out after %s", c.timeout)
	}

	out, suggestErr := c.run(ctx, "copilot", "suggest", prompt)
	if suggestErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("request timed out after %s", c.timeout)
		}
		return "", explainErr
	}
	return out, nil
}

func (c *CLIAsker) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s %s: %s", c.binary, args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s %s: %w", c.binary, args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// AuthToken returns the GitHub token from "gh auth token", or an empty
// string when the CLI is not installed or not authenticated.
func AuthToken(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

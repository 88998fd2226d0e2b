package config

import (
	"fmt"
	"os"
)

// ResolveToken resolves a GitHub token based on the given source.
// Supported sources: "env" (the GITHUB_TOKEN environment variable) and
// "config" (the token value from the config file). The "gh" source is
// resolved by the caller through the gh CLI.
func ResolveToken(source, configValue string) (string, error) {
	switch source {
	case "env":
		val := os.Getenv("GITHUB_TOKEN")
		if val == "" {
			return "", fmt.Errorf("environment variable GITHUB_TOKEN is not set")
		}
		return val, nil
	case "config":
		if configValue == "" {
			return "", fmt.Errorf("token_source is 'config' but no token value provided")
		}
		return configValue, nil
	default:
		return "", fmt.Errorf("unknown token_source: %q", source)
	}
}

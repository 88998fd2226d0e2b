// cmd/techbuddy/generate.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apka/techbuddy/internal/config"
	"github.com/apka/techbuddy/internal/copilot"
	"github.com/apka/techbuddy/internal/docgen"
)

func generateCmd() *cobra.Command {
	var (
		outputFlag  string
		modeFlag    string
		timeoutFlag int
		previewFlag bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate technical documentation for a project",
		Long: `Analyze a Spring Boot project tree, classify its files by architectural
role, and generate a Markdown document with Copilot-written sections
and Mermaid diagrams.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if modeFlag != "" {
				cfg.Copilot.Mode = modeFlag
			}
			if outputFlag != "" {
				cfg.Output.Path = outputFlag
			}
			if timeoutFlag > 0 {
				cfg.Copilot.TimeoutSeconds = timeoutFlag
			}

			token, err := resolveToken(cmd.Context(), cfg.Copilot)
			if err != nil {
				return err
			}

			asker, err := copilot.New(cfg.Copilot, token)
			if err != nil {
				return fmt.Errorf("creating copilot backend: %w", err)
			}

			doc, err := docgen.Run(cmd.Context(), docgen.Config{
				Root:       root,
				OutputPath: cfg.Output.Path,
				Scan: docgen.ScanConfig{
					SourceDir: cfg.Scan.SourceDir,
					Extension: cfg.Scan.Extension,
					Manifest:  cfg.Scan.Manifest,
				},
			}, asker)
			if err != nil {
				return err
			}

			if previewFlag {
				return preview(doc)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFlag, "output", "", "output file path (default documentation/tech_final.md)")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "copilot dispatch mode: cli or api")
	cmd.Flags().IntVar(&timeoutFlag, "timeout", 0, "per-request timeout in seconds")
	cmd.Flags().BoolVar(&previewFlag, "preview", false, "render the generated document in the terminal")

	return cmd
}

// resolveToken fetches a GitHub token for API mode. CLI mode authenticates
// through gh itself, so no token is needed there.
func resolveToken(ctx context.Context, cfg config.CopilotConfig) (string, error) {
	if cfg.Mode != "api" {
		return "", nil
	}
	if cfg.TokenSource == "gh" {
		token := copilot.AuthToken(ctx)
		if token == "" {
			return "", fmt.Errorf("gh is not authenticated; run: gh auth login")
		}
		return token, nil
	}
	return config.ResolveToken(cfg.TokenSource, cfg.Token)
}

// preview renders the document to the terminal with glamour, falling back
// to plain output when stdout is not a TTY.
func preview(doc string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(doc)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating glamour renderer: %w", err)
	}
	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	fmt.Print(out)
	return nil
}

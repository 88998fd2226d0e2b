package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Config holds all pipeline configuration.
type Config struct {
	Root       string // project root to document
	OutputPath string // where the final Markdown document is written
	Scan       ScanConfig
}

// Run executes the full documentation pipeline sequentially:
// classify -> generate sections -> render diagrams -> assemble -> write.
// Section-level failures surface as inline error text inside the document;
// Run itself only fails on scan or write errors. The assembled document is
// returned for optional display.
func Run(ctx context.Context, cfg Config, asker Asker) (string, error) {
	fmt.Fprintf(os.Stderr, "techbuddy: analyzing %s...\n", cfg.Root)
	inv, err := Classify(cfg.Root, cfg.Scan)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	fmt.Fprintf(os.Stderr, "techbuddy: found %d controllers, %d services, %d repositories\n",
		len(inv.Controllers), len(inv.Services), len(inv.Repositories))

	manifest := ReadManifest(cfg.Root, cfg.Scan.Manifest)

	fmt.Fprintf(os.Stderr, "techbuddy: generating documentation sections...\n")
	gen := NewGenerator(asker)
	sections := Sections{
		Overview:     gen.ProjectOverview(ctx, inv, manifest),
		Architecture: gen.ArchitectureDescription(ctx, inv),
		APIDocs:      gen.APIDocumentation(ctx, inv.Controllers),
		Components:   gen.ComponentExplanations(ctx, inv),
	}

	fmt.Fprintf(os.Stderr, "techbuddy: rendering diagrams...\n")
	diagrams := RenderDiagrams(inv)

	doc := Assemble(inv, sections, diagrams, time.Now(), uuid.NewString())

	fmt.Fprintf(os.Stderr, "techbuddy: writing %s...\n", cfg.OutputPath)
	if err := writeDoc(cfg.OutputPath, doc); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}

	fmt.Fprintf(os.Stderr, "techbuddy: done.\n")
	return doc, nil
}

// writeDoc creates parent directories and writes content to the given path.
func writeDoc(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

package docgen

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"text/template"
)

// Asker abstracts the text-generation capability for testability: one
// natural-language request in, one text response out.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Content truncation bounds, in runes. Cuts are hard cuts, not line
// aware; shorter content is embedded whole.
const (
	apiDocContentLimit      = 2000
	explanationContentLimit = 1500
)

// maxExplainedPerBucket bounds how many controllers and how many services
// receive a per-file explanation section.
const maxExplainedPerBucket = 2

// maxManifestDependencies bounds how many manifest dependency lines are
// quoted in the overview prompt.
const maxManifestDependencies = 5

// noControllersText is returned for the API documentation section when the
// inventory has no controllers; no request is dispatched in that case.
const noControllersText = "No controllers found."

// ---------- prompt templates ----------

var overviewTmpl = template.Must(template.New("overview").Parse(
	`Analyze this Spring Boot project and write a comprehensive technical overview in Markdown format.

Project Structure:
- {{.Controllers}} Controllers
- {{.Services}} Services
- {{.Repositories}} Repositories
- {{.Models}} Domain Models
- {{.DTOs}} DTOs

Key Dependencies (from the build manifest):
{{.Dependencies}}

Controllers:
{{.ControllerList}}

Services:
{{.ServiceList}}

Write a technical overview covering:
1. Project Purpose
2. Technology Stack
3. Architecture Pattern (layered architecture)
4. Key Components Overview

Format in Markdown with headers.`))

var architectureTmpl = template.Must(template.New("architecture").Parse(
	`Describe the software architecture of this Spring Boot application in Markdown format:

Components:
Controllers: {{.Controllers}}
Services: {{.Services}}
Repositories: {{.Repositories}}

Explain:
1. Layered Architecture Pattern (Presentation, Business, Persistence)
2. Component Responsibilities
3. Data Flow (Client -> Controller -> Service -> Repository -> Database)
4. Design Patterns Used (DTO pattern, Repository pattern, Dependency Injection)
5. Best Practices Applied

Use Markdown formatting with headers and bullet points.`))

var apiDocTmpl = template.Must(template.New("apidoc").Parse(
	`Analyze this Spring Boot REST controller and generate API documentation in Markdown:

{{.Code}}

Include:
1. Base endpoint path
2. All API endpoints with HTTP methods
3. Request/Response formats
4. Path variables and request body parameters
5. HTTP status codes returned
6. Example curl requests

Format as clean Markdown with code blocks for examples.`))

var explanationTmpl = template.Must(template.New("explanation").Parse(
	`Explain this Spring Boot Java code in clear Markdown format:

File: {{.Name}}
Path: {{.Path}}

{{.Digest}}
{{.Code}}

Provide:
1. Purpose of this class
2. Key methods and their functionality
3. Dependencies and annotations used
4. How it fits in the overall architecture

Format in Markdown.`))

// ---------- generator ----------

// Generator assembles natural-language prompts from a classified Inventory
// and dispatches them to the text-generation capability. Every method
// returns displayable Markdown text: backend failures are converted to
// sentinel error strings at the section boundary, so a failed section
// never aborts the pipeline.
type Generator struct {
	asker Asker
}

// NewGenerator creates a Generator backed by the given capability.
func NewGenerator(asker Asker) *Generator {
	return &Generator{asker: asker}
}

// ProjectOverview generates the overview section from bucket counts, the
// first manifest dependency lines, and controller/service name lists.
func (g *Generator) ProjectOverview(ctx context.Context, inv *Inventory, manifest string) string {
	var buf bytes.Buffer
	err := overviewTmpl.Execute(&buf, struct {
		Controllers, Services, Repositories, Models, DTOs int
		Dependencies, ControllerList, ServiceList         string
	}{
		Controllers:    len(inv.Controllers),
		Services:       len(inv.Services),
		Repositories:   len(inv.Repositories),
		Models:         len(inv.Models),
		DTOs:           len(inv.DTOs),
		Dependencies:   strings.Join(manifestDependencies(manifest, maxManifestDependencies), "\n"),
		ControllerList: nameList(inv.Controllers),
		ServiceList:    nameList(inv.Services),
	})
	if err != nil {
		log.Printf("WARNING: overview prompt rendering failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return g.ask(ctx, buf.String())
}

// ArchitectureDescription generates the architecture section from the
// controller, service, and repository name lists.
func (g *Generator) ArchitectureDescription(ctx context.Context, inv *Inventory) string {
	var buf bytes.Buffer
	err := architectureTmpl.Execute(&buf, struct {
		Controllers, Services, Repositories string
	}{
		Controllers:  names(inv.Controllers),
		Services:     names(inv.Services),
		Repositories: names(inv.Repositories),
	})
	if err != nil {
		log.Printf("WARNING: architecture prompt rendering failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return g.ask(ctx, buf.String())
}

// APIDocumentation documents the first controller's endpoints, with its
// content hard-cut to the first 2000 runes. With no controllers it
// short-circuits to a fixed sentinel without dispatching any request.
func (g *Generator) APIDocumentation(ctx context.Context, controllers []FileEntry) string {
	if len(controllers) == 0 {
		return noControllersText
	}

	var buf bytes.Buffer
	err := apiDocTmpl.Execute(&buf, struct{ Code string }{
		Code: truncate(controllers[0].Content, apiDocContentLimit),
	})
	if err != nil {
		log.Printf("WARNING: API documentation prompt rendering failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return g.ask(ctx, buf.String())
}

// CodeExplanation explains a single file, embedding its digest and its
// content hard-cut to the first 1500 runes.
func (g *Generator) CodeExplanation(ctx context.Context, f FileEntry) string {
	var buf bytes.Buffer
	err := explanationTmpl.Execute(&buf, struct {
		Name, Path, Digest, Code string
	}{
		Name:   f.Name,
		Path:   f.Path,
		Digest: Summarize(f),
		Code:   truncate(f.Content, explanationContentLimit),
	})
	if err != nil {
		log.Printf("WARNING: explanation prompt rendering failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return g.ask(ctx, buf.String())
}

// ComponentExplanations explains a bounded subset of the inventory: at
// most the first two controllers followed by the first two services.
func (g *Generator) ComponentExplanations(ctx context.Context, inv *Inventory) []string {
	var out []string
	for _, f := range firstN(inv.Controllers, maxExplainedPerBucket) {
		out = append(out, g.CodeExplanation(ctx, f))
	}
	for _, f := range firstN(inv.Services, maxExplainedPerBucket) {
		out = append(out, g.CodeExplanation(ctx, f))
	}
	return out
}

// ask performs exactly one blocking dispatch. No retries, no caching, no
// deduplication; an error becomes sentinel text treated like any response.
func (g *Generator) ask(ctx context.Context, prompt string) string {
	response, err := g.asker.Ask(ctx, prompt)
	if err != nil {
		log.Printf("WARNING: copilot request failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return response
}

// ---------- helpers ----------

// manifestDependencies extracts the first max trimmed <artifactId> lines
// from the manifest text.
func manifestDependencies(manifest string, max int) []string {
	var deps []string
	for _, line := range strings.Split(manifest, "\n") {
		if !strings.Contains(line, "<artifactId>") {
			continue
		}
		deps = append(deps, strings.TrimSpace(line))
		if len(deps) == max {
			break
		}
	}
	return deps
}

// nameList renders entry names as Markdown bullets.
func nameList(entries []FileEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s\n", e.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// names renders entry names as a comma-separated list.
func names(entries []FileEntry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return strings.Join(out, ", ")
}

// truncate hard-cuts s to at most max runes, avoiding corruption of
// multi-byte characters. Shorter strings are returned whole.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// firstN returns at most the first n entries.
func firstN(entries []FileEntry, n int) []FileEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

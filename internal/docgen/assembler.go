package docgen

import (
	"fmt"
	"strings"
	"time"
)

// Assemble concatenates all sections into the final Markdown document, in
// fixed order: title block, overview, architecture, API documentation,
// per-file explanations, diagrams, file-listing appendix, and a footer
// with the generation timestamp and document ID. The timestamp and ID are
// passed in so assembly stays deterministic under test.
func Assemble(inv *Inventory, sections Sections, diagrams []Diagram, generatedAt time.Time, docID string) string {
	var b strings.Builder

	b.WriteString("# Spring Boot CRUD REST Application\n")
	b.WriteString("## Technical Documentation\n")
	b.WriteString("### Generated with GitHub Copilot\n\n---\n\n")

	b.WriteString(sections.Overview)
	b.WriteString("\n\n---\n\n")
	b.WriteString(sections.Architecture)
	b.WriteString("\n\n---\n\n")
	b.WriteString(sections.APIDocs)
	b.WriteString("\n\n---\n\n")

	b.WriteString("## Component Details\n\n")
	for _, c := range sections.Components {
		b.WriteString(c)
		b.WriteString("\n\n---\n\n")
	}

	for _, d := range diagrams {
		writeMermaidBlock(&b, d)
	}
	b.WriteString("---\n\n")

	b.WriteString("## Project File Structure\n\n")
	writeFileGroup(&b, "Controllers", inv.Controllers)
	writeFileGroup(&b, "Services", inv.Services)
	writeFileGroup(&b, "Repositories", inv.Repositories)
	writeFileGroup(&b, "Domain Models", inv.Models)
	writeFileGroup(&b, "DTOs", inv.DTOs)
	writeFileGroup(&b, "Configuration", inv.Config)

	b.WriteString("---\n\n")
	b.WriteString("*Generated automatically using GitHub Copilot*\n")
	fmt.Fprintf(&b, "*Date: %s*\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "*Document: %s*\n", docID)

	return b.String()
}

// writeFileGroup renders one bucket as a heading plus a bullet list of
// name/path pairs. Empty buckets are omitted.
func writeFileGroup(b *strings.Builder, title string, entries []FileEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "- **%s** - `%s`\n", e.Name, e.Path)
	}
	b.WriteString("\n")
}

// writeMermaidBlock appends a fenced mermaid code block for a diagram.
func writeMermaidBlock(b *strings.Builder, d Diagram) {
	fmt.Fprintf(b, "## %s\n\n", d.Title)
	b.WriteString("```mermaid\n")
	b.WriteString(d.Content)
	if !strings.HasSuffix(d.Content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
}

package docgen

import (
	"fmt"
	"strings"
)

// summaryMaxLines bounds how far into a file the extractor looks. Lines
// beyond this are never inspected.
const summaryMaxLines = 30

// declarationPrefixes are the line openers captured in a digest, checked
// after trimming surrounding whitespace.
var declarationPrefixes = []string{"@", "public class", "public interface"}

// Summarize produces a short digest for a file: its name, relative path,
// and every annotation or public type declaration line found within the
// first 30 lines, in source order. The result is advisory Markdown text;
// nothing structured is extracted.
func Summarize(f FileEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", f.Name)
	fmt.Fprintf(&b, "Path: `%s`\n\n", f.Path)

	lines := strings.Split(f.Content, "\n")
	if len(lines) > summaryMaxLines {
		lines = lines[:summaryMaxLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		for _, prefix := range declarationPrefixes {
			if strings.HasPrefix(line, prefix) {
				fmt.Fprintf(&b, "- %s\n", line)
				break
			}
		}
	}

	return b.String()
}

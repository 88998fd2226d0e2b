package docgen

// FileEntry represents one source file discovered by the classifier.
type FileEntry struct {
	Name    string // base file name
	Path    string // path relative to the project root, slash-separated
	Content string // full text content, or an error placeholder when the read failed
}

// Inventory is the complete classification result for one project scan.
// Every entry in a named bucket also appears in AllFiles; files whose
// directory matches no keyword appear only in AllFiles.
type Inventory struct {
	Controllers  []FileEntry
	Services     []FileEntry
	Repositories []FileEntry
	Models       []FileEntry
	DTOs         []FileEntry
	Config       []FileEntry
	AllFiles     []FileEntry
}

// Sections holds the generated text for each document section, in the
// order they appear in the final document.
type Sections struct {
	Overview     string
	Architecture string
	APIDocs      string
	Components   []string
}

// Diagram holds a generated Mermaid diagram.
type Diagram struct {
	Title   string
	Type    string // "component" or "sequence"
	Content string // Mermaid source
}

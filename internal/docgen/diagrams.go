package docgen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// sequenceDiagram is the fixed request/response round-trip rendered for
// every project; its shape does not depend on the inventory.
const sequenceDiagram = `sequenceDiagram
    participant Client
    participant Controller
    participant Service
    participant Repository
    participant Database

    Client->>Controller: HTTP Request
    activate Controller
    Controller->>Controller: Validate Input
    Controller->>Service: Call Business Logic
    activate Service
    Service->>Repository: Data Access
    activate Repository
    Repository->>Database: SQL Query
    Database-->>Repository: Result Set
    Repository-->>Service: Domain Object
    deactivate Repository
    Service-->>Controller: DTO
    deactivate Service
    Controller-->>Client: HTTP Response
    deactivate Controller`

// RenderDiagrams deterministically derives the component graph and the
// interaction sequence from the inventory. Pure function: no external
// calls, and repeated calls yield byte-identical output.
func RenderDiagrams(inv *Inventory) []Diagram {
	return []Diagram{
		{
			Title:   "System Architecture Diagram",
			Type:    "component",
			Content: renderComponentGraph(inv),
		},
		{
			Title:   "Request Flow Sequence",
			Type:    "sequence",
			Content: sequenceDiagram,
		},
	}
}

// renderComponentGraph emits one node per controller, service, and
// repository grouped into three layers, plus fixed client and datastore
// nodes. Pairing edges stop at the shorter of each adjacent layer pair;
// nodes beyond that count are rendered without an outgoing pairing edge.
func renderComponentGraph(inv *Inventory) string {
	controllers := displayNames(inv.Controllers)
	services := displayNames(inv.Services)
	repos := displayNames(inv.Repositories)

	var b strings.Builder
	b.WriteString("graph TB\n")
	b.WriteString("    Client[REST Client]\n\n")

	b.WriteString("    subgraph \"Presentation Layer\"\n")
	for i, name := range controllers {
		fmt.Fprintf(&b, "        C%d[%s]\n", i, name)
	}
	b.WriteString("    end\n\n")

	b.WriteString("    subgraph \"Business Layer\"\n")
	for i, name := range services {
		fmt.Fprintf(&b, "        S%d[%s]\n", i, name)
	}
	b.WriteString("    end\n\n")

	b.WriteString("    subgraph \"Persistence Layer\"\n")
	for i, name := range repos {
		fmt.Fprintf(&b, "        R%d[%s]\n", i, name)
	}
	b.WriteString("    end\n\n")

	b.WriteString("    DB[(Database)]\n\n")

	if len(controllers) > 0 {
		b.WriteString("    Client -->|HTTP/REST| C0\n")
	}
	for i := 0; i < min(len(controllers), len(services)); i++ {
		fmt.Fprintf(&b, "    C%d -->|calls| S%d\n", i, i)
	}
	for i := 0; i < min(len(services), len(repos)); i++ {
		fmt.Fprintf(&b, "    S%d -->|uses| R%d\n", i, i)
	}
	for i := range repos {
		fmt.Fprintf(&b, "    R%d -->|JPA| DB\n", i)
	}

	b.WriteString("\n    style Client fill:#e1f5ff\n")
	b.WriteString("    style DB fill:#ffe1e1\n")
	return b.String()
}

// displayNames strips the file extension from each entry name.
func displayNames(entries []FileEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = strings.TrimSuffix(e.Name, filepath.Ext(e.Name))
	}
	return names
}

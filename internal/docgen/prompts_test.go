package docgen

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- mocks ----------

type mockAsker struct {
	responses map[string]string // substring match -> response
	calls     []string          // recorded prompts
	mu        sync.Mutex
}

func (m *mockAsker) Ask(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()
	for key, resp := range m.responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return "default response", nil
}

func (m *mockAsker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type failingAsker struct{}

func (f *failingAsker) Ask(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("request timed out after 1m0s")
}

// ---------- tests ----------

func TestProjectOverviewPrompt(t *testing.T) {
	inv := &Inventory{
		Controllers: []FileEntry{{Name: "UserController.java"}},
		Services:    []FileEntry{{Name: "UserService.java"}, {Name: "OrderService.java"}},
	}
	manifest := strings.Join([]string{
		"<dependency>",
		"  <artifactId>spring-boot-starter-web</artifactId>",
		"  <artifactId>spring-boot-starter-data-jpa</artifactId>",
		"  <artifactId>h2</artifactId>",
		"  <artifactId>lombok</artifactId>",
		"  <artifactId>spring-boot-starter-test</artifactId>",
		"  <artifactId>sixth-dependency</artifactId>",
		"</dependency>",
	}, "\n")

	asker := &mockAsker{responses: map[string]string{"technical overview": "## Overview\nGenerated."}}
	gen := NewGenerator(asker)

	out := gen.ProjectOverview(context.Background(), inv, manifest)
	assert.Equal(t, "## Overview\nGenerated.", out)

	require.Len(t, asker.calls, 1)
	prompt := asker.calls[0]
	assert.Contains(t, prompt, "- 1 Controllers")
	assert.Contains(t, prompt, "- 2 Services")
	assert.Contains(t, prompt, "- UserController.java")
	assert.Contains(t, prompt, "- OrderService.java")
	assert.Contains(t, prompt, "<artifactId>spring-boot-starter-test</artifactId>")
	assert.NotContains(t, prompt, "sixth-dependency", "only the first 5 manifest dependencies are quoted")
}

func TestArchitectureDescriptionPrompt(t *testing.T) {
	inv := &Inventory{
		Controllers:  []FileEntry{{Name: "UserController.java"}},
		Services:     []FileEntry{{Name: "UserService.java"}},
		Repositories: []FileEntry{{Name: "UserRepository.java"}},
	}

	asker := &mockAsker{}
	gen := NewGenerator(asker)
	gen.ArchitectureDescription(context.Background(), inv)

	require.Len(t, asker.calls, 1)
	assert.Contains(t, asker.calls[0], "Controllers: UserController.java")
	assert.Contains(t, asker.calls[0], "Services: UserService.java")
	assert.Contains(t, asker.calls[0], "Repositories: UserRepository.java")
}

func TestAPIDocumentationNoControllers(t *testing.T) {
	asker := &mockAsker{}
	gen := NewGenerator(asker)

	out := gen.APIDocumentation(context.Background(), nil)
	assert.Equal(t, "No controllers found.", out)
	assert.Equal(t, 0, asker.callCount(), "no dispatch may happen without controllers")
}

func TestAPIDocumentationEmbedsContentWholeAtBoundary(t *testing.T) {
	content := strings.Repeat("a", 2000)
	asker := &mockAsker{}
	gen := NewGenerator(asker)

	gen.APIDocumentation(context.Background(), []FileEntry{{Name: "C.java", Content: content}})

	require.Len(t, asker.calls, 1)
	assert.Contains(t, asker.calls[0], content, "content of exactly 2000 characters is embedded whole")
}

func TestAPIDocumentationTruncatesPastBoundary(t *testing.T) {
	content := strings.Repeat("a", 2000) + "Z"
	asker := &mockAsker{}
	gen := NewGenerator(asker)

	gen.APIDocumentation(context.Background(), []FileEntry{{Name: "C.java", Content: content}})

	require.Len(t, asker.calls, 1)
	assert.Contains(t, asker.calls[0], strings.Repeat("a", 2000))
	assert.NotContains(t, asker.calls[0], "Z", "content past 2000 characters is cut")
}

func TestAPIDocumentationUsesFirstControllerOnly(t *testing.T) {
	asker := &mockAsker{}
	gen := NewGenerator(asker)

	gen.APIDocumentation(context.Background(), []FileEntry{
		{Name: "First.java", Content: "FIRST_CONTROLLER_BODY"},
		{Name: "Second.java", Content: "SECOND_CONTROLLER_BODY"},
	})

	require.Len(t, asker.calls, 1)
	assert.Contains(t, asker.calls[0], "FIRST_CONTROLLER_BODY")
	assert.NotContains(t, asker.calls[0], "SECOND_CONTROLLER_BODY")
}

func TestCodeExplanationEmbedsDigestAndTruncates(t *testing.T) {
	content := "@Service\npublic class UserService {\n" + strings.Repeat("x", 1500)
	f := FileEntry{Name: "UserService.java", Path: "src/main/java/com/apka/service/UserService.java", Content: content}

	asker := &mockAsker{}
	gen := NewGenerator(asker)
	gen.CodeExplanation(context.Background(), f)

	require.Len(t, asker.calls, 1)
	prompt := asker.calls[0]
	assert.Contains(t, prompt, "File: UserService.java")
	assert.Contains(t, prompt, "- @Service")
	assert.NotContains(t, prompt, strings.Repeat("x", 1500), "code past 1500 characters is cut")
}

func TestComponentExplanationsBounded(t *testing.T) {
	inv := &Inventory{
		Controllers: []FileEntry{{Name: "A.java"}, {Name: "B.java"}, {Name: "C.java"}},
		Services:    []FileEntry{{Name: "D.java"}, {Name: "E.java"}, {Name: "F.java"}},
	}

	asker := &mockAsker{}
	gen := NewGenerator(asker)

	out := gen.ComponentExplanations(context.Background(), inv)
	assert.Len(t, out, 4, "at most 2 controllers and 2 services are explained")
	assert.Equal(t, 4, asker.callCount())

	joined := strings.Join(asker.calls, "\n")
	assert.NotContains(t, joined, "C.java")
	assert.NotContains(t, joined, "F.java")
}

func TestGeneratorConvertsErrorsToSentinelText(t *testing.T) {
	inv := &Inventory{Controllers: []FileEntry{{Name: "C.java", Content: "code"}}}
	gen := NewGenerator(&failingAsker{})

	out := gen.APIDocumentation(context.Background(), inv.Controllers)
	assert.Equal(t, "Error: request timed out after 1m0s", out)

	out = gen.ProjectOverview(context.Background(), inv, "")
	assert.True(t, strings.HasPrefix(out, "Error: "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	// Rune-based: multi-byte characters are not corrupted.
	assert.Equal(t, "hél", truncate("héllo", 3))
}

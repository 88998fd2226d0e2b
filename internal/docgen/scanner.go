package docgen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ScanConfig controls project discovery and classification.
type ScanConfig struct {
	SourceDir string // relative subpath scanned for source files
	Extension string // source file extension, matched case-sensitively
	Manifest  string // build manifest file name at the project root
}

// DefaultScanConfig returns the standard Maven/Spring Boot layout.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		SourceDir: "src/main/java",
		Extension: ".java",
		Manifest:  "pom.xml",
	}
}

// Bucket labels, in classification precedence order.
const (
	bucketControllers  = "controllers"
	bucketServices     = "services"
	bucketRepositories = "repositories"
	bucketModels       = "models"
	bucketDTOs         = "dtos"
	bucketConfig       = "config"
)

// classificationRules maps directory-name keywords to buckets. The order
// is load-bearing: the first matching keyword wins, so a directory named
// "controllerservice" classifies as a controller. The "model" rule
// refines to dtos when the directory name also contains "dto".
var classificationRules = []struct {
	keyword string
	bucket  string
}{
	{"controller", bucketControllers},
	{"service", bucketServices},
	{"repository", bucketRepositories},
	{"model", bucketModels},
	{"config", bucketConfig},
}

// Classify recursively discovers files with the configured extension under
// the configured source subpath and buckets each one by the lower-cased
// name of its immediate containing directory. Every discovered file lands
// in AllFiles regardless of classification. A read failure substitutes an
// error placeholder for the content; classification still proceeds. A
// missing or empty source tree yields an empty Inventory, not an error.
func Classify(root string, cfg ScanConfig) (*Inventory, error) {
	srcDir := filepath.Join(root, filepath.FromSlash(cfg.SourceDir))

	inv := &Inventory{}
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return inv, nil
	}

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), cfg.Extension) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entry := FileEntry{
			Name:    d.Name(),
			Path:    filepath.ToSlash(rel),
			Content: readFileContent(path),
		}

		inv.AllFiles = append(inv.AllFiles, entry)
		classify(inv, entry, filepath.Base(filepath.Dir(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	return inv, nil
}

// classify appends the entry to the first bucket whose keyword appears in
// the lower-cased directory name. Files matching no rule stay
// unclassified; they are still listed in AllFiles.
func classify(inv *Inventory, entry FileEntry, dirName string) {
	name := strings.ToLower(dirName)
	for _, rule := range classificationRules {
		if !strings.Contains(name, rule.keyword) {
			continue
		}
		switch rule.bucket {
		case bucketControllers:
			inv.Controllers = append(inv.Controllers, entry)
		case bucketServices:
			inv.Services = append(inv.Services, entry)
		case bucketRepositories:
			inv.Repositories = append(inv.Repositories, entry)
		case bucketModels:
			if strings.Contains(name, "dto") {
				inv.DTOs = append(inv.DTOs, entry)
			} else {
				inv.Models = append(inv.Models, entry)
			}
		case bucketConfig:
			inv.Config = append(inv.Config, entry)
		}
		return
	}
}

// readFileContent reads a file, substituting a placeholder string on
// failure so the pipeline never aborts on a single unreadable file.
func readFileContent(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err)
	}
	return string(data)
}

// ReadManifest returns the build manifest at the project root as raw text.
// Absence is not an error; an empty string is returned.
func ReadManifest(root, name string) string {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return ""
	}
	return string(data)
}

package facespec

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specFS embed.FS

// Load reads a spec file, preferring an on-disk copy under facespec/ so
// tuning edits take effect without rebuilding, and falling back to the
// embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return specFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "facespec/")
}

func diskSpecPath(clean string) string {
	return filepath.Join("facespec", filepath.FromSlash(clean))
}

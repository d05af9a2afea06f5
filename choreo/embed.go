package choreo

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// LoadScript reads an embedded choreography script by name.
func LoadScript(name string) ([]byte, error) {
	return scriptsFS.ReadFile(cleanScriptPath(name))
}

// CompileScript loads and compiles an embedded script.
func CompileScript(name string) (*Sequence, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("choreo: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "choreo/scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return fmt.Sprintf("scripts/%s", s)
}

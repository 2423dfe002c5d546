package config

import (
	"fmt"
	"os"
	"path/filepath"

	theme "github.com/goliatone/go-theme"
)

// LoadManifest reads and validates a go-theme manifest. path is either a
// YAML/JSON manifest file or a directory holding theme.yaml, manifest.json
// or one of the other names go-theme looks for.
func LoadManifest(path string) (*theme.Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: load theme manifest: %w", err)
	}

	var manifest *theme.Manifest
	if info.IsDir() {
		manifest, err = theme.LoadDir(os.DirFS(path), ".")
	} else {
		manifest, err = theme.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("config: load theme manifest: %w", err)
	}
	return manifest, nil
}

package layout

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds layouts keyed by id.
type Store struct {
	layouts map[string]Layout
}

// NewStore builds a store from already constructed layouts. Empty or
// duplicate ids are rejected.
func NewStore(layouts ...Layout) (*Store, error) {
	store := &Store{layouts: make(map[string]Layout, len(layouts))}
	for _, l := range layouts {
		if err := store.add(l); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadFS walks the provided filesystem and parses JSON/YAML layout files.
// When fsys is nil or no layout files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{layouts: make(map[string]Layout)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLayoutFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("layout: read %s: %w", path, err)
		}

		layouts, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, l := range layouts {
			if err := store.add(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Layout returns the layout registered under id.
func (s *Store) Layout(id string) (Layout, bool) {
	if s == nil {
		return Layout{}, false
	}
	l, ok := s.layouts[strings.TrimSpace(id)]
	return l, ok
}

// IDs returns the sorted layout ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.layouts))
	for id := range s.layouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any layouts.
func (s *Store) Empty() bool {
	return s == nil || len(s.layouts) == 0
}

func (s *Store) add(l Layout) error {
	if l.ID == "" {
		if l.Source != "" {
			return fmt.Errorf("layout: file %s defines an empty layout id", l.Source)
		}
		return fmt.Errorf("layout: layout id is required")
	}
	if existing, exists := s.layouts[l.ID]; exists {
		return fmt.Errorf("layout: duplicate layout %q (file %s, already defined in %s)", l.ID, l.Source, existing.Source)
	}
	s.layouts[l.ID] = l
	return nil
}

type documentFile struct {
	Layouts map[string]layoutFile `json:"layouts" yaml:"layouts"`
}

type layoutFile struct {
	Title string `json:"title" yaml:"title"`
	Rows  []Row  `json:"rows" yaml:"rows"`
}

// Parse decodes a single layout document. The extension of source selects
// JSON or YAML decoding. Layouts are returned sorted by id.
func Parse(data []byte, source string) ([]Layout, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	layouts := make([]Layout, 0, len(doc.Layouts))
	for id, raw := range doc.Layouts {
		layouts = append(layouts, Layout{
			ID:     strings.TrimSpace(id),
			Title:  raw.Title,
			Source: source,
			Rows:   raw.Rows,
		})
	}
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("layout: file %s is empty", source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("layout: parse %s: %w", source, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("layout: parse %s: %w", source, err)
		}
	}
	return doc, nil
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

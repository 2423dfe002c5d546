package layout_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
)

func TestLoadFS_Embedded(t *testing.T) {
	store, err := layout.LoadFS(layout.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded layouts: %v", err)
	}

	want := []string{"gutter", "holy-grail", "toolbar"}
	if diff := cmp.Diff(want, store.IDs()); diff != "" {
		t.Fatalf("layout ids mismatch (-want +got):\n%s", diff)
	}

	grail, ok := store.Layout("holy-grail")
	if !ok {
		t.Fatalf("expected holy-grail layout")
	}
	if grail.Source != "showcase.yaml" {
		t.Fatalf("unexpected source %q", grail.Source)
	}
	if len(grail.Rows) != 3 || len(grail.Rows[1].Columns) != 3 {
		t.Fatalf("unexpected shape: %+v", grail.Rows)
	}
	main := grail.Rows[1].Columns[1]
	if main.ID != "main" || len(main.Rows) != 1 {
		t.Fatalf("expected nested row under main, got %+v", main)
	}
	md, ok := main.Spec.Responsive[grid.BreakpointMD].Detail()
	if !ok || md.Span == nil || *md.Span != 12 {
		t.Fatalf("unexpected md detail: %+v", md)
	}

	toolbar, _ := store.Layout("toolbar")
	if toolbar.Rows[0].Spec.Wraps() {
		t.Fatalf("toolbar row should not wrap")
	}
}

func TestLoadFS_DuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("layouts:\n  main:\n    rows: []\n")},
		"b.json": {Data: []byte(`{"layouts": {"main": {"rows": []}}}`)},
	}

	_, err := layout.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate layout "main"`) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file":     {"empty.yaml": {Data: []byte("  \n")}},
		"bad json":       {"broken.json": {Data: []byte(`{"layouts": [}`)}},
		"bad responsive": {"bad.yaml": {Data: []byte("layouts:\n  x:\n    rows:\n      - columns:\n          - md: [1, 2]\n")}},
	}

	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := layout.LoadFS(fsys); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFS_IgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":     {Data: []byte("# layouts")},
		"nested/x.yml":  {Data: []byte("layouts:\n  x:\n    title: X\n")},
		"nested/y.toml": {Data: []byte("not a layout")},
	}

	store, err := layout.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"x"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := layout.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestNewStore(t *testing.T) {
	if _, err := layout.NewStore(layout.Layout{}); err == nil {
		t.Fatalf("expected error for empty id")
	}
	if _, err := layout.NewStore(layout.Layout{ID: "a"}, layout.Layout{ID: "a"}); err == nil {
		t.Fatalf("expected error for duplicate id")
	}
	store, err := layout.NewStore(layout.Layout{ID: "a"})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, ok := store.Layout("a"); !ok {
		t.Fatalf("expected layout a")
	}
}

func TestParse_SortsAndTrimsIDs(t *testing.T) {
	data := []byte("layouts:\n  \" b \":\n    title: B\n  a:\n    rows:\n      - columns:\n          - span: 6\n")
	layouts, err := layout.Parse(data, "doc.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ids := make([]string, 0, len(layouts))
	for _, l := range layouts {
		ids = append(ids, l.ID)
		if l.Source != "doc.yaml" {
			t.Fatalf("expected source doc.yaml, got %q", l.Source)
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if got := layouts[0].Rows[0].Columns[0].Spec.Span; got != 6 {
		t.Fatalf("expected span 6, got %d", got)
	}
}

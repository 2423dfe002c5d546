package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLintFileReportsSuspiciousValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `layouts:
  bad:
    rows:
      - id: top
        gutter: -4
        justify: middle
        align: stretch
        columns:
          - span: 30
            md: -2
          - lg: { span: 6, offset: 25 }
            rows:
              - columns:
                  - push: -1
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := lintFile(path)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	sortViolations(got)

	messages := make([]string, len(got))
	for i, v := range got {
		messages[i] = v.location + " -> " + v.message
	}
	want := []string{
		"layout > bad > rows.top -> gutter -4 is negative",
		`layout > bad > rows.top -> unknown align "stretch" (supported: top, middle, bottom)`,
		`layout > bad > rows.top -> unknown justify "middle" (supported: start, end, center, space-between, space-around, space-evenly)`,
		"layout > bad > rows.top > columns[0] -> md -2 is outside 0..24",
		"layout > bad > rows.top > columns[0] -> span 30 is outside 0..24",
		"layout > bad > rows.top > columns[1] -> lg.offset 25 is outside 0..24",
		"layout > bad > rows.top > columns[1] > rows[0] > columns[0] -> push -1 is outside 0..24",
	}
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestLintPathEmbeddedLayoutsAreClean(t *testing.T) {
	got, err := lintPath(filepath.Join("..", "..", "pkg", "layout", "layouts"))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected bundled layouts to be clean, got %+v", got)
	}
}

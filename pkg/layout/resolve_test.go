package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
)

func TestResolve_GutterReachesDirectColumns(t *testing.T) {
	l := layout.Layout{
		ID: "gutter",
		Rows: []layout.Row{{
			Spec: grid.RowSpec{Gutter: 20},
			Columns: []layout.Column{
				{Content: "111"},
				{Content: "222"},
			},
		}},
	}

	resolved := layout.Resolve(l, grid.DefaultContext())
	row := resolved.Rows[0]

	for _, prop := range []string{"margin-left", "margin-right"} {
		if got, _ := row.Style.Get(prop); got != "-10px" {
			t.Fatalf("row %s: want -10px, got %q", prop, got)
		}
	}
	if got, _ := row.Columns[0].Style.Get("padding-right"); got != "10px" {
		t.Fatalf("first column padding-right: want 10px, got %q", got)
	}
	if got, _ := row.Columns[1].Style.Get("padding-left"); got != "10px" {
		t.Fatalf("second column padding-left: want 10px, got %q", got)
	}
	for _, col := range row.Columns {
		if !col.Classes.Has("w-col") {
			t.Fatalf("column missing base class: %v", col.Classes)
		}
	}
}

func TestResolve_NestedRowsDoNotInheritGutter(t *testing.T) {
	l := layout.Layout{
		ID: "nested",
		Rows: []layout.Row{{
			Spec: grid.RowSpec{Gutter: 24},
			Columns: []layout.Column{{
				Spec: grid.ColumnSpec{Span: 12},
				Rows: []layout.Row{{
					Columns: []layout.Column{{Spec: grid.ColumnSpec{Span: 6}}},
				}},
			}},
		}},
	}

	resolved := layout.Resolve(l, grid.DefaultContext().WithGutter(40))
	outer := resolved.Rows[0].Columns[0]
	if got, _ := outer.Style.Get("padding-left"); got != "12px" {
		t.Fatalf("outer column padding: want 12px, got %q", got)
	}

	inner := outer.Rows[0]
	if len(inner.Style) != 0 {
		t.Fatalf("nested row without gutter must have no inline style, got %q", inner.Style.String())
	}
	want := grid.Style{
		{Property: "flex-basis", Value: "25%"},
		{Property: "flex-grow", Value: "0"},
		{Property: "max-width", Value: "25%"},
	}
	if diff := cmp.Diff(want, inner.Columns[0].Style); diff != "" {
		t.Fatalf("nested column style mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Prefix(t *testing.T) {
	l := layout.Layout{
		ID:   "prefixed",
		Rows: []layout.Row{{Columns: []layout.Column{{Spec: grid.ColumnSpec{Span: 24}}}}},
	}

	resolved := layout.Resolve(l, grid.DefaultContext().WithPrefix("ui"))
	if resolved.Prefix != "ui" {
		t.Fatalf("prefix mismatch: %q", resolved.Prefix)
	}
	want := grid.ClassList{"ui-col", "ui-col-24"}
	if diff := cmp.Diff(want, resolved.Rows[0].Columns[0].Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if !resolved.Rows[0].Classes.Has("ui-row") {
		t.Fatalf("row classes: %v", resolved.Rows[0].Classes)
	}
}

func TestResolve_EmbeddedToolbar(t *testing.T) {
	store, err := layout.LoadFS(layout.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	toolbar, _ := store.Layout("toolbar")

	resolved := layout.Resolve(toolbar, grid.DefaultContext())
	row := resolved.Rows[0]

	wantRow := grid.ClassList{"w-row", "w-row-space-between", "w-row-middle", "w-row-no-wrap"}
	if diff := cmp.Diff(wantRow, row.Classes); diff != "" {
		t.Fatalf("row classes mismatch (-want +got):\n%s", diff)
	}
	wantLast := grid.ClassList{"w-col", "w-col-4", "w-col-lg-2", "w-col-offset-lg-2", "actions"}
	if diff := cmp.Diff(wantLast, row.Columns[2].Classes); diff != "" {
		t.Fatalf("column classes mismatch (-want +got):\n%s", diff)
	}
	if got, _ := row.Columns[1].Style.Get("padding-left"); got != "4px" {
		t.Fatalf("padding-left: want 4px, got %q", got)
	}
}

package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/render"
)

func TestOrchestrator_GenerateEmbeddedLayout(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got := string(output)
	for _, want := range []string{
		`data-layout="toolbar"`,
		`class="w-row w-row-space-between w-row-middle w-row-no-wrap"`,
		`w-col w-col-12 w-col-push-2`,
		`padding-left: 4px`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q\n%s", want, got)
		}
	}
}

func TestOrchestrator_LayoutsListsEmbeddedIDs(t *testing.T) {
	orch := New()
	if diff := cmp.Diff([]string{"gutter", "holy-grail", "toolbar"}, orch.Layouts()); diff != "" {
		t.Fatalf("layout ids mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_UnknownLayout(t *testing.T) {
	orch := New()
	_, err := orch.Generate(context.Background(), Request{LayoutID: "missing"})
	if !errors.Is(err, ErrLayoutNotFound) {
		t.Fatalf("expected ErrLayoutNotFound, got %v", err)
	}
}

func TestOrchestrator_RequiresLayout(t *testing.T) {
	orch := New()
	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Generate(ctx, Request{LayoutID: "toolbar"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{LayoutID: "toolbar", Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_InlineLayoutSkipsStore(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithLayoutFS(nil),
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithPrefix("g"),
	)

	_, err := orch.Generate(context.Background(), Request{
		Layout: &layout.Layout{
			ID: "inline",
			Rows: []layout.Row{{
				Spec:    grid.RowSpec{Gutter: 10},
				Columns: []layout.Column{{Spec: grid.ColumnSpec{Span: 6}}},
			}},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	col := renderer.resolved.Rows[0].Columns[0]
	if diff := cmp.Diff(grid.ClassList{"g-col", "g-col-6"}, col.Classes); diff != "" {
		t.Fatalf("column classes mismatch (-want +got):\n%s", diff)
	}
	if got, _ := col.Style.Get("padding-left"); got != "5px" {
		t.Fatalf("expected gutter padding 5px, got %q", got)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme without a selector")
	}
	if renderer.options.Stylesheet == nil || renderer.options.Stylesheet.Prefix() != "g" {
		t.Fatalf("expected stylesheet generated for prefix g")
	}
}

func TestOrchestrator_ResolveDoesNotRender(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)))

	resolved, err := orch.Resolve(context.Background(), Request{LayoutID: "toolbar"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != "toolbar" || len(resolved.Rows) != 1 {
		t.Fatalf("unexpected resolved layout: %+v", resolved)
	}
	if renderer.calls != 0 {
		t.Fatalf("resolve must not call the renderer")
	}
}

func TestOrchestrator_ExplicitLayoutFS(t *testing.T) {
	orch := New(WithLayoutFS(layout.EmbeddedFS()), WithStore(nil))
	if _, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"}); err != nil {
		t.Fatalf("generate from explicit fs: %v", err)
	}
}

type captureRenderer struct {
	resolved layout.Resolved
	options  render.RenderOptions
	calls    int
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, resolved layout.Resolved, options render.RenderOptions) ([]byte, error) {
	r.calls++
	r.resolved = resolved
	r.options = options
	return []byte(resolved.ID), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

package gridkit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/orchestrator"
	"github.com/goliatone/go-gridkit/pkg/render"
)

// ColumnSpec aliases grid.ColumnSpec for callers that only import the root
// package.
type ColumnSpec = grid.ColumnSpec

// RowSpec aliases grid.RowSpec.
type RowSpec = grid.RowSpec

// Layout aliases layout.Layout.
type Layout = layout.Layout

// RenderOptions describes per-request overrides forwarded to renderers.
type RenderOptions = render.RenderOptions

// Column computes the classes and inline style of a column using the default
// prefix and no gutter.
func Column(spec ColumnSpec) grid.Result {
	return grid.Column(spec)
}

// Row computes the classes and inline style of a row using the default prefix.
func Row(spec RowSpec) grid.RowResult {
	return grid.Row(spec)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders a stored layout with the named renderer. It is the
// simplest entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, layoutID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		LayoutID: layoutID,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromLayout renders an in-memory layout, bypassing the store.
func GenerateHTMLFromLayout(ctx context.Context, l Layout, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Layout:   &l,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// default theme/variant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// theme configuration.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// WithThemeManifests registers theme manifests with the orchestrator.
func WithThemeManifests(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(manifests...)
}

// WithPrefix forwards the class prefix to the orchestrator.
func WithPrefix(prefix string) orchestrator.Option {
	return orchestrator.WithPrefix(prefix)
}

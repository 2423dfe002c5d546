package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/render"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(context.Background(), Request{
		LayoutID:     "toolbar",
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if diff := cmp.Diff([]selectorCall{{name: "custom-theme", variant: "custom-variant"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "custom-variant" {
		t.Fatalf("unexpected theme selection: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens: %v", cfg.CSSVars)
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
}

func TestOrchestrator_ThemeManifestsMergeVariant(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeManifests(acmeManifest()),
		WithDefaultTheme("", "dense"),
	)

	if _, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dense" {
		t.Fatalf("unexpected theme selection: %s/%s", cfg.Theme, cfg.Variant)
	}

	wantPartials := map[string]string{
		"grid.layout": "templates/layout.tmpl",
		"grid.column": "themes/acme/column.tmpl",
		"grid.row":    "themes/acme/dense/row.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("grid.stylesheet"); got != "/assets/themes/acme/grid.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
	if got := cfg.AssetURL("grid.script"); got != "/assets/themes/acme/dense.js" {
		t.Fatalf("unexpected variant asset url: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %s", got)
	}

	if renderer.resolved.Prefix != "ui" {
		t.Fatalf("expected theme prefix ui, got %q", renderer.resolved.Prefix)
	}
	if !renderer.resolved.Rows[0].Classes.Has("ui-row") {
		t.Fatalf("expected ui-row class, got %v", renderer.resolved.Rows[0].Classes)
	}
	sheet := renderer.options.Stylesheet
	if sheet.Prefix() != "ui" {
		t.Fatalf("expected stylesheet prefix ui, got %q", sheet.Prefix())
	}
	if got := sheet.MinWidth(grid.BreakpointMD); got != 800 {
		t.Fatalf("expected md breakpoint from theme token, got %d", got)
	}
	if got := sheet.MinWidth(grid.BreakpointLG); got != 992 {
		t.Fatalf("expected default lg breakpoint, got %d", got)
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	provider := theme.NewRegistry()
	if err := provider.Register(acmeManifest()); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithThemeProvider(provider, "acme", "dense"),
		WithThemeFallbacks(map[string]string{"grid.title": "templates/title.tmpl"}),
	)

	if _, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dense" {
		t.Fatalf("unexpected theme selection: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["grid.row"] != "themes/acme/dense/row.tmpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["grid.row"])
	}
	if cfg.Partials["grid.layout"] != defaultThemeFallbacks()["grid.layout"] {
		t.Fatalf("fallback partial not applied for layout")
	}
	if cfg.Partials["grid.title"] != "templates/title.tmpl" {
		t.Fatalf("custom fallback missing, got %v", cfg.Partials)
	}
	if got := cfg.AssetURL("grid.script"); got != "/assets/themes/acme/dense.js" {
		t.Fatalf("unexpected variant asset url: %s", got)
	}

	// An unknown theme falls back to the provider default.
	if _, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar", ThemeName: "other"}); err != nil {
		t.Fatalf("generate with unknown theme: %v", err)
	}
	if got := renderer.options.Theme.Tokens["brand"]; got != "#654321" {
		t.Fatalf("expected default theme tokens, got %s", got)
	}
}

func TestOrchestrator_ThemeSelectionError(t *testing.T) {
	selectErr := errors.New("boom")
	orch := New(
		WithRegistry(render.NewRegistry(&captureRenderer{})),
		WithThemeSelector(&stubThemeSelector{err: selectErr}),
	)

	_, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"})
	if !errors.Is(err, selectErr) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestOrchestrator_UnknownThemeWithoutDefault(t *testing.T) {
	provider := theme.NewRegistry()
	if err := provider.Register(acmeManifest()); err != nil {
		t.Fatalf("register manifest: %v", err)
	}
	orch := New(
		WithRegistry(render.NewRegistry(&captureRenderer{})),
		WithThemeProvider(provider, "", ""),
	)

	_, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar", ThemeName: "other"})
	if !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected theme not found, got %v", err)
	}
}

func TestOrchestrator_InvalidThemeManifest(t *testing.T) {
	cases := map[string]*theme.Manifest{
		"missing version": {Name: "acme"},
		"empty token":     {Name: "acme", Version: "1.0.0", Tokens: map[string]string{"brand": ""}},
	}
	for name, manifest := range cases {
		t.Run(name, func(t *testing.T) {
			orch := New(
				WithRegistry(render.NewRegistry(&captureRenderer{})),
				WithThemeManifests(manifest),
			)
			_, err := orch.Generate(context.Background(), Request{LayoutID: "toolbar"})
			var invalid theme.ValidationError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected manifest validation error, got %v", err)
			}
		})
	}
}

func TestOrchestrator_StylesheetFollowsTheme(t *testing.T) {
	orch := New(WithThemeManifests(&theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"grid.prefix": "ui"},
	}))

	sheet, err := orch.Stylesheet(context.Background(), Request{})
	if err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	if len(sheet.Lookup("ui-col-12")) == 0 {
		t.Fatalf("expected ui-col-12 rule")
	}
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":       "#123456",
			"grid.prefix": "ui",
		},
		Templates: map[string]string{
			"grid.column": "themes/acme/column.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme/",
			Files: map[string]string{
				"grid.stylesheet": "grid.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dense": {
				Tokens: map[string]string{
					"brand":              "#654321",
					"grid.breakpoint.md": "800px",
				},
				Templates: map[string]string{
					"grid.row": "themes/acme/dense/row.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"grid.script": "dense.js",
					},
				},
			},
		},
	}
}

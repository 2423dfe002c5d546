package orchestrator

import (
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/renderers/html"
	"github.com/goliatone/go-gridkit/pkg/stylesheet"
)

const (
	// PrefixToken overrides the class prefix when present in the selected
	// theme tokens.
	PrefixToken = "grid.prefix"
	// BreakpointTokenPrefix introduces per breakpoint min width tokens, for
	// example grid.breakpoint.md: 800.
	BreakpointTokenPrefix = "grid.breakpoint."
)

type themeConfig struct {
	selector       theme.ThemeSelector
	manifests      []*theme.Manifest
	fallbacks      map[string]string
	defaultTheme   string
	defaultVariant string
}

// defaultThemeFallbacks maps partial keys to the built-in HTML templates. A
// theme overrides one by naming the same key in its templates.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		html.PartialLayout: html.TemplateLayout,
		html.PartialRow:    html.TemplateRow,
		html.PartialColumn: html.TemplateColumn,
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// renderers receive the resolved theme configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes.selector = selector
	}
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// the default theme and variant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		o.themes.selector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   strings.TrimSpace(defaultTheme),
			DefaultVariant: strings.TrimSpace(defaultVariant),
		}
	}
}

// WithThemeFallbacks sets the partials used when the selected theme does not
// override them. Keys missing here are never resolved from a theme.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		if o.themes.fallbacks == nil {
			o.themes.fallbacks = defaultThemeFallbacks()
		}
		for key, value := range fallbacks {
			o.themes.fallbacks[strings.TrimSpace(key)] = value
		}
	}
}

// WithDefaultTheme sets the theme and variant used when a request leaves them
// empty.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themes.defaultTheme = strings.TrimSpace(name)
		o.themes.defaultVariant = strings.TrimSpace(variant)
	}
}

// WithThemeManifests registers the manifests in a go-theme registry and
// selects from it. The first manifest is the default theme unless
// WithDefaultTheme says otherwise. Invalid manifests surface as an
// initialisation error on the first Generate.
func WithThemeManifests(manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themes.manifests = append(o.themes.manifests[:0:0], manifests...)
		o.themes.selector = nil
	}
}

// applyThemeDefaults builds the registry backed selector for WithThemeManifests.
func (o *Orchestrator) applyThemeDefaults() error {
	if o.themes.fallbacks == nil {
		o.themes.fallbacks = defaultThemeFallbacks()
	}
	if o.themes.selector != nil || len(o.themes.manifests) == 0 {
		return nil
	}

	registry := theme.NewRegistry()
	defaultTheme := o.themes.defaultTheme
	for _, manifest := range o.themes.manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return fmt.Errorf("orchestrator: register theme: %w", err)
		}
		if defaultTheme == "" {
			defaultTheme = manifest.Name
		}
	}
	o.themes.selector = theme.Selector{
		Registry:       registry,
		DefaultTheme:   defaultTheme,
		DefaultVariant: o.themes.defaultVariant,
	}
	return nil
}

func (o *Orchestrator) selectTheme(req Request) (*theme.RendererConfig, error) {
	if o.themes.selector == nil {
		return nil, nil
	}
	name := strings.TrimSpace(req.ThemeName)
	if name == "" {
		name = o.themes.defaultTheme
	}
	variant := strings.TrimSpace(req.ThemeVariant)
	if variant == "" {
		variant = o.themes.defaultVariant
	}

	selection, err := o.themes.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	cfg := selection.RendererTheme(o.themes.fallbacks)
	return &cfg, nil
}

func (o *Orchestrator) prefixFor(cfg *theme.RendererConfig) string {
	if cfg != nil {
		if prefix := strings.TrimSpace(cfg.Tokens[PrefixToken]); prefix != "" {
			return prefix
		}
	}
	return o.prefix
}

func (o *Orchestrator) sheetFor(cfg *theme.RendererConfig) *stylesheet.Sheet {
	options := []stylesheet.Option{stylesheet.WithPrefix(o.prefixFor(cfg))}
	if cfg != nil {
		for _, bp := range grid.Breakpoints() {
			raw := strings.TrimSuffix(strings.TrimSpace(cfg.Tokens[BreakpointTokenPrefix+bp.String()]), "px")
			if raw == "" {
				continue
			}
			px, err := strconv.Atoi(raw)
			if err != nil || px < 0 {
				continue
			}
			options = append(options, stylesheet.WithMinWidth(bp, px))
		}
	}
	return stylesheet.Generate(options...)
}

package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/render"
	rendertemplate "github.com/goliatone/go-gridkit/pkg/render/template"
	"github.com/goliatone/go-gridkit/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

// Theme partial keys and the built-in templates they fall back to. A theme
// swaps a template by naming the key in its manifest templates.
const (
	PartialLayout = "grid.layout"
	PartialRow    = "grid.row"
	PartialColumn = "grid.column"

	TemplateLayout = "templates/layout.tmpl"
	TemplateRow    = "templates/row.tmpl"
	TemplateColumn = "templates/column.tmpl"
)

// partials names the templates used for one render.
type partials struct {
	layout string
	row    string
	column string
}

func partialsFor(cfg *theme.RendererConfig) partials {
	pick := func(key, fallback string) string {
		if cfg == nil {
			return fallback
		}
		if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
			return name
		}
		return fallback
	}
	return partials{
		layout: pick(PartialLayout, TemplateLayout),
		row:    pick(PartialRow, TemplateRow),
		column: pick(PartialColumn, TemplateColumn),
	}
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	rawContent       bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. It must
// contain the built-in template paths plus any theme partials in use.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy replaces the bluemonday policy used on column content.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithRawContent disables content sanitising. Only use it for trusted
// layouts.
func WithRawContent() Option {
	return func(cfg *config) {
		cfg.rawContent = true
	}
}

// Renderer writes resolved layouts as nested <div> elements.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	policy := cfg.policy
	if policy == nil {
		policy = defaultPolicy()
	}
	if cfg.rawContent {
		policy = nil
	}

	return &Renderer{templates: renderer, policy: policy}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, resolved layout.Resolved, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	names := partialsFor(options.Theme)
	rows, err := r.renderRows(names, resolved.Rows)
	if err != nil {
		return nil, err
	}

	prefix := resolved.Prefix
	if prefix == "" {
		prefix = grid.DefaultPrefix
	}
	data := map[string]any{
		"id":     resolved.ID,
		"title":  resolved.Title,
		"prefix": prefix,
		"rows":   rows,
	}
	if options.InlineStylesheet && options.Stylesheet != nil {
		data["stylesheet"] = options.Stylesheet.String()
	}
	if cfg := options.Theme; cfg != nil {
		data["theme"] = cfg.Theme
		data["variant"] = cfg.Variant
		data["theme_style"] = cssVarsStyle(cfg.CSSVars)
	}

	out, err := r.templates.RenderTemplate(names.layout, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render layout: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) renderRows(names partials, rows []layout.ResolvedRow) (string, error) {
	var b strings.Builder
	for _, row := range rows {
		var columns strings.Builder
		for _, col := range row.Columns {
			out, err := r.renderColumn(names, col)
			if err != nil {
				return "", err
			}
			columns.WriteString(out)
		}
		out, err := r.templates.RenderTemplate(names.row, map[string]any{
			"id":      row.ID,
			"classes": row.Classes.String(),
			"style":   row.Style.String(),
			"columns": columns.String(),
		})
		if err != nil {
			return "", fmt.Errorf("html renderer: render row: %w", err)
		}
		b.WriteString(strings.TrimRight(out, "\n"))
	}
	return b.String(), nil
}

func (r *Renderer) renderColumn(names partials, col layout.ResolvedColumn) (string, error) {
	inner := sanitizeContent(r.policy, col.Content)
	if len(col.Rows) > 0 {
		nested, err := r.renderRows(names, col.Rows)
		if err != nil {
			return "", err
		}
		inner += nested
	}
	out, err := r.templates.RenderTemplate(names.column, map[string]any{
		"id":      col.ID,
		"classes": col.Classes.String(),
		"style":   col.Style.String(),
		"inner":   inner,
	})
	if err != nil {
		return "", fmt.Errorf("html renderer: render column: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		// Token keys are dotted; custom property names are not.
		parts = append(parts, strings.ReplaceAll(key, ".", "-")+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/render"
	"github.com/goliatone/go-gridkit/pkg/renderers/html"
	"github.com/goliatone/go-gridkit/pkg/renderers/terminal"
	"github.com/goliatone/go-gridkit/pkg/stylesheet"
)

const defaultRendererName = html.Name

// ErrLayoutNotFound is returned when a request names a layout the store does
// not hold.
var ErrLayoutNotFound = errors.New("orchestrator: layout not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLayoutFS supplies an fs.FS holding layout documents. Pass nil to
// disable the embedded samples.
func WithLayoutFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.layoutFS = fsys
		o.layoutFSSpecified = true
	}
}

// WithStore injects a pre-loaded layout store.
func WithStore(store *layout.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithPrefix sets the class prefix. A theme token grid.prefix takes
// precedence.
func WithPrefix(prefix string) Option {
	return func(o *Orchestrator) {
		o.prefix = strings.TrimSpace(prefix)
	}
}

// Orchestrator resolves layouts and renders them with the requested renderer.
type Orchestrator struct {
	store             *layout.Store
	layoutFS          fs.FS
	layoutFSSpecified bool
	registry          *render.Registry
	defaultRenderer   string
	prefix            string
	themes            themeConfig
	initialiseErr     error
	defaultsApplied   bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		prefix:          grid.DefaultPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// LayoutID selects a layout from the store. Ignored when Layout is set.
	LayoutID string

	// Layout renders an inline layout, bypassing the store.
	Layout *layout.Layout

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector. Empty values
	// use the configured defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions is forwarded to the renderer. The orchestrator fills Theme
	// and Stylesheet when they are nil.
	RenderOptions render.RenderOptions
}

// Generate resolves and renders the requested layout.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	resolved, options, err := o.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, resolved, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Resolve returns the computed layout without rendering it.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (layout.Resolved, error) {
	resolved, _, err := o.prepare(ctx, req)
	return resolved, err
}

// Stylesheet generates the stylesheet matching a request's theme selection.
func (o *Orchestrator) Stylesheet(ctx context.Context, req Request) (*stylesheet.Sheet, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}
	cfg, err := o.selectTheme(req)
	if err != nil {
		return nil, err
	}
	return o.sheetFor(cfg), nil
}

// Layouts lists the ids available in the store.
func (o *Orchestrator) Layouts() []string {
	return o.store.IDs()
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (layout.Resolved, render.RenderOptions, error) {
	options := req.RenderOptions
	if err := o.ready(ctx); err != nil {
		return layout.Resolved{}, options, err
	}

	l, err := o.layoutFor(req)
	if err != nil {
		return layout.Resolved{}, options, err
	}

	cfg, err := o.selectTheme(req)
	if err != nil {
		return layout.Resolved{}, options, err
	}
	if options.Theme == nil {
		options.Theme = cfg
	}
	if options.Stylesheet == nil {
		options.Stylesheet = o.sheetFor(cfg)
	}

	gridCtx := grid.DefaultContext().WithPrefix(o.prefixFor(cfg))
	return layout.Resolve(l, gridCtx), options, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) layoutFor(req Request) (layout.Layout, error) {
	if req.Layout != nil {
		return *req.Layout, nil
	}
	id := strings.TrimSpace(req.LayoutID)
	if id == "" {
		return layout.Layout{}, errors.New("orchestrator: layout id is required")
	}
	l, ok := o.store.Layout(id)
	if !ok {
		return layout.Layout{}, fmt.Errorf("%w: %q", ErrLayoutNotFound, id)
	}
	return l, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.store == nil {
		if !o.layoutFSSpecified {
			o.layoutFS = layout.EmbeddedFS()
		}
		store, err := layout.LoadFS(o.layoutFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load layouts: %w", err)
			store, _ = layout.NewStore()
		}
		o.store = store
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(terminal.New())
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.prefix == "" {
		o.prefix = grid.DefaultPrefix
	}
	if err := o.applyThemeDefaults(); err != nil && o.initialiseErr == nil {
		o.initialiseErr = err
	}

	o.defaultsApplied = true
}

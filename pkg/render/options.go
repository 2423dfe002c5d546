package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridkit/pkg/stylesheet"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the resolved layout.
type RenderOptions struct {
	// Theme carries the selected theme. HTML renderers expose its CSS
	// variables on the layout wrapper.
	Theme *theme.RendererConfig
	// Stylesheet resolves class driven declarations for previews.
	Stylesheet *stylesheet.Sheet
	// InlineStylesheet asks HTML renderers to embed Stylesheet in a <style>
	// element.
	InlineStylesheet bool
	// Viewport is the simulated viewport width in px used to pick the active
	// breakpoints. Zero lets the renderer choose.
	Viewport int
	// Width is the output width in characters for text previews.
	Width int
}

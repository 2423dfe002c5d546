package gridkit

import (
	"io/fs"

	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/renderers/html"
	"github.com/goliatone/go-gridkit/pkg/stylesheet"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedLayouts exposes the sample layouts shipped with the module.
func EmbeddedLayouts() fs.FS {
	return layout.EmbeddedFS()
}

// Stylesheet returns the CSS backing the grid class vocabulary. Serve it once
// per page, for example:
//
//	mux.HandleFunc("/grid.css", func(w http.ResponseWriter, _ *http.Request) {
//	  w.Header().Set("Content-Type", "text/css")
//	  io.WriteString(w, gridkit.Stylesheet())
//	})
func Stylesheet(options ...stylesheet.Option) string {
	return stylesheet.Generate(options...).String()
}

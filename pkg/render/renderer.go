package render

import (
	"context"

	"github.com/goliatone/go-gridkit/pkg/layout"
)

// Renderer converts a resolved layout into a byte representation (HTML,
// terminal preview, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, resolved layout.Resolved, options RenderOptions) ([]byte, error)
}

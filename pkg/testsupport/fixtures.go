package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustResolveEmbedded resolves one of the bundled sample layouts with the
// default grid context.
func MustResolveEmbedded(t *testing.T, id string) layout.Resolved {
	t.Helper()

	store, err := layout.LoadFS(layout.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded layouts: %v", err)
	}
	l, ok := store.Layout(id)
	if !ok {
		t.Fatalf("embedded layout %q not found", id)
	}
	return layout.Resolve(l, grid.DefaultContext())
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

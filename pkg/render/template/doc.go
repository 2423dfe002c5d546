// Package template defines the template engine seam used by the HTML
// renderer. The gotemplate subpackage provides the default pongo2 backed
// implementation.
package template

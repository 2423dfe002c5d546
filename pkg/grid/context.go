package grid

import (
	"strconv"
	"strings"
)

// Context is the ambient state a parent hands to its children while a grid is
// being computed: the class prefix and the gutter of the enclosing row.
type Context struct {
	Prefix string
	Gutter float64
}

// DefaultContext returns a Context using DefaultPrefix and no gutter.
func DefaultContext() Context {
	return Context{Prefix: DefaultPrefix}
}

// WithPrefix returns a copy of c using prefix for every class token.
func (c Context) WithPrefix(prefix string) Context {
	c.Prefix = strings.TrimSpace(prefix)
	return c
}

// WithGutter returns a copy of c carrying gutter. Values <= 0 clear it.
func (c Context) WithGutter(gutter float64) Context {
	if gutter <= 0 {
		gutter = 0
	}
	c.Gutter = gutter
	return c
}

// ClassPrefix returns the prefix in effect, falling back to DefaultPrefix.
func (c Context) ClassPrefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

func (c Context) class(parts ...string) string {
	return c.ClassPrefix() + "-" + strings.Join(parts, "-")
}

// Column computes a column using DefaultContext.
func Column(spec ColumnSpec) Result {
	return DefaultContext().Column(spec)
}

// Row computes a row using DefaultContext.
func Row(spec RowSpec) RowResult {
	return DefaultContext().Row(spec)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

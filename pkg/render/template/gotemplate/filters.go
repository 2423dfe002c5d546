package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-gridkit/pkg/grid"
)

// gridFilters returns the grid filters handed to the engine at load time.
// go-template contributes trim and lowerfirst.
//
//	{{ props|col_classes }}      column class attribute from a props map
//	{{ props|col_style:"ui" }}   column inline style, optional class prefix
//	{{ props|col_style:row }}    column inline style inside row (gutter, prefix)
//	{{ props|col_style:16 }}     column inline style with an explicit gutter
//	{{ props|row_classes }}      row class attribute
//	{{ props|row_style }}        row inline style
func gridFilters() map[string]any {
	return map[string]any{
		"col_classes": columnFilter(func(r grid.Result) string { return r.Classes.String() }),
		"col_style":   columnFilter(func(r grid.Result) string { return r.Style.String() }),
		"row_classes": rowFilter(func(r grid.RowResult) string { return r.Classes.String() }),
		"row_style":   rowFilter(func(r grid.RowResult) string { return r.Style.String() }),
	}
}

func columnFilter(project func(grid.Result) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		props, ok := in.Interface().(map[string]any)
		if !ok {
			return pongo2.AsValue(""), nil
		}
		ctx := filterContext(param)
		return pongo2.AsValue(project(ctx.Column(grid.ColumnFromProps(props)))), nil
	}
}

func rowFilter(project func(grid.RowResult) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		props, ok := in.Interface().(map[string]any)
		if !ok {
			return pongo2.AsValue(""), nil
		}
		ctx := filterContext(param)
		return pongo2.AsValue(project(ctx.Row(grid.RowFromProps(props)))), nil
	}
}

// filterContext reads the filter parameter: a string is a class prefix, a
// number is the enclosing gutter, and a map is the enclosing row's props
// ("gutter" and an optional "prefix").
func filterContext(param *pongo2.Value) grid.Context {
	ctx := grid.DefaultContext()
	if param == nil || param.IsNil() {
		return ctx
	}
	if param.IsNumber() {
		return ctx.WithGutter(param.Float())
	}
	if props := paramProps(param.Interface()); props != nil {
		if prefix, ok := props["prefix"].(string); ok && strings.TrimSpace(prefix) != "" {
			ctx = ctx.WithPrefix(prefix)
		}
		return ctx.WithGutter(grid.RowFromProps(props).Gutter)
	}
	if prefix := strings.TrimSpace(param.String()); prefix != "" {
		ctx = ctx.WithPrefix(prefix)
	}
	return ctx
}

func paramProps(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case pongo2.Context:
		return v
	}
	return nil
}

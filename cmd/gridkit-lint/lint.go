package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
)

type violation struct {
	file     string
	location string
	message  string
}

func lintLayout(file string, l layout.Layout) []violation {
	return lintRows(file, []string{"layout", l.ID}, l.Rows)
}

func lintRows(file string, path []string, rows []layout.Row) []violation {
	var result []violation
	for i, row := range rows {
		rowPath := appendPath(path, nodeName("rows", i, row.ID))
		result = append(result, lintRow(file, rowPath, row.Spec)...)
		for j, col := range row.Columns {
			colPath := appendPath(rowPath, nodeName("columns", j, col.ID))
			result = append(result, lintColumn(file, colPath, col.Spec)...)
			result = append(result, lintRows(file, colPath, col.Rows)...)
		}
	}
	return result
}

func lintRow(file string, path []string, spec grid.RowSpec) []violation {
	var result []violation
	report := func(format string, args ...any) {
		result = append(result, violation{file: file, location: formatLocation(path), message: fmt.Sprintf(format, args...)})
	}

	if spec.Gutter < 0 {
		report("gutter %v is negative", spec.Gutter)
	}
	if spec.Justify != "" && !spec.Justify.Valid() {
		report("unknown justify %q (supported: %s)", spec.Justify, joinValues(grid.JustifyValues()))
	}
	if spec.Align != "" && !spec.Align.Valid() {
		report("unknown align %q (supported: %s)", spec.Align, joinValues(grid.AlignValues()))
	}
	return result
}

func lintColumn(file string, path []string, spec grid.ColumnSpec) []violation {
	var result []violation
	check := func(property string, value int) {
		if value < 0 || value > grid.Columns {
			result = append(result, violation{
				file:     file,
				location: formatLocation(path),
				message:  fmt.Sprintf("%s %d is outside 0..%d", property, value, grid.Columns),
			})
		}
	}

	check("span", spec.Span)
	check("offset", spec.Offset)
	check("pull", spec.Pull)
	check("push", spec.Push)

	for _, bp := range grid.Breakpoints() {
		value, ok := spec.Responsive[bp]
		if !ok {
			continue
		}
		if span, plain := value.Span(); plain {
			check(bp.String(), span)
			continue
		}
		detail, _ := value.Detail()
		for _, field := range []struct {
			name  string
			value *int
		}{
			{"span", detail.Span},
			{"offset", detail.Offset},
			{"pull", detail.Pull},
			{"push", detail.Push},
		} {
			if field.value != nil {
				check(bp.String()+"."+field.name, *field.value)
			}
		}
	}
	return result
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}
	return strings.Join(parts, ", ")
}

func nodeName(kind string, index int, id string) string {
	if id != "" {
		return kind + "." + id
	}
	return kind + "[" + strconv.Itoa(index) + "]"
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}

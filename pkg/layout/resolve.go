package layout

import "github.com/goliatone/go-gridkit/pkg/grid"

// Resolved is a layout with every node computed.
type Resolved struct {
	ID     string
	Title  string
	Prefix string
	Rows   []ResolvedRow
}

// ResolvedRow carries the computed output of a row.
type ResolvedRow struct {
	ID      string
	Classes grid.ClassList
	Style   grid.Style
	Flex    grid.Style
	Columns []ResolvedColumn
}

// ResolvedColumn carries the computed output of a column.
type ResolvedColumn struct {
	ID      string
	Classes grid.ClassList
	Style   grid.Style
	Content string
	Rows    []ResolvedRow
}

// Resolve computes every row and column of l against ctx.
func Resolve(l Layout, ctx grid.Context) Resolved {
	base := ctx.WithGutter(0)
	return Resolved{
		ID:     l.ID,
		Title:  l.Title,
		Prefix: base.ClassPrefix(),
		Rows:   resolveRows(l.Rows, base),
	}
}

func resolveRows(rows []Row, ctx grid.Context) []ResolvedRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]ResolvedRow, 0, len(rows))
	for _, row := range rows {
		result := ctx.Row(row.Spec)
		resolved := ResolvedRow{
			ID:      row.ID,
			Classes: result.Classes,
			Style:   result.Style,
			Flex:    result.Flex,
		}
		for _, col := range row.Columns {
			resolved.Columns = append(resolved.Columns, resolveColumn(col, result.Child, ctx))
		}
		out = append(out, resolved)
	}
	return out
}

// resolveColumn computes col against the row's child context. Nested rows
// start again from the gutter-free base context.
func resolveColumn(col Column, child, base grid.Context) ResolvedColumn {
	result := child.Column(col.Spec)
	return ResolvedColumn{
		ID:      col.ID,
		Classes: result.Classes,
		Style:   result.Style,
		Content: col.Content,
		Rows:    resolveRows(col.Rows, base),
	}
}

// Package terminal previews resolved layouts as bordered boxes in a terminal,
// sized the way a browser would size them at a chosen viewport width.
package terminal

import (
	"context"
	"fmt"
	"html"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-gridkit/pkg/grid"
	"github.com/goliatone/go-gridkit/pkg/layout"
	"github.com/goliatone/go-gridkit/pkg/render"
	"github.com/goliatone/go-gridkit/pkg/stylesheet"
)

// Name is the registry name of the terminal renderer.
const Name = "terminal"

const (
	defaultViewport = 1200
	defaultWidth    = 96
	minBoxWidth     = 4
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

type Option func(*Renderer)

// WithBorder overrides the box border.
func WithBorder(border lipgloss.Border) Option {
	return func(r *Renderer) {
		r.border = border
	}
}

// Renderer draws each row as a line of boxes whose widths follow the
// effective flex-basis of their column.
type Renderer struct {
	border lipgloss.Border
}

// New constructs the terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{border: lipgloss.NormalBorder()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, resolved layout.Resolved, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	viewport := options.Viewport
	if viewport <= 0 {
		viewport = defaultViewport
	}
	width := options.Width
	if width <= 0 {
		width = defaultWidth
	}
	sheet := options.Stylesheet
	if sheet == nil {
		sheet = stylesheet.Generate(stylesheet.WithPrefix(resolved.Prefix))
	}

	p := preview{sheet: sheet, viewport: viewport, border: r.border}
	var blocks []string
	if resolved.Title != "" {
		blocks = append(blocks, lipgloss.NewStyle().Bold(true).Render(resolved.Title))
	}
	blocks = append(blocks, p.rows(resolved.Rows, width)...)
	return []byte(lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"), nil
}

type preview struct {
	sheet    *stylesheet.Sheet
	viewport int
	border   lipgloss.Border
}

// box is a column placed on a line, measured in percent of the row.
type box struct {
	col    layout.ResolvedColumn
	basis  float64
	offset float64
	order  int
	auto   bool
}

func (p preview) rows(rows []layout.ResolvedRow, width int) []string {
	var out []string
	for _, row := range rows {
		out = append(out, p.row(row, width)...)
	}
	return out
}

func (p preview) row(row layout.ResolvedRow, width int) []string {
	lines, justify := p.lines(row)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, p.line(line, width, justify))
	}
	return out
}

// lines places the columns of row and returns them with the row's
// justify-content keyword.
func (p preview) lines(row layout.ResolvedRow) ([][]box, string) {
	computed := p.sheet.Computed(row.Classes, p.viewport).Merge(row.Flex).Merge(row.Style)
	wraps := true
	if v, ok := computed.Get("flex-wrap"); ok && v == "nowrap" {
		wraps = false
	}
	justify, _ := computed.Get("justify-content")
	return splitLines(p.measure(row.Columns), wraps), justify
}

func (p preview) measure(columns []layout.ResolvedColumn) []box {
	boxes := make([]box, 0, len(columns))
	for _, col := range columns {
		computed := p.sheet.Computed(col.Classes, p.viewport).Merge(col.Style)
		if v, _ := computed.Get("display"); v == "none" {
			continue
		}
		b := box{col: col}
		if basis, ok := percentValue(computed, "flex-basis"); ok {
			b.basis = basis
		} else {
			b.auto = true
		}
		b.offset, _ = percentValue(computed, "margin-left")
		if order, ok := computed.Get("order"); ok {
			b.order, _ = strconv.Atoi(order)
		}
		boxes = append(boxes, b)
	}
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].order < boxes[j].order })
	return boxes
}

// splitLines breaks boxes onto lines once their widths pass 100%. Auto sized
// boxes share whatever their line leaves free.
func splitLines(boxes []box, wraps bool) [][]box {
	if !wraps {
		return [][]box{fitAuto(boxes)}
	}
	var (
		lines [][]box
		line  []box
		used  float64
	)
	for _, b := range boxes {
		size := b.basis + b.offset
		if len(line) > 0 && !b.auto && used+size > 100.0001 {
			lines = append(lines, fitAuto(line))
			line, used = nil, 0
		}
		line = append(line, b)
		used += size
	}
	if len(line) > 0 {
		lines = append(lines, fitAuto(line))
	}
	return lines
}

func fitAuto(line []box) []box {
	var (
		fixed float64
		autos int
	)
	for _, b := range line {
		fixed += b.offset
		if b.auto {
			autos++
		} else {
			fixed += b.basis
		}
	}
	free := math.Max(0, 100-fixed)
	if autos > 0 {
		for i := range line {
			if line[i].auto {
				line[i].basis = free / float64(autos)
			}
		}
		return line
	}
	if fixed > 100 {
		// nowrap rows shrink proportionally.
		scale := 100 / fixed
		for i := range line {
			line[i].basis *= scale
			line[i].offset *= scale
		}
	}
	return line
}

func (p preview) line(line []box, width int, justify string) string {
	cells := make([]string, 0, len(line))
	for _, b := range line {
		boxWidth := int(math.Round(b.basis / 100 * float64(width)))
		if boxWidth < minBoxWidth {
			boxWidth = minBoxWidth
		}
		margin := int(math.Round(b.offset / 100 * float64(width)))
		cells = append(cells, p.cell(b.col, boxWidth, margin))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	switch justify {
	case "flex-end":
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, joined)
	case "center":
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, joined)
	default:
		return joined
	}
}

func (p preview) cell(col layout.ResolvedColumn, width, margin int) string {
	inner := width - 2
	parts := []string{label(col)}
	if text := plainText(col.Content); text != "" {
		parts = append(parts, text)
	}
	if len(col.Rows) > 0 {
		parts = append(parts, p.rows(col.Rows, inner)...)
	}
	return lipgloss.NewStyle().
		Border(p.border).
		Width(inner).
		MarginLeft(margin).
		Render(strings.Join(parts, "\n"))
}

func label(col layout.ResolvedColumn) string {
	if col.ID != "" {
		return "#" + col.ID
	}
	if len(col.Classes) > 1 {
		return col.Classes[1]
	}
	if len(col.Classes) == 1 {
		return col.Classes[0]
	}
	return "col"
}

func plainText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(content)))
}

func percentValue(style grid.Style, prop string) (float64, bool) {
	raw, ok := style.Get(prop)
	if !ok || !strings.HasSuffix(raw, "%") {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Describe returns a one line summary of the computed widths of row, useful
// for logs and tests.
func Describe(sheet *stylesheet.Sheet, row layout.ResolvedRow, viewport int) string {
	p := preview{sheet: sheet, viewport: viewport}
	lines, _ := p.lines(row)
	var parts []string
	for _, line := range lines {
		var cells []string
		for _, b := range line {
			cell := fmt.Sprintf("%s=%s", label(b.col), strconv.FormatFloat(b.basis, 'f', -1, 64))
			if b.offset > 0 {
				cell += fmt.Sprintf("+%s", strconv.FormatFloat(b.offset, 'f', -1, 64))
			}
			cells = append(cells, cell)
		}
		parts = append(parts, strings.Join(cells, " "))
	}
	return strings.Join(parts, " | ")
}

package grid

// ColumnSpec holds the properties of a single column.
type ColumnSpec struct {
	// Span is the number of grid units occupied. 0 leaves the width to the
	// stylesheet and emits no span class.
	Span   int
	Offset int
	Pull   int
	Push   int
	// Order is nil when undefined; 0 is a valid order.
	Order      *int
	Responsive map[Breakpoint]Responsive
	// Class lists caller classes appended after the computed tokens.
	Class []string
	// Style wins over computed declarations of the same property.
	Style Style
}

// Result is the presentation output of a column.
type Result struct {
	Classes ClassList
	Style   Style
}

// Column computes the class tokens and inline style of spec. A gutter carried
// by c becomes symmetric horizontal padding.
func (c Context) Column(spec ColumnSpec) Result {
	var (
		classes ClassList
		style   Style
	)

	classes.add(c.class("col"))

	if spec.Span > 0 {
		classes.add(c.class("col", itoa(spec.Span)))
		width := Percent(spec.Span)
		style.Set("flex-basis", width)
		style.Set("flex-grow", "0")
		style.Set("max-width", width)
	}
	if spec.Offset > 0 {
		classes.add(c.class("col", "offset", itoa(spec.Offset)))
	}
	if spec.Pull > 0 {
		classes.add(c.class("col", "pull", itoa(spec.Pull)))
	}
	if spec.Push > 0 {
		classes.add(c.class("col", "push", itoa(spec.Push)))
	}
	if spec.Order != nil {
		classes.add(c.class("col", "order", itoa(*spec.Order)))
		style.Set("order", itoa(*spec.Order))
	}

	for _, bp := range breakpointOrder {
		classes.add(c.responsiveClasses(bp, spec.Responsive[bp])...)
	}

	if c.Gutter > 0 {
		half := Pixels(c.Gutter / 2)
		style.Set("padding-left", half)
		style.Set("padding-right", half)
	}

	classes.addFields(spec.Class)
	style = style.Merge(spec.Style)

	return Result{Classes: classes, Style: style}
}

func (c Context) responsiveClasses(bp Breakpoint, value Responsive) []string {
	name := string(bp)
	switch value.Kind() {
	case ResponsivePlain:
		span, _ := value.Span()
		return []string{c.class("col", name, itoa(span))}
	case ResponsiveDetailed:
		detail, _ := value.Detail()
		var out []string
		if detail.Span != nil {
			out = append(out, c.class("col", name, itoa(*detail.Span)))
		}
		if detail.Offset != nil {
			out = append(out, c.class("col", "offset", name, itoa(*detail.Offset)))
		}
		if detail.Order != nil {
			out = append(out, c.class("col", "order", name, itoa(*detail.Order)))
		}
		if detail.Pull != nil {
			out = append(out, c.class("col", "pull", name, itoa(*detail.Pull)))
		}
		if detail.Push != nil {
			out = append(out, c.class("col", "push", name, itoa(*detail.Push)))
		}
		return out
	default:
		return nil
	}
}

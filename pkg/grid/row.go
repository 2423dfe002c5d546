package grid

// Justify is the main axis distribution of a row.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyEnd          Justify = "end"
	JustifyCenter       Justify = "center"
	JustifySpaceBetween Justify = "space-between"
	JustifySpaceAround  Justify = "space-around"
	JustifySpaceEvenly  Justify = "space-evenly"
)

var justifyContent = map[Justify]string{
	JustifyStart:        "flex-start",
	JustifyEnd:          "flex-end",
	JustifyCenter:       "center",
	JustifySpaceBetween: "space-between",
	JustifySpaceAround:  "space-around",
	JustifySpaceEvenly:  "space-evenly",
}

// JustifyValues lists the supported justify values in declaration order.
func JustifyValues() []Justify {
	return []Justify{
		JustifyStart, JustifyEnd, JustifyCenter,
		JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly,
	}
}

// Valid reports whether j is a known value.
func (j Justify) Valid() bool {
	_, ok := justifyContent[j]
	return ok
}

// FlexValue returns the justify-content keyword for j, or "" when unknown.
func (j Justify) FlexValue() string {
	return justifyContent[j]
}

// Align is the cross axis alignment of a row.
type Align string

const (
	AlignTop    Align = "top"
	AlignMiddle Align = "middle"
	AlignBottom Align = "bottom"
)

var alignItems = map[Align]string{
	AlignTop:    "flex-start",
	AlignMiddle: "center",
	AlignBottom: "flex-end",
}

// AlignValues lists the supported align values in declaration order.
func AlignValues() []Align {
	return []Align{AlignTop, AlignMiddle, AlignBottom}
}

// Valid reports whether a is a known value.
func (a Align) Valid() bool {
	_, ok := alignItems[a]
	return ok
}

// FlexValue returns the align-items keyword for a, or "" when unknown.
func (a Align) FlexValue() string {
	return alignItems[a]
}

// RowSpec holds the properties of a row.
type RowSpec struct {
	Gutter  float64
	Justify Justify
	Align   Align
	// Wrap is nil when unset, which wraps.
	Wrap  *bool
	Class []string
	Style Style
}

// Bool returns a pointer to v, for filling RowSpec.Wrap.
func Bool(v bool) *bool {
	return &v
}

// Wraps reports whether the row lets its columns wrap.
func (s RowSpec) Wraps() bool {
	return s.Wrap == nil || *s.Wrap
}

// RowResult is the presentation output of a row.
type RowResult struct {
	Classes ClassList
	// Style is the inline style of the row element.
	Style Style
	// Flex holds the container declarations the row classes stand for.
	Flex Style
	// Child is the context direct columns of this row compute against.
	Child Context
}

// Computed merges the class driven flex declarations with the inline style,
// inline winning.
func (r RowResult) Computed() Style {
	return r.Flex.Merge(r.Style)
}

// Row computes the classes and style of spec along with the child context
// carrying its gutter.
func (c Context) Row(spec RowSpec) RowResult {
	var (
		classes ClassList
		style   Style
		flex    Style
	)

	classes.add(c.class("row"))
	flex.Set("display", "flex")

	if spec.Wraps() {
		flex.Set("flex-wrap", "wrap")
	} else {
		flex.Set("flex-wrap", "nowrap")
	}

	if spec.Justify != "" {
		classes.add(c.class("row", string(spec.Justify)))
		if value := spec.Justify.FlexValue(); value != "" {
			flex.Set("justify-content", value)
		}
	}
	if spec.Align != "" {
		classes.add(c.class("row", string(spec.Align)))
		if value := spec.Align.FlexValue(); value != "" {
			flex.Set("align-items", value)
		}
	}
	if !spec.Wraps() {
		classes.add(c.class("row", "no", "wrap"))
	}

	if spec.Gutter > 0 {
		margin := Pixels(-spec.Gutter / 2)
		style.Set("margin-left", margin)
		style.Set("margin-right", margin)
	}

	classes.addFields(spec.Class)
	style = style.Merge(spec.Style)

	return RowResult{
		Classes: classes,
		Style:   style,
		Flex:    flex,
		Child:   c.WithGutter(spec.Gutter),
	}
}

package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// columnFile is the document shape of a column: breakpoints sit next to the
// base properties, as they do on the component.
type columnFile struct {
	Span   int        `json:"span" yaml:"span"`
	Offset int        `json:"offset" yaml:"offset"`
	Order  *int       `json:"order" yaml:"order"`
	Pull   int        `json:"pull" yaml:"pull"`
	Push   int        `json:"push" yaml:"push"`
	XS     Responsive `json:"xs" yaml:"xs"`
	SM     Responsive `json:"sm" yaml:"sm"`
	MD     Responsive `json:"md" yaml:"md"`
	LG     Responsive `json:"lg" yaml:"lg"`
	XL     Responsive `json:"xl" yaml:"xl"`
	XXL    Responsive `json:"xxl" yaml:"xxl"`
	Class  any        `json:"class" yaml:"class"`
	Style  Style      `json:"style" yaml:"style"`
}

func (f columnFile) spec() ColumnSpec {
	spec := ColumnSpec{
		Span:   f.Span,
		Offset: f.Offset,
		Order:  f.Order,
		Pull:   f.Pull,
		Push:   f.Push,
		Class:  toStrings(f.Class),
		Style:  f.Style,
	}
	values := map[Breakpoint]Responsive{
		BreakpointXS:  f.XS,
		BreakpointSM:  f.SM,
		BreakpointMD:  f.MD,
		BreakpointLG:  f.LG,
		BreakpointXL:  f.XL,
		BreakpointXXL: f.XXL,
	}
	for _, bp := range breakpointOrder {
		if values[bp].IsZero() {
			continue
		}
		if spec.Responsive == nil {
			spec.Responsive = make(map[Breakpoint]Responsive)
		}
		spec.Responsive[bp] = values[bp]
	}
	return spec
}

// UnmarshalJSON decodes a column from its document shape.
func (s *ColumnSpec) UnmarshalJSON(data []byte) error {
	var file columnFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("grid: decode column: %w", err)
	}
	*s = file.spec()
	return nil
}

// UnmarshalYAML decodes a column from its document shape.
func (s *ColumnSpec) UnmarshalYAML(node *yaml.Node) error {
	var file columnFile
	if err := node.Decode(&file); err != nil {
		return fmt.Errorf("grid: decode column: %w", err)
	}
	*s = file.spec()
	return nil
}

type rowFile struct {
	Gutter  float64 `json:"gutter" yaml:"gutter"`
	Justify Justify `json:"justify" yaml:"justify"`
	Align   Align   `json:"align" yaml:"align"`
	Wrap    *bool   `json:"wrap" yaml:"wrap"`
	Class   any     `json:"class" yaml:"class"`
	Style   Style   `json:"style" yaml:"style"`
}

func (f rowFile) spec() RowSpec {
	return RowSpec{
		Gutter:  f.Gutter,
		Justify: f.Justify,
		Align:   f.Align,
		Wrap:    f.Wrap,
		Class:   toStrings(f.Class),
		Style:   f.Style,
	}
}

// UnmarshalJSON decodes a row from its document shape.
func (s *RowSpec) UnmarshalJSON(data []byte) error {
	var file rowFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("grid: decode row: %w", err)
	}
	*s = file.spec()
	return nil
}

// UnmarshalYAML decodes a row from its document shape.
func (s *RowSpec) UnmarshalYAML(node *yaml.Node) error {
	var file rowFile
	if err := node.Decode(&file); err != nil {
		return fmt.Errorf("grid: decode row: %w", err)
	}
	*s = file.spec()
	return nil
}

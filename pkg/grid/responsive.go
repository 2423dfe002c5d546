package grid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResponsiveKind tags the variant held by a Responsive value.
type ResponsiveKind uint8

const (
	// ResponsiveUnset means the breakpoint contributes nothing.
	ResponsiveUnset ResponsiveKind = iota
	// ResponsivePlain is a bare number, read as the span at that breakpoint.
	ResponsivePlain
	// ResponsiveDetailed carries any subset of span/offset/order/pull/push.
	ResponsiveDetailed
)

// Detail holds the per-breakpoint sub-properties. Nil fields are absent and
// emit no class.
type Detail struct {
	Span   *int `json:"span,omitempty" yaml:"span,omitempty"`
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	Order  *int `json:"order,omitempty" yaml:"order,omitempty"`
	Pull   *int `json:"pull,omitempty" yaml:"pull,omitempty"`
	Push   *int `json:"push,omitempty" yaml:"push,omitempty"`
}

// Responsive is the value a column carries for one breakpoint: either a plain
// span or a Detail.
type Responsive struct {
	kind   ResponsiveKind
	span   int
	detail Detail
}

// Plain builds a span-only responsive value.
func Plain(span int) Responsive {
	return Responsive{kind: ResponsivePlain, span: span}
}

// Detailed builds a responsive value from individual sub-properties.
func Detailed(detail Detail) Responsive {
	return Responsive{kind: ResponsiveDetailed, detail: detail}
}

// Int returns a pointer to v, for filling Detail and ColumnSpec.Order.
func Int(v int) *int {
	return &v
}

// Kind reports which variant r holds.
func (r Responsive) Kind() ResponsiveKind {
	return r.kind
}

// Span returns the plain span when r is a Plain value.
func (r Responsive) Span() (int, bool) {
	return r.span, r.kind == ResponsivePlain
}

// Detail returns the sub-properties when r is a Detailed value.
func (r Responsive) Detail() (Detail, bool) {
	return r.detail, r.kind == ResponsiveDetailed
}

// IsZero reports whether r is unset.
func (r Responsive) IsZero() bool {
	return r.kind == ResponsiveUnset
}

// MarshalJSON writes a number for Plain values and an object for Detailed ones.
func (r Responsive) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case ResponsivePlain:
		return []byte(strconv.Itoa(r.span)), nil
	case ResponsiveDetailed:
		return json.Marshal(r.detail)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON branches on the token shape: numbers become Plain, objects
// become Detailed and null leaves the value unset.
func (r *Responsive) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*r = Responsive{}
		return nil
	case trimmed[0] == '{':
		var detail Detail
		if err := json.Unmarshal(trimmed, &detail); err != nil {
			return fmt.Errorf("grid: decode responsive object: %w", err)
		}
		*r = Detailed(detail)
		return nil
	default:
		var raw any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("grid: decode responsive value: %w", err)
		}
		span, ok := toInt(raw)
		if !ok {
			return fmt.Errorf("grid: responsive value must be a number or an object, got %s", string(trimmed))
		}
		*r = Plain(span)
		return nil
	}
}

// UnmarshalYAML is the yaml.v3 counterpart of UnmarshalJSON.
func (r *Responsive) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || strings.TrimSpace(node.Value) == "" {
			*r = Responsive{}
			return nil
		}
		span, ok := toInt(node.Value)
		if !ok {
			return fmt.Errorf("grid: responsive value %q must be a number or a mapping (line %d)", node.Value, node.Line)
		}
		*r = Plain(span)
		return nil
	case yaml.MappingNode:
		var detail Detail
		if err := node.Decode(&detail); err != nil {
			return fmt.Errorf("grid: decode responsive mapping (line %d): %w", node.Line, err)
		}
		*r = Detailed(detail)
		return nil
	default:
		return fmt.Errorf("grid: responsive value must be a number or a mapping (line %d)", node.Line)
	}
}

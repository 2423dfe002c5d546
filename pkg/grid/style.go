package grid

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"gopkg.in/yaml.v3"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of inline declarations. Setting a property that is
// already present replaces its value in place so the original order is kept.
type Style []Declaration

// ParseStyle reads an inline style attribute ("a: b; c: d").
func ParseStyle(raw string) (Style, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	// The last declaration loses its value without a terminating semicolon.
	if !strings.HasSuffix(raw, ";") {
		raw += ";"
	}
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil, fmt.Errorf("grid: parse style: %w", err)
	}
	var out Style
	for _, decl := range decls {
		if decl == nil {
			continue
		}
		value := decl.Value
		if decl.Important {
			value += " !important"
		}
		out.Set(decl.Property, value)
	}
	return out, nil
}

// Get returns the value stored for prop.
func (s Style) Get(prop string) (string, bool) {
	prop = normaliseProperty(prop)
	for _, decl := range s {
		if decl.Property == prop {
			return decl.Value, true
		}
	}
	return "", false
}

// Has reports whether prop is declared.
func (s Style) Has(prop string) bool {
	_, ok := s.Get(prop)
	return ok
}

// Set stores value for prop. Empty properties are ignored.
func (s *Style) Set(prop, value string) {
	prop = normaliseProperty(prop)
	if prop == "" {
		return
	}
	value = strings.TrimSpace(value)
	for i := range *s {
		if (*s)[i].Property == prop {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Declaration{Property: prop, Value: value})
}

// Merge returns a copy of s with every declaration of over applied on top.
func (s Style) Merge(over Style) Style {
	out := make(Style, 0, len(s)+len(over))
	out = append(out, s...)
	for _, decl := range over {
		out.Set(decl.Property, decl.Value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// String renders s as an inline style attribute value.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, decl := range s {
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON encodes the style as its attribute string.
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either an attribute string or an object of
// property/value pairs.
func (s *Style) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		parsed, err := ParseStyle(raw)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("grid: style must be a string or an object: %w", err)
	}
	*s = styleFromMap(fields)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for yaml.v3 documents.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseStyle(node.Value)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case yaml.MappingNode:
		var out Style
		for i := 0; i+1 < len(node.Content); i += 2 {
			out.Set(node.Content[i].Value, node.Content[i+1].Value)
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("grid: style must be a string or a mapping (line %d)", node.Line)
	}
}

func styleFromMap(fields map[string]any) Style {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var out Style
	for _, key := range keys {
		out.Set(key, fmt.Sprint(fields[key]))
	}
	return out
}

func normaliseProperty(prop string) string {
	return strings.ToLower(strings.TrimSpace(prop))
}

// Percent converts a number of grid units into a percentage of the row,
// rounded to four decimals ("50%", "33.3333%").
func Percent(units int) string {
	value := float64(units) / Columns * 100
	value = math.Round(value*10000) / 10000
	return formatNumber(value) + "%"
}

// Pixels formats a length in px without trailing zeros ("10px", "7.5px").
func Pixels(value float64) string {
	return formatNumber(value) + "px"
}

func formatNumber(value float64) string {
	if value == 0 {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

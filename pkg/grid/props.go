package grid

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnFromProps builds a ColumnSpec from a loosely typed property map such as
// template data or decoded JSON. Values that are not integral numbers are
// ignored rather than reported.
func ColumnFromProps(props map[string]any) ColumnSpec {
	var spec ColumnSpec
	if len(props) == 0 {
		return spec
	}

	if v, ok := toInt(props["span"]); ok {
		spec.Span = v
	}
	if v, ok := toInt(props["offset"]); ok {
		spec.Offset = v
	}
	if v, ok := toInt(props["pull"]); ok {
		spec.Pull = v
	}
	if v, ok := toInt(props["push"]); ok {
		spec.Push = v
	}
	if v, ok := toInt(props["order"]); ok {
		spec.Order = Int(v)
	}

	for _, bp := range breakpointOrder {
		value, ok := props[string(bp)]
		if !ok {
			continue
		}
		if responsive, ok := responsiveFromAny(value); ok {
			if spec.Responsive == nil {
				spec.Responsive = make(map[Breakpoint]Responsive)
			}
			spec.Responsive[bp] = responsive
		}
	}

	spec.Class = toStrings(props["class"])
	spec.Style = toStyle(props["style"])
	return spec
}

// RowFromProps builds a RowSpec from a loosely typed property map.
func RowFromProps(props map[string]any) RowSpec {
	var spec RowSpec
	if len(props) == 0 {
		return spec
	}
	if v, ok := toFloat(props["gutter"]); ok {
		spec.Gutter = v
	}
	if v, ok := props["justify"].(string); ok {
		spec.Justify = Justify(strings.TrimSpace(v))
	}
	if v, ok := props["align"].(string); ok {
		spec.Align = Align(strings.TrimSpace(v))
	}
	if v, ok := toBool(props["wrap"]); ok {
		spec.Wrap = &v
	}
	spec.Class = toStrings(props["class"])
	spec.Style = toStyle(props["style"])
	return spec
}

func responsiveFromAny(value any) (Responsive, bool) {
	if span, ok := toInt(value); ok {
		return Plain(span), true
	}
	fields := toAnyMap(value)
	if fields == nil {
		return Responsive{}, false
	}
	var detail Detail
	if v, ok := toInt(fields["span"]); ok {
		detail.Span = Int(v)
	}
	if v, ok := toInt(fields["offset"]); ok {
		detail.Offset = Int(v)
	}
	if v, ok := toInt(fields["order"]); ok {
		detail.Order = Int(v)
	}
	if v, ok := toInt(fields["pull"]); ok {
		detail.Pull = Int(v)
	}
	if v, ok := toInt(fields["push"]); ok {
		detail.Push = Int(v)
	}
	return Detailed(detail), true
}

func toAnyMap(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case map[string]int:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = val
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = val
		}
		return out
	}
	return nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int64ToInt(v)
	case uint:
		if uint64(v) <= math.MaxInt {
			return int(v), true
		}
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int64ToInt(int64(v))
	case uint64:
		if v <= math.MaxInt {
			return int(v), true
		}
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int64ToInt(n)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
	}
	return 0, false
}

func int64ToInt(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// floatToInt accepts integral values inside the int range. The upper bound
// is exclusive because float64(math.MaxInt) rounds up to 2^63.
func floatToInt(v float64) (int, bool) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < math.MinInt || v >= math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	if n, ok := toInt(value); ok {
		return float64(n), true
	}
	return 0, false
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, true
		}
	}
	return false, false
}

func toStrings(value any) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

func toStyle(value any) Style {
	switch v := value.(type) {
	case string:
		style, err := ParseStyle(v)
		if err != nil {
			return nil
		}
		return style
	case Style:
		return v
	}
	if fields := toAnyMap(value); fields != nil {
		return styleFromMap(fields)
	}
	return nil
}

package grid

import "strings"

// Columns is the number of grid units a row is divided into. It applies to the
// base span and to every breakpoint.
const Columns = 24

// DefaultPrefix is the class namespace used when a Context does not name one.
const DefaultPrefix = "w"

// Breakpoint names a responsive threshold.
type Breakpoint string

const (
	BreakpointXS  Breakpoint = "xs"
	BreakpointSM  Breakpoint = "sm"
	BreakpointMD  Breakpoint = "md"
	BreakpointLG  Breakpoint = "lg"
	BreakpointXL  Breakpoint = "xl"
	BreakpointXXL Breakpoint = "xxl"
)

var breakpointOrder = []Breakpoint{
	BreakpointXS,
	BreakpointSM,
	BreakpointMD,
	BreakpointLG,
	BreakpointXL,
	BreakpointXXL,
}

var defaultMinWidths = map[Breakpoint]int{
	BreakpointXS:  0,
	BreakpointSM:  576,
	BreakpointMD:  768,
	BreakpointLG:  992,
	BreakpointXL:  1200,
	BreakpointXXL: 1600,
}

// Breakpoints returns every breakpoint from narrowest to widest.
func Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), breakpointOrder...)
}

// ParseBreakpoint normalises raw and reports whether it names a breakpoint.
func ParseBreakpoint(raw string) (Breakpoint, bool) {
	bp := Breakpoint(strings.ToLower(strings.TrimSpace(raw)))
	return bp, bp.Valid()
}

// Valid reports whether b is one of the six known breakpoints.
func (b Breakpoint) Valid() bool {
	_, ok := defaultMinWidths[b]
	return ok
}

// MinWidth returns the default viewport width (px) at which b starts to apply.
func (b Breakpoint) MinWidth() int {
	return defaultMinWidths[b]
}

func (b Breakpoint) String() string {
	return string(b)
}

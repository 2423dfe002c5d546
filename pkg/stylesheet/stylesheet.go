package stylesheet

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"

	"github.com/goliatone/go-gridkit/pkg/grid"
)

// Option customises the generated sheet.
type Option func(*config)

type config struct {
	prefix    string
	minWidths map[grid.Breakpoint]int
}

// WithPrefix overrides the class prefix (defaults to grid.DefaultPrefix).
func WithPrefix(prefix string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			cfg.prefix = trimmed
		}
	}
}

// WithMinWidth overrides the viewport width at which bp starts to apply.
func WithMinWidth(bp grid.Breakpoint, px int) Option {
	return func(cfg *config) {
		if !bp.Valid() || px < 0 {
			return
		}
		cfg.minWidths[bp] = px
	}
}

// Rule is a single class selector, optionally scoped to a min-width media
// query (MinWidth 0 applies everywhere).
type Rule struct {
	Class    string
	MinWidth int
	Style    grid.Style
}

// Sheet is the ordered rule set for one prefix.
type Sheet struct {
	prefix    string
	minWidths map[grid.Breakpoint]int
	rules     []Rule
}

// Generate builds the full rule set.
func Generate(options ...Option) *Sheet {
	cfg := config{
		prefix:    grid.DefaultPrefix,
		minWidths: make(map[grid.Breakpoint]int),
	}
	for _, bp := range grid.Breakpoints() {
		cfg.minWidths[bp] = bp.MinWidth()
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	sheet := &Sheet{prefix: cfg.prefix, minWidths: cfg.minWidths}
	sheet.rules = append(sheet.rules, rowRules(cfg.prefix)...)
	sheet.rules = append(sheet.rules, Rule{
		Class: cfg.prefix + "-col",
		Style: grid.Style{
			{Property: "position", Value: "relative"},
			{Property: "max-width", Value: "100%"},
			{Property: "min-height", Value: "1px"},
		},
	})
	sheet.rules = append(sheet.rules, columnRules(cfg.prefix, "", 0)...)
	for _, bp := range grid.Breakpoints() {
		sheet.rules = append(sheet.rules, columnRules(cfg.prefix, string(bp), cfg.minWidths[bp])...)
	}
	return sheet
}

// Prefix returns the class prefix the sheet was generated for.
func (s *Sheet) Prefix() string {
	return s.prefix
}

// MinWidth returns the configured min width of bp.
func (s *Sheet) MinWidth(bp grid.Breakpoint) int {
	return s.minWidths[bp]
}

// Rules returns a copy of the rule list in cascade order.
func (s *Sheet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Lookup returns every rule targeting class, in cascade order.
func (s *Sheet) Lookup(class string) []Rule {
	var out []Rule
	for _, rule := range s.rules {
		if rule.Class == class {
			out = append(out, rule)
		}
	}
	return out
}

// Computed returns the declarations that apply to an element carrying classes
// when the viewport is viewport px wide. Later rules win, as in the cascade.
func (s *Sheet) Computed(classes grid.ClassList, viewport int) grid.Style {
	var out grid.Style
	for _, rule := range s.rules {
		if rule.MinWidth > viewport || !classes.Has(rule.Class) {
			continue
		}
		out = out.Merge(rule.Style)
	}
	return out
}

// CSS converts the sheet into a douceur stylesheet. Rules sharing a min width
// are grouped under one media query.
func (s *Sheet) CSS() *css.Stylesheet {
	out := css.NewStylesheet()
	media := make(map[int]*css.Rule)
	for _, rule := range s.rules {
		qualified := &css.Rule{
			Kind:         css.QualifiedRule,
			Prelude:      "." + rule.Class,
			Selectors:    []string{"." + rule.Class},
			Declarations: declarations(rule.Style),
		}
		if rule.MinWidth <= 0 {
			out.Rules = append(out.Rules, qualified)
			continue
		}
		group, ok := media[rule.MinWidth]
		if !ok {
			group = &css.Rule{
				Kind:    css.AtRule,
				Name:    "@media",
				Prelude: fmt.Sprintf("(min-width: %dpx)", rule.MinWidth),
			}
			media[rule.MinWidth] = group
			out.Rules = append(out.Rules, group)
		}
		qualified.EmbedLevel = 1
		group.Rules = append(group.Rules, qualified)
	}
	return out
}

// String renders the sheet as CSS text.
func (s *Sheet) String() string {
	return s.CSS().String()
}

func declarations(style grid.Style) []*css.Declaration {
	out := make([]*css.Declaration, 0, len(style))
	for _, decl := range style {
		out = append(out, &css.Declaration{Property: decl.Property, Value: decl.Value})
	}
	return out
}

func rowRules(prefix string) []Rule {
	rules := []Rule{
		{
			Class: prefix + "-row",
			Style: grid.Style{
				{Property: "display", Value: "flex"},
				{Property: "flex-wrap", Value: "wrap"},
			},
		},
		{
			Class: prefix + "-row-no-wrap",
			Style: grid.Style{{Property: "flex-wrap", Value: "nowrap"}},
		},
	}
	for _, justify := range grid.JustifyValues() {
		rules = append(rules, Rule{
			Class: prefix + "-row-" + string(justify),
			Style: grid.Style{{Property: "justify-content", Value: justify.FlexValue()}},
		})
	}
	for _, align := range grid.AlignValues() {
		rules = append(rules, Rule{
			Class: prefix + "-row-" + string(align),
			Style: grid.Style{{Property: "align-items", Value: align.FlexValue()}},
		})
	}
	return rules
}

// columnRules emits the span/offset/pull/push/order families, scoped to a
// breakpoint when bp is set.
func columnRules(prefix, bp string, minWidth int) []Rule {
	name := func(kind string, n int) string {
		parts := []string{prefix, "col"}
		if kind != "" {
			parts = append(parts, kind)
		}
		if bp != "" {
			parts = append(parts, bp)
		}
		parts = append(parts, fmt.Sprint(n))
		return strings.Join(parts, "-")
	}

	var rules []Rule
	for n := 0; n <= grid.Columns; n++ {
		width := grid.Percent(n)

		span := grid.Style{{Property: "display", Value: "none"}}
		if n > 0 {
			span = grid.Style{
				{Property: "display", Value: "block"},
				{Property: "flex-basis", Value: width},
				{Property: "flex-grow", Value: "0"},
				{Property: "flex-shrink", Value: "0"},
				{Property: "max-width", Value: width},
			}
		}
		pull, push := "auto", "auto"
		if n > 0 {
			pull, push = width, width
		}

		rules = append(rules,
			Rule{Class: name("", n), MinWidth: minWidth, Style: span},
			Rule{Class: name("offset", n), MinWidth: minWidth, Style: grid.Style{{Property: "margin-left", Value: width}}},
			Rule{Class: name("pull", n), MinWidth: minWidth, Style: grid.Style{{Property: "right", Value: pull}}},
			Rule{Class: name("push", n), MinWidth: minWidth, Style: grid.Style{{Property: "left", Value: push}}},
			Rule{Class: name("order", n), MinWidth: minWidth, Style: grid.Style{{Property: "order", Value: fmt.Sprint(n)}}},
		)
	}
	return rules
}

package grid

import "strings"

// ClassList is an ordered set of class tokens.
type ClassList []string

// Has reports whether token is part of the list.
func (c ClassList) Has(token string) bool {
	for _, existing := range c {
		if existing == token {
			return true
		}
	}
	return false
}

// String joins the tokens for use in a class attribute.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}

func (c *ClassList) add(tokens ...string) {
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" || c.Has(token) {
			continue
		}
		*c = append(*c, token)
	}
}

// addFields appends caller supplied classes, splitting on whitespace.
func (c *ClassList) addFields(values []string) {
	for _, value := range values {
		c.add(strings.Fields(value)...)
	}
}

// Package stylesheet generates the CSS rules behind the grid class vocabulary
// and answers which of them apply to an element at a given viewport width.
package stylesheet

// Package grid maps declarative row and column properties onto the class
// tokens and inline style declarations of a 24 column flexbox grid.
//
// Everything here is a pure function of its inputs. A Row produces its own
// classes and style plus a child Context carrying the gutter; columns rendered
// directly inside that row compute against the child Context so the row's
// negative margin and the columns' padding cancel out at the outer edges.
//
// Base and breakpoint classes are additive. When a column sets span 12 and
// md span 6 both tokens are emitted and precedence is left to the stylesheet.
package grid

// Package graphio reads and writes graph.Graph values in two plain-text
// formats.
//
// Adjacency format (FormatAdjacency), one line per tail node:
//
//	1	2,4	3,5
//	2	3,-2
//	3
//
// The first field is the tail id; every following field is "head,weight".
// Fields are separated by tabs or spaces. The node count is either given by
// the caller or, when 0, taken from the largest id that appears.
//
// Edge-list format (FormatEdgeList), a header "N M" followed by M edges:
//
//	3 3
//	1 2 4
//	2 3 -2
//	1 3 5
//
// In both formats blank lines and lines starting with '#' are ignored.
// Syntax problems are reported as ErrSyntax with the 1-based line number;
// ids outside [1, N] as graph.ErrInvalidNode, also with the line number.
// Node counts and inferred ids above MaxNodes fail with graph.ErrTooManyNodes
// before anything is allocated.
package graphio

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/graph"
)

// maxLineBytes bounds a single input line; adjacency lines of dense nodes
// get long.
const maxLineBytes = 16 << 20

// MaxNodes is the largest node count the readers accept, whether announced by
// an edge-list header, passed as n, or inferred from the largest adjacency id.
// The graph is allocated up front, so the bound keeps a one-line file from
// demanding gigabytes. Larger graphs can still be built with graph.New.
const MaxNodes = 1 << 24

// Read dispatches to ReadAdjacency or ReadEdgeList. n is only used by
// FormatAdjacency.
func Read(r io.Reader, format Format, n int) (*graph.Graph, error) {
	switch format {
	case FormatAdjacency:
		return ReadAdjacency(r, n)
	case FormatEdgeList:
		return ReadEdgeList(r)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// ReadAdjacency parses the adjacency format. With n > 0 every id must lie in
// [1, n]; with n == 0 the node count is the largest id seen.
// Complexity: O(V + E) time and space.
func ReadAdjacency(r io.Reader, n int) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graphio: %w: %d", graph.ErrNegativeNodeCount, n)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("graphio: %w: N=%d, max %d", graph.ErrTooManyNodes, n, MaxNodes)
	}

	var (
		edges  []graph.Edge
		maxID  int
		lineNo int
	)
	sc := newScanner(r)
	for sc.Scan() {
		lineNo++
		fields, skip := tokenize(sc.Text())
		if skip {
			continue
		}

		tail, err := parseID(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		if err = checkID(tail, n, lineNo); err != nil {
			return nil, err
		}
		maxID = max(maxID, tail)

		for _, f := range fields[1:] {
			head, ws, ok := strings.Cut(f, ",")
			if !ok {
				return nil, fmt.Errorf("%w: line %d: %q is not head,weight", ErrSyntax, lineNo, f)
			}
			to, err := parseID(head, lineNo)
			if err != nil {
				return nil, err
			}
			if err = checkID(to, n, lineNo); err != nil {
				return nil, err
			}
			w, err := parseWeight(ws, lineNo)
			if err != nil {
				return nil, err
			}
			maxID = max(maxID, to)
			edges = append(edges, graph.Edge{From: tail, To: to, Weight: w})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	if n == 0 {
		n = maxID
	}

	return graph.FromEdges(n, edges)
}

// ReadEdgeList parses the edge-list format.
// Complexity: O(V + E) time and space.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	var (
		g      *graph.Graph
		want   int
		got    int
		lineNo int
	)
	sc := newScanner(r)
	for sc.Scan() {
		lineNo++
		fields, skip := tokenize(sc.Text())
		if skip {
			continue
		}

		// header
		if g == nil {
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: header must be \"N M\"", ErrSyntax, lineNo)
			}
			n, err := parseCount(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			if want, err = parseCount(fields[1], lineNo); err != nil {
				return nil, err
			}
			if n > MaxNodes {
				return nil, fmt.Errorf("graphio: line %d: %w: N=%d, max %d", lineNo, graph.ErrTooManyNodes, n, MaxNodes)
			}
			if g, err = graph.New(n); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: edge must be \"u v w\", got %d fields", ErrSyntax, lineNo, len(fields))
		}
		u, err := parseID(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseID(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		w, err := parseWeight(fields[2], lineNo)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
		got++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	if g == nil {
		return nil, fmt.Errorf("%w: missing \"N M\" header", ErrSyntax)
	}
	if got != want {
		return nil, fmt.Errorf("%w: header says %d, read %d", ErrEdgeCount, want, got)
	}

	return g, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}

// tokenize splits a line on whitespace; skip is true for blank and comment lines.
func tokenize(line string) (fields []string, skip bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, true
	}

	return strings.Fields(line), false
}

func parseID(s string, lineNo int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: node id %q: %w", ErrSyntax, lineNo, s, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("graphio: line %d: %w: id %d", lineNo, graph.ErrInvalidNode, v)
	}

	return v, nil
}

// checkID bounds an adjacency id by n when n > 0, and by MaxNodes otherwise.
func checkID(v, n, lineNo int) error {
	if n > 0 && v > n {
		return fmt.Errorf("graphio: line %d: %w: id %d with N=%d", lineNo, graph.ErrInvalidNode, v, n)
	}
	if v > MaxNodes {
		return fmt.Errorf("graphio: line %d: %w: id %d, max %d", lineNo, graph.ErrTooManyNodes, v, MaxNodes)
	}

	return nil
}

func parseCount(s string, lineNo int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: line %d: count %q must be a non-negative integer", ErrSyntax, lineNo, s)
	}

	return v, nil
}

func parseWeight(s string, lineNo int) (int64, error) {
	w, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: weight %q: %w", ErrSyntax, lineNo, s, err)
	}
	if w == graph.Unreachable {
		return 0, fmt.Errorf("%w: line %d: weight %d is reserved", ErrSyntax, lineNo, w)
	}

	return w, nil
}

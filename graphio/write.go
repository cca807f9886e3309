package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/shortpath/graph"
)

// Write dispatches to WriteAdjacency or WriteEdgeList.
func Write(w io.Writer, format Format, g *graph.Graph) error {
	switch format {
	case FormatAdjacency:
		return WriteAdjacency(w, g)
	case FormatEdgeList:
		return WriteEdgeList(w, g)
	}

	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// WriteAdjacency writes one tab-separated line per node, nodes without
// outgoing edges included, so ReadAdjacency(r, 0) recovers N exactly.
func WriteAdjacency(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return graph.ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for v := 1; v <= g.NodeCount(); v++ {
		out, err := g.EdgesFrom(v)
		if err != nil {
			return err
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		for _, e := range out {
			buf = append(buf, '\t')
			buf = strconv.AppendInt(buf, int64(e.To), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, e.Weight, 10)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteEdgeList writes the "N M" header and one "u v w" line per edge in
// graph.Edges order.
func WriteEdgeList(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return graph.ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}

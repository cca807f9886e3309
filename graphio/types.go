package graphio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the readers.
var (
	// ErrSyntax indicates a malformed line. The wrapping error names the line.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrEdgeCount indicates an edge-list body whose number of edges differs
	// from the M announced in its header.
	ErrEdgeCount = errors.New("graphio: edge count does not match header")

	// ErrUnknownFormat indicates a format name ParseFormat does not know.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format selects one of the supported text layouts.
type Format int

const (
	// FormatAdjacency is "tail head,weight head,weight ..." per line.
	FormatAdjacency Format = iota
	// FormatEdgeList is an "N M" header followed by "u v w" lines.
	FormatEdgeList
)

var formatNames = map[Format]string{
	FormatAdjacency: "adjacency",
	FormatEdgeList:  "edgelist",
}

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a case-insensitive name to a Format.
// "adj" and "edges" are accepted as short forms.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "adjacency", "adj":
		return FormatAdjacency, nil
	case "edgelist", "edge-list", "edges":
		return FormatEdgeList, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

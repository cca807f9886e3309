package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/johnson"
)

// Fixed output strings.
const (
	unreachableText   = "unreachable"
	matrixUnreachable = "inf"
	negativeCycleText = "negative cycle detected"
)

func (c *CLI) dijkstraCommand() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "dijkstra <graph-file>",
		Short: "Single-source shortest paths, non-negative weights only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}

			src := c.cfg.Source
			opts := []dijkstra.Option{dijkstra.Source(src)}
			if target > 0 {
				opts = append(opts, dijkstra.WithReturnPath())
			}

			p := newProgress(c.Logger)
			dist, prev, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}
			p.done("dijkstra finished", "source", src)

			out := cmd.OutOrStdout()
			if err = writeDistances(out, dist); err != nil {
				return err
			}
			if target == 0 {
				return nil
			}

			path, err := dijkstra.PathTo(prev, src, target)
			switch {
			case errors.Is(err, dijkstra.ErrNoPath):
				_, err = fmt.Fprintf(out, "path %d→%d: none\n", src, target)
				return err
			case err != nil:
				return err
			}
			_, err = fmt.Fprintf(out, "path %d→%d: %s\n", src, target, joinInts(path))

			return err
		},
	}
	cmd.Flags().Int(flagSource, DefaultConfig().Source, "source node")
	cmd.Flags().IntVar(&target, "target", 0, "also print one shortest path to this node")

	return cmd
}

func (c *CLI) bellmanFordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bellman-ford <graph-file>",
		Aliases: []string{"bf"},
		Short:   "Single-source shortest paths with negative weights and cycle detection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			dist, err := bellmanford.ShortestPaths(g, c.cfg.Source)
			out := cmd.OutOrStdout()
			if errors.Is(err, bellmanford.ErrNegativeCycle) {
				c.Logger.Warn("negative cycle reachable from source", "source", c.cfg.Source)
				_, err = fmt.Fprintln(out, negativeCycleText)
				return err
			}
			if err != nil {
				return err
			}
			p.done("bellman-ford finished", "source", c.cfg.Source)

			if err = writeDistances(out, dist); err != nil {
				return err
			}
			if v, d, ok := dist.Min(); ok {
				_, err = fmt.Fprintf(out, "shortest: %d (node %d)\n", d, v)
			}

			return err
		},
	}
	cmd.Flags().Int(flagSource, DefaultConfig().Source, "source node")

	return cmd
}

func (c *CLI) johnsonCommand() *cobra.Command {
	var matrix bool

	cmd := &cobra.Command{
		Use:   "johnson <graph-file>",
		Short: "All-pairs shortest paths; prints the globally shortest pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			if err = cmd.Context().Err(); err != nil {
				return err
			}

			workers := c.cfg.workers()
			c.Logger.Debug("starting johnson", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "workers", workers)
			p := newProgress(c.Logger)
			res, err := johnson.AllPairs(g, johnson.WithWorkers(workers))
			out := cmd.OutOrStdout()
			if errors.Is(err, johnson.ErrNegativeCycle) {
				c.Logger.Warn("graph has a negative cycle")
				_, err = fmt.Fprintln(out, negativeCycleText)
				return err
			}
			if err != nil {
				return err
			}
			p.done("johnson finished", "workers", workers)

			if matrix {
				if err = writeMatrix(out, res); err != nil {
					return err
				}
			}
			s, t, d, ok := res.Shortest()
			if !ok {
				_, err = fmt.Fprintln(out, "empty graph")
				return err
			}
			_, err = fmt.Fprintf(out, "shortest: %d (%d→%d)\n", d, s, t)

			return err
		},
	}
	cmd.Flags().Int(flagWorkers, DefaultConfig().Workers, "parallel per-source runs (0 = one per CPU)")
	cmd.Flags().BoolVar(&matrix, "matrix", false, "print the full distance matrix")

	return cmd
}

// loadGraph reads path ("-" for stdin) in the configured format.
func (c *CLI) loadGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	format, err := c.cfg.Validate()
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	p := newProgress(c.Logger)
	g, err := graphio.Read(r, format, c.cfg.Nodes)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	p.done("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "format", format)

	return g, nil
}

// writeDistances prints one "node<TAB>distance" line per node.
func writeDistances(w io.Writer, dist graph.Distances) error {
	var sb strings.Builder
	for v := 1; v <= dist.Len(); v++ {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte('\t')
		if d, ok := dist.Get(v); ok {
			sb.WriteString(strconv.FormatInt(d, 10))
		} else {
			sb.WriteString(unreachableText)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeMatrix prints one tab-separated row per source.
func writeMatrix(w io.Writer, res *johnson.Result) error {
	n := res.NodeCount()
	var sb strings.Builder
	for s := 1; s <= n; s++ {
		for t := 1; t <= n; t++ {
			if t > 1 {
				sb.WriteByte('\t')
			}
			if d, ok := res.Distance(s, t); ok {
				sb.WriteString(strconv.FormatInt(d, 10))
			} else {
				sb.WriteString(matrixUnreachable)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}

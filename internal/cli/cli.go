// Package cli implements the shortpath command-line interface.
//
// # Commands
//
//   - dijkstra:     single-source distances on a graph with non-negative weights
//   - bellman-ford: single-source distances, negative weights allowed
//   - johnson:      all-pairs distances and the globally shortest pair
//   - generate:     write a deterministic fixture graph
//
// Every algorithm command takes one graph file (or "-" for stdin) in the
// format selected by --format.
//
// # Configuration
//
// Values come from built-in defaults, then an optional TOML file (--config),
// then explicitly set flags, later sources winning.
//
// # Logging
//
// All commands log to stderr through charmbracelet/log. --verbose (-v)
// switches to debug level; otherwise log_level from the config file applies.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage lines.
const appName = "shortpath"

// version is overridden at build time with -ldflags "-X".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        Config
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	def := DefaultConfig()
	root := &cobra.Command{
		Use:           appName,
		Short:         "Shortest paths on weighted directed graphs",
		Long:          `shortpath computes single-source shortest paths with Dijkstra or Bellman–Ford and all-pairs shortest paths with Johnson's algorithm.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.resolveConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "TOML config file")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringP(flagFormat, "f", def.Format, "graph file format: adjacency or edgelist")
	pf.IntP(flagNodes, "n", def.Nodes, "node count for adjacency input (0 = largest id seen)")

	root.AddCommand(c.dijkstraCommand())
	root.AddCommand(c.bellmanFordCommand())
	root.AddCommand(c.johnsonCommand())
	root.AddCommand(c.generateCommand())

	return root
}

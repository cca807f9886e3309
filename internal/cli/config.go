package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/graphio"
)

// Flag names shared by the root command and the config merge.
const (
	flagFormat  = "format"
	flagNodes   = "nodes"
	flagSource  = "source"
	flagWorkers = "workers"
)

// ErrInvalidConfig indicates a config value that cannot be used.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Config is the effective configuration of one command run.
type Config struct {
	// Format names the input format, see graphio.ParseFormat.
	Format string `toml:"format"`
	// Nodes is the node count for adjacency input; 0 infers it.
	Nodes int `toml:"nodes"`
	// Source is the start node of dijkstra and bellman-ford.
	Source int `toml:"source"`
	// Workers bounds johnson's parallel stage; 0 means one per CPU.
	Workers int `toml:"workers"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:   graphio.FormatAdjacency.String(),
		Nodes:    0,
		Source:   1,
		Workers:  0,
		LogLevel: "info",
	}
}

// LoadConfig decodes the TOML file at path over the defaults. Keys missing
// from the file keep their default value; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	return cfg, nil
}

// Validate checks every field and returns the parsed format.
func (c Config) Validate() (graphio.Format, error) {
	f, err := graphio.ParseFormat(c.Format)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Nodes < 0 {
		return 0, fmt.Errorf("%w: nodes=%d must be ≥ 0", ErrInvalidConfig, c.Nodes)
	}
	if c.Source < 1 {
		return 0, fmt.Errorf("%w: source=%d must be ≥ 1", ErrInvalidConfig, c.Source)
	}
	if c.Workers < 0 {
		return 0, fmt.Errorf("%w: workers=%d must be ≥ 0", ErrInvalidConfig, c.Workers)
	}
	if _, err = log.ParseLevel(c.LogLevel); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return f, nil
}

// workers resolves Workers = 0 to one per CPU.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// validates the result and applies the log level.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if c.configPath != "" {
		var err error
		if cfg, err = LoadConfig(c.configPath); err != nil {
			return err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed(flagFormat) {
		cfg.Format, _ = flags.GetString(flagFormat)
	}
	if flags.Changed(flagNodes) {
		cfg.Nodes, _ = flags.GetInt(flagNodes)
	}
	if flags.Lookup(flagSource) != nil && flags.Changed(flagSource) {
		cfg.Source, _ = flags.GetInt(flagSource)
	}
	if flags.Lookup(flagWorkers) != nil && flags.Changed(flagWorkers) {
		cfg.Workers, _ = flags.GetInt(flagWorkers)
	}

	if _, err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	c.cfg = cfg

	return nil
}

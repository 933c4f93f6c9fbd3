package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/mapfile"
)

// app is the state shared by all sub-commands once the root has run.
type app struct {
	config mapfile.Config
	logger *slog.Logger
}

type rootFlags struct {
	LogLevel   string
	ConfigFile string
}

// NewCmdRoot builds the gridwalk command tree.
func NewCmdRoot(name string, out, errout io.Writer) *cobra.Command {
	flags := &rootFlags{LogLevel: "info"}
	a := &app{config: mapfile.DefaultConfig(), logger: slog.Default()}

	cmd := &cobra.Command{
		Use:          name,
		Short:        "Grid path search, flood fill and island analysis",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(flags.LogLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", flags.LogLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(errout, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)

			if flags.ConfigFile == "" {
				return nil
			}
			config, err := mapfile.ReadConfig(flags.ConfigFile)
			if err != nil {
				return err
			}
			a.config = config

			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errout)

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level. One of: debug, info, warn, error.")
	cmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "YAML run configuration; flags override its values.")

	cmd.AddCommand(
		NewCmdPath(name, a, out),
		NewCmdFill(name, a, out),
		NewCmdIslands(name, a, out),
	)

	return cmd
}

var (
	_ pflag.Value = neighborsValue{}
	_ pflag.Value = (*mapfile.Mark)(nil)
	_ pflag.Value = (*mapfile.Heuristic)(nil)
)

// neighborsValue adapts grid.Neighbors to pflag.Value.
type neighborsValue struct {
	n *grid.Neighbors
}

func (v neighborsValue) String() string {
	if v.n == nil {
		return grid.Adjacent.String()
	}
	return v.n.String()
}

func (v neighborsValue) Set(s string) error { return v.n.UnmarshalText([]byte(s)) }

func (v neighborsValue) Type() string { return "neighbors" }

// commonFlags are the map-related flags shared by every sub-command.
type commonFlags struct {
	Map       string
	Neighbors grid.Neighbors
}

func (f *commonFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Map, "map", "", "ASCII map file, one row per line.")
	cmd.Flags().Var(neighborsValue{&f.Neighbors}, "neighbors", "neighbour policy. One of: adjacent, bordering.")
}

// apply overrides config with the flags the user actually set.
func (f *commonFlags) apply(cmd *cobra.Command, config *mapfile.Config) error {
	if cmd.Flags().Changed("map") {
		config.Map = f.Map
	}
	if cmd.Flags().Changed("neighbors") {
		config.Neighbors = f.Neighbors
	}
	if config.Map == "" {
		return errors.New("no map given: use --map or set map in --config")
	}

	return nil
}

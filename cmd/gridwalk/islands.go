package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/internal/mapfile"
	"github.com/katalvlaran/gridwalk/islands"
	"github.com/katalvlaran/gridwalk/pathfind"
)

var islandsExample = `# list islands of '#' cells
%[1]s islands --map atlas.txt

# water cells to convert to join island 0 and island 2
%[1]s islands --map atlas.txt --land '~' --bridge 0,2
`

type IslandsFlags struct {
	commonFlags
	Land   mapfile.Mark
	Bridge string
}

type IslandsOpts struct {
	Config mapfile.Config
	Bridge string

	Logger *slog.Logger
	Out    io.Writer
}

func (f *IslandsFlags) ToOptions(cmd *cobra.Command, a *app, out io.Writer) (*IslandsOpts, error) {
	config := a.config
	if err := f.apply(cmd, &config); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("land") {
		config.Marks.Land = f.Land
	}

	return &IslandsOpts{Config: config, Bridge: f.Bridge, Logger: a.logger, Out: out}, nil
}

func NewCmdIslands(parent string, a *app, out io.Writer) *cobra.Command {
	flags := &IslandsFlags{Land: '#'}

	cmd := &cobra.Command{
		Use:     "islands --map FILE",
		Short:   "Lists islands of land cells and computes bridges between them",
		Example: fmt.Sprintf(islandsExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(c, a, out)
			if err != nil {
				return err
			}
			return opts.Run()
		},
	}

	flags.addFlags(cmd)
	cmd.Flags().Var(&flags.Land, "land", "map character that counts as land.")
	cmd.Flags().StringVar(&flags.Bridge, "bridge", "", "pair of island indices i,j to connect.")
	return cmd
}

func (o *IslandsOpts) Run() error {
	m, err := mapfile.Load(o.Config.Map)
	if err != nil {
		return err
	}
	land := byte(o.Config.Marks.Land)
	isLand := func(v byte) bool { return v == land }
	nb := o.Config.Neighbors

	comps := islands.Components[byte](m, nb, isLand)
	fmt.Fprintf(o.Out, "islands: %d\n", len(comps))
	for i, c := range comps {
		fmt.Fprintf(o.Out, "island %d: first=%v size=%d\n", i, c[0], len(c))
	}
	if o.Bridge == "" {
		return nil
	}

	i, j, err := parsePair(o.Bridge, len(comps))
	if err != nil {
		return err
	}
	path, conversions, err := islands.Bridge[byte](m, nb, isLand, comps[i], comps[j], pathfind.WithLogger(o.Logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(o.Out, "bridge %d-%d: conversions=%d path=%v\n", i, j, conversions, path)
	return nil
}

// parsePair parses "i,j" and checks both indices against n.
func parsePair(s string, n int) (int, int, error) {
	is, js, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --bridge %q: want i,j", s)
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --bridge %q: %w", s, err)
	}
	j, err := strconv.Atoi(js)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --bridge %q: %w", s, err)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, 0, fmt.Errorf("invalid --bridge %q: only %d islands", s, n)
	}

	return i, j, nil
}

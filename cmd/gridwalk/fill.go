package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/editing"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/mapfile"
)

var fillExample = `# paint the region around S with 'o'
%[1]s fill --map maze.txt --paint o

# paint the region containing cell 4,2 including diagonal neighbours
%[1]s fill --map maze.txt --at 4,2 --paint . --neighbors bordering
`

type FillFlags struct {
	commonFlags
	At    string
	Paint mapfile.Mark
}

type FillOpts struct {
	Config mapfile.Config
	At     string
	Paint  mapfile.Mark

	Out io.Writer
}

func (f *FillFlags) ToOptions(cmd *cobra.Command, a *app, out io.Writer) (*FillOpts, error) {
	config := a.config
	if err := f.apply(cmd, &config); err != nil {
		return nil, err
	}

	return &FillOpts{Config: config, At: f.At, Paint: f.Paint, Out: out}, nil
}

func NewCmdFill(parent string, a *app, out io.Writer) *cobra.Command {
	flags := &FillFlags{Paint: 'o'}

	cmd := &cobra.Command{
		Use:     "fill --map FILE",
		Short:   "Flood-fills the region of equal characters around a cell",
		Example: fmt.Sprintf(fillExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(c, a, out)
			if err != nil {
				return err
			}
			return opts.Run()
		},
	}

	flags.addFlags(cmd)
	cmd.Flags().StringVar(&flags.At, "at", "", "seed cell as x,y. Defaults to the start mark in the map.")
	cmd.Flags().Var(&flags.Paint, "paint", "character written into every filled cell.")
	return cmd
}

func (o *FillOpts) Run() error {
	m, err := mapfile.Load(o.Config.Map)
	if err != nil {
		return err
	}
	at, err := resolve(m, o.At, o.Config.Marks.Start)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	sameAsSeed := func(seed, _, candidate byte) bool { return candidate == seed }
	paint := byte(o.Paint)
	n, err := editing.FloodFill[byte](m, at, o.Config.Neighbors, sameAsSeed, func(v *byte, _ grid.Point) { *v = paint })
	if err != nil {
		return err
	}

	fmt.Fprint(o.Out, grid.Render(m))
	fmt.Fprintf(o.Out, "painted: %d\n", n)
	return nil
}

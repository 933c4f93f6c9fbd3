package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/editing"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/mapfile"
	"github.com/katalvlaran/gridwalk/pathfind"
)

var pathExample = `# shortest path from S to D, walls are '#'
%[1]s path --map maze.txt

# A* with diagonal moves between explicit cells
%[1]s path --map maze.txt --from 1,1 --to 19,19 --neighbors bordering --heuristic chebyshev

# distances from S to every reachable cell
%[1]s path --map maze.txt --whole
`

type PathFlags struct {
	commonFlags
	From      string
	To        string
	Wall      mapfile.Mark
	Heuristic mapfile.Heuristic
	Whole     bool
}

type PathOpts struct {
	Config   mapfile.Config
	From, To string
	Whole    bool

	Logger *slog.Logger
	Out    io.Writer

	m           *grid.Dense[byte]
	start, dest grid.Point
}

func (f *PathFlags) ToOptions(cmd *cobra.Command, a *app, out io.Writer) (*PathOpts, error) {
	config := a.config
	if err := f.apply(cmd, &config); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("wall") {
		config.Marks.Wall = f.Wall
	}
	if cmd.Flags().Changed("heuristic") {
		config.Heuristic = f.Heuristic
	}

	return &PathOpts{
		Config: config,
		From:   f.From,
		To:     f.To,
		Whole:  f.Whole,
		Logger: a.logger,
		Out:    out,
	}, nil
}

func NewCmdPath(parent string, a *app, out io.Writer) *cobra.Command {
	flags := &PathFlags{Wall: '#', Heuristic: mapfile.HeuristicNone}

	cmd := &cobra.Command{
		Use:     "path --map FILE",
		Short:   "Finds the cheapest path between two cells of a map",
		Long:    "Finds the cheapest path between two cells of a map. Every step into a non-wall cell costs 1.",
		Example: fmt.Sprintf(pathExample, parent),
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(c, a, out)
			if err != nil {
				return err
			}
			if err := opts.Complete(); err != nil {
				return err
			}
			return opts.Run()
		},
	}

	flags.addFlags(cmd)
	cmd.Flags().StringVar(&flags.From, "from", "", "start cell as x,y. Defaults to the start mark in the map.")
	cmd.Flags().StringVar(&flags.To, "to", "", "destination cell as x,y. Defaults to the destination mark in the map.")
	cmd.Flags().Var(&flags.Wall, "wall", "map character that cannot be entered.")
	cmd.Flags().Var(&flags.Heuristic, "heuristic", "A* heuristic. One of: none, manhattan, chebyshev.")
	cmd.Flags().BoolVar(&flags.Whole, "whole", false, "compute distances to every reachable cell instead of a single path.")
	return cmd
}

// Complete loads the map and resolves the endpoints.
func (o *PathOpts) Complete() error {
	m, err := mapfile.Load(o.Config.Map)
	if err != nil {
		return err
	}
	o.m = m

	if o.start, err = resolve(m, o.From, o.Config.Marks.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if o.Whole && o.To == "" {
		return nil
	}
	if o.dest, err = resolve(m, o.To, o.Config.Marks.Dest); err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	return nil
}

// resolve parses s as a point, falling back to the first cell holding mark.
func resolve(m *grid.Dense[byte], s string, mark mapfile.Mark) (grid.Point, error) {
	if s != "" {
		return mapfile.ParsePoint(s)
	}
	return mapfile.Locate(m, mark)
}

func (o *PathOpts) Run() error {
	wall := byte(o.Config.Marks.Wall)
	step := func(_ byte, _ grid.Point, to byte, _ grid.Point) (uint, bool) {
		return 1, to != wall
	}
	nb := o.Config.Neighbors
	opts := []pathfind.Option{pathfind.WithLogger(o.Logger)}

	if o.Whole {
		res, err := pathfind.ToWhole(o.m, o.start, nb, step, opts...)
		if err != nil {
			return err
		}
		return o.printWhole(res)
	}

	var (
		res *pathfind.Result[uint]
		err error
	)
	switch o.Config.Heuristic {
	case mapfile.HeuristicManhattan:
		res, err = pathfind.ToDestHeuristic(o.m, o.start, o.dest, nb, step, pathfind.Manhattan[uint], opts...)
	case mapfile.HeuristicChebyshev:
		res, err = pathfind.ToDestHeuristic(o.m, o.start, o.dest, nb, step, pathfind.Chebyshev[uint], opts...)
	default:
		res, err = pathfind.ToDest(o.m, o.start, o.dest, nb, step, opts...)
	}
	if err != nil {
		return err
	}
	if res.Outcome != pathfind.PathFound {
		return fmt.Errorf("no path from %v to %v", o.start, o.dest)
	}

	return o.printPath(res)
}

// printPath draws the path over a copy of the map.
func (o *PathOpts) printPath(res *pathfind.Result[uint]) error {
	canvas, err := grid.NewDense[byte](o.m.Width(), o.m.Height())
	if err != nil {
		return err
	}
	if err := editing.Copy[byte](o.m, canvas, grid.Bounds[byte](o.m), grid.Pt(0, 0)); err != nil {
		return err
	}
	for _, p := range res.Path() {
		if p != o.start && p != o.dest {
			canvas.Set(p, byte(o.Config.Marks.Path))
		}
	}

	fmt.Fprint(o.Out, grid.Render(canvas))
	fmt.Fprintf(o.Out, "cost: %d\n", res.Cost)
	fmt.Fprintf(o.Out, "visited: %d\n", res.VisitedCount())
	return nil
}

func (o *PathOpts) printWhole(res *pathfind.Result[uint]) error {
	var farthest uint
	res.Tiles.Each(func(_ grid.Point, t pathfind.Tile[uint]) {
		if t.HasCost && t.Cost > farthest {
			farthest = t.Cost
		}
	})
	fmt.Fprintf(o.Out, "reachable: %d\n", res.VisitedCount())
	fmt.Fprintf(o.Out, "farthest: %d\n", farthest)
	if o.To != "" {
		c, ok := res.CostTo(o.dest)
		if !ok {
			return fmt.Errorf("%v is not reachable from %v", o.dest, o.start)
		}
		fmt.Fprintf(o.Out, "cost to %v: %d\n", o.dest, c)
	}
	return nil
}

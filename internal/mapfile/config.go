package mapfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/grid"
)

// ErrUnknownHeuristic indicates a heuristic name other than none, manhattan or chebyshev.
var ErrUnknownHeuristic = errors.New("mapfile: unknown heuristic")

// Config is a gridwalk run configuration.
type Config struct {
	Map       string         `yaml:"map"`
	Neighbors grid.Neighbors `yaml:"neighbors"`
	Heuristic Heuristic      `yaml:"heuristic"`
	Marks     struct {
		Wall  Mark `yaml:"wall"`
		Start Mark `yaml:"start"`
		Dest  Mark `yaml:"dest"`
		Land  Mark `yaml:"land"`
		Path  Mark `yaml:"path"`
	} `yaml:"marks"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	var c Config
	c.Neighbors = grid.Adjacent
	c.Heuristic = HeuristicNone
	c.Marks.Wall = '#'
	c.Marks.Start = 'S'
	c.Marks.Dest = 'D'
	c.Marks.Land = '#'
	c.Marks.Path = '*'

	return c
}

// ReadConfig loads path on top of DefaultConfig.
func ReadConfig(path string) (Config, error) {
	slog.Info("reading config file", "path", path)
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

// Mark is a single map character.
type Mark byte

// ParseMark converts a one-character string to a Mark.
func ParseMark(s string) (Mark, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadMark, s)
	}

	return Mark(s[0]), nil
}

func (m Mark) String() string { return string(rune(m)) }

// Set implements pflag.Value.
func (m *Mark) Set(s string) error {
	v, err := ParseMark(s)
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Type implements pflag.Value.
func (m *Mark) Type() string { return "char" }

func (m Mark) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *Mark) UnmarshalYAML(value *yaml.Node) error {
	return m.Set(value.Value)
}

// Heuristic names an A* heuristic.
type Heuristic string

const (
	HeuristicNone      Heuristic = "none"
	HeuristicManhattan Heuristic = "manhattan"
	HeuristicChebyshev Heuristic = "chebyshev"
)

func (h Heuristic) String() string { return string(h) }

// Set implements pflag.Value.
func (h *Heuristic) Set(s string) error {
	switch v := Heuristic(s); v {
	case HeuristicNone, HeuristicManhattan, HeuristicChebyshev:
		*h = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

// Type implements pflag.Value.
func (h *Heuristic) Type() string { return "heuristic" }

func (h *Heuristic) UnmarshalYAML(value *yaml.Node) error {
	return h.Set(value.Value)
}

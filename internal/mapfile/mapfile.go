// Package mapfile loads ASCII grid maps and YAML run configurations for the
// gridwalk command.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for map and config parsing.
var (
	// ErrBadMark indicates a mark that is not exactly one byte.
	ErrBadMark = errors.New("mapfile: mark must be a single character")
	// ErrBadPoint indicates a coordinate not in "x,y" form.
	ErrBadPoint = errors.New("mapfile: point must be \"x,y\"")
	// ErrMarkNotFound indicates a mark that does not occur in the map.
	ErrMarkNotFound = errors.New("mapfile: mark not found in map")
)

// Load reads the map file at path. See Parse.
func Load(path string) (*grid.Dense[byte], error) {
	slog.Debug("loading map", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("map loaded", "width", m.Width(), "height", m.Height())

	return m, nil
}

// Parse reads one grid row per line. Trailing blank lines are ignored.
func Parse(r io.Reader) (*grid.Dense[byte], error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return grid.ParseLines(lines)
}

// Locate returns the first cell holding mark.
func Locate(m grid.View[byte], mark Mark) (grid.Point, error) {
	p, ok := grid.Find(m, byte(mark))
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrMarkNotFound, mark.String())
	}

	return p, nil
}

// ParsePoint parses "x,y" into a point.
func ParsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}

	return grid.Pt(x, y), nil
}

package grid

import "strings"

// ParseLines builds a byte grid from text lines, one line per row.
// Trailing carriage returns are stripped. Returns ErrEmptyGrid for no lines or
// empty lines and ErrNonRectangular for ragged input.
func ParseLines(lines []string) (*Dense[byte], error) {
	rows := make([][]byte, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []byte(strings.TrimRight(line, "\r")))
	}

	return FromRows(rows)
}

// Find returns the first cell (row-major order) equal to v.
func Find[T comparable](v View[T], target T) (Point, bool) {
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			if c, _ := v.Get(x, y); c == target {
				return Point{X: x, Y: y}, true
			}
		}
	}

	return Point{}, false
}

// Render writes the byte grid back to text, one line per row.
func Render(v View[byte]) string {
	var sb strings.Builder
	sb.Grow((v.Width() + 1) * v.Height())
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c, _ := v.Get(x, y)
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

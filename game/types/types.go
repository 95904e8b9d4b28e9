package types

// Point is a position on the grid, in cell coordinates.
type Point struct {
	X, Y int
}

// Add returns the point offset by one step in the given direction.
func (p Point) Add(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Wrap maps the point back onto the grid toroidally: leaving one edge
// re-enters from the opposite one.
func (p Point) Wrap(g Grid) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Grid represents the game grid dimensions.
type Grid struct {
	Width  int
	Height int
}

// Center returns the cell at the middle of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement vector.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// IsOpposite reports whether other is the exact reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d != None && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Color is an RGB color. Kept here so the core packages stay free of
// raylib types; the renderer converts at the edge.
type Color struct {
	R, G, B uint8
}

// Package puzzle provides a model for square Sudoku grids and
// the search strategies that solve them.
//
// In this package, grids are made of squares which are either
// empty (represented with a 0 value) or have an assigned value
// between 1 and the side length of the grid (inclusive).  The
// squares are designated by indices that start at 1 and increase
// left-to-right, top-to-bottom (English reading order).
//
// A Grid knows nothing beyond its values; the Augmented form
// additionally maintains, for each empty square, the set of
// values still consistent with the fixed squares that share a
// row, column, or tile with it.  The three search strategies in
// this package (Naive, Pruned, Sorted) consume a Grid and return
// either a solved Grid or an Unsolvable error; see solver.go.
package puzzle

/*

Grid representation

*/

// A Grid is a dense square array of cell values in reading
// order.  The mapping carries the geometry (side length, tile
// length, groups, peers) and is shared between all grids of the
// same size.
type Grid struct {
	mapping *mapping
	values  []int // 1-based indexing; 0 means empty
}

// NewFromValues creates a Grid from row-major cell values, one
// per square, with 0 meaning an empty square.  The number of
// values determines the side length.
func NewFromValues(values []int) (*Grid, error) {
	m, err := squareMapping(len(values))
	if err != nil {
		return nil, err
	}
	g := &Grid{m, make([]int, m.scount+1)}
	for i, val := range values {
		if val != 0 && (val < 1 || val > m.sidelen) {
			return nil, rangeError(ValueAttribute, val, 1, m.sidelen)
		}
		g.values[i+1] = val
	}
	return g, nil
}

// Sidelen returns the side length of the grid.
func (g *Grid) Sidelen() int {
	return g.mapping.sidelen
}

// Tilelen returns the side length of the grid's tiles, which is
// the square root of the grid's side length.
func (g *Grid) Tilelen() int {
	return g.mapping.tilelen
}

// Value returns the value of the square with the given index
// (1-based, reading order), 0 if the square is empty.
func (g *Grid) Value(index int) int {
	if index < 1 || index > g.mapping.scount {
		panic(rangeError(IndexAttribute, index, 1, g.mapping.scount))
	}
	return g.values[index]
}

// Values returns all the cell values in reading order, 0 for
// empty squares.  The returned slice doesn't share storage with
// the grid.
func (g *Grid) Values() []int {
	return append([]int(nil), g.values[1:]...)
}

// Filled reports whether every square has a value.
func (g *Grid) Filled() bool {
	for i := 1; i <= g.mapping.scount; i++ {
		if g.values[i] == 0 {
			return false
		}
	}
	return true
}

// Valid reports whether no row, column, or tile contains a
// repeated non-empty value.
func (g *Grid) Valid() bool {
	for gi := 1; gi <= g.mapping.gcount; gi++ {
		where := make([]int, g.mapping.sidelen+1) // 1-based values
		for _, si := range g.mapping.gdescs[gi].indices {
			if v := g.values[si]; v != 0 {
				if where[v] != 0 {
					return false
				}
				where[v] = si
			}
		}
	}
	return true
}

// Solved reports whether the grid is completely filled with
// non-conflicting values.
func (g *Grid) Solved() bool {
	return g.Filled() && g.Valid()
}

// Copy returns a deep copy of the grid.  The mapping is
// invariant and always shared.
func (g *Grid) Copy() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{g.mapping, append([]int(nil), g.values...)}
}

// Empties counts the squares without a value.
func (g *Grid) Empties() int {
	count := 0
	for i := 1; i <= g.mapping.scount; i++ {
		if g.values[i] == 0 {
			count++
		}
	}
	return count
}

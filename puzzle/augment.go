package puzzle

/*

Augmented grids

An augmented grid tracks, for every empty square of a Grid, the
set of values still consistent with the fixed squares of its row,
column, and tile.  Squares move from open to fixed exactly once
and never back: backtracking is done by discarding a branch copy,
not by un-fixing a square.

*/

// An asquare is either fixed (value != 0) or open, with the
// sorted set of values it can still take.
type asquare struct {
	value int
	cands intset
}

// An Augmented is the constraint-tracking form of a Grid.
type Augmented struct {
	mapping *mapping
	squares []asquare // 1-based indexing
}

// Augment converts a Grid: filled squares become fixed, empty
// squares start with every value possible.  Call Propagate to
// narrow the open squares using the grid's givens.
func Augment(g *Grid) *Augmented {
	a := &Augmented{mapping: g.mapping}
	a.squares = make([]asquare, a.mapping.scount+1)
	for i := 1; i <= a.mapping.scount; i++ {
		if v := g.values[i]; v != 0 {
			a.squares[i].value = v
		} else {
			a.squares[i].cands = newIntsetRange(a.mapping.sidelen)
		}
	}
	return a
}

// Propagate removes every fixed square's value from the
// candidate sets of its peers.  Running it a second time is a
// no-op, because removing an absent value leaves a set
// unchanged.
func (a *Augmented) Propagate() {
	for i := 1; i <= a.mapping.scount; i++ {
		if v := a.squares[i].value; v != 0 {
			a.eliminate(i, v)
		}
	}
}

// eliminate removes val from the candidates of idx's open peers.
func (a *Augmented) eliminate(idx, val int) {
	for _, pi := range a.mapping.peers[idx] {
		if s := &a.squares[pi]; s.value == 0 {
			s.cands.remove(val)
		}
	}
}

// Fix returns an independent copy of the augmented grid with the
// square at idx fixed to val and val eliminated from the
// candidates of idx's peers.  It does not re-check that val was
// a candidate of the square: callers must only fix values drawn
// from the square's candidate set, which keeps every fixed
// square consistent with its previously fixed peers.
func (a *Augmented) Fix(idx, val int) *Augmented {
	c := a.copy()
	c.fix(idx, val)
	return c
}

// fix is the in-place form of Fix, used where the value is
// forced and no branch copy is needed.
func (a *Augmented) fix(idx, val int) {
	a.squares[idx].value = val
	a.squares[idx].cands = nil
	a.eliminate(idx, val)
}

// Grid converts back to the plain representation: fixed squares
// keep their value, open squares come back empty.
func (a *Augmented) Grid() *Grid {
	g := &Grid{mapping: a.mapping, values: make([]int, a.mapping.scount+1)}
	for i := 1; i <= a.mapping.scount; i++ {
		g.values[i] = a.squares[i].value
	}
	return g
}

// Candidates returns the candidate values of the square at idx,
// or nil if the square is fixed.  The returned set doesn't share
// storage with the augmented grid.
func (a *Augmented) Candidates(idx int) []int {
	if idx < 1 || idx > a.mapping.scount {
		panic(rangeError(IndexAttribute, idx, 1, a.mapping.scount))
	}
	if a.squares[idx].value != 0 {
		return nil
	}
	return newIntsetCopy(a.squares[idx].cands)
}

// copy returns a deep copy of an augmented grid.
func (a *Augmented) copy() *Augmented {
	c := &Augmented{
		mapping: a.mapping, // mappings are invariant and always shared
		squares: make([]asquare, len(a.squares)),
	}
	for i := 1; i < len(a.squares); i++ {
		c.squares[i] = asquare{a.squares[i].value, newIntsetCopy(a.squares[i].cands)}
	}
	return c
}

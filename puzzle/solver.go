package puzzle

import (
	"sort"
)

/*

Search strategies

Three interchangeable depth-first searches over a grid:

Naive scans for the first empty square in reading order, tries
every value in ascending order, and re-validates the entire grid
after each placement.  Deliberately unoptimized; it is the
correctness baseline the other strategies must agree with on
solvability.

Pruned converts the grid to its augmented form, eliminates the
givens' values from their peers once, and then branches on the
first open square in reading order, trying only the values in
its candidate set.  Each branch descends into an independent
copy, so a failed branch is discarded whole and the parent's
state is untouched.

Sorted is the same search with minimum-remaining-values
ordering: it always branches on the open square with the fewest
candidates (first one found on ties), and fixes single-candidate
squares in place without copying, since a forced value cannot
fail.

All three return the solved grid on success.  When the search
space is exhausted they return an Unsolvable error instead; that
is the normal outcome for a contradictory puzzle, not an
exceptional one, and callers are expected to check for it.

*/

// A Strategy is a search procedure over a Grid.  The input grid
// is never modified.  On success the returned grid satisfies
// Solved; on failure the returned error is an Unsolvable holding
// the last state the search explored.
type Strategy func(*Grid) (*Grid, error)

// knownStrategies is the lookup table by name.
var knownStrategies = map[string]Strategy{
	"naive":  Naive,
	"pruned": Pruned,
	"sorted": Sorted,
}

// StrategyNamed looks up a search strategy by its registered
// name.
func StrategyNamed(name string) (Strategy, bool) {
	s, ok := knownStrategies[name]
	return s, ok
}

// StrategyNames returns the registered strategy names in sorted
// order.
func StrategyNames() []string {
	names := make([]string, 0, len(knownStrategies))
	for name := range knownStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unsolvable reports that a search exhausted every branch
// without finding a valid complete assignment.  Last holds the
// grid state when the search gave up; only the verdict is
// contractual, the exact state is informational.
type Unsolvable struct {
	Last *Grid
}

func (u Unsolvable) Error() string {
	return "puzzle has no solution"
}

/*

Naive: exhaustive search with whole-grid revalidation

*/

// Naive solves a grid by plain backtracking: find the first
// empty square, try each value in ascending order, and check the
// whole grid for validity after every placement.
func Naive(g *Grid) (*Grid, error) {
	w := g.Copy()
	if naiveStep(w) {
		return w, nil
	}
	return nil, Unsolvable{Last: w}
}

func naiveStep(g *Grid) bool {
	idx := 0
	for i := 1; i <= g.mapping.scount; i++ {
		if g.values[i] == 0 {
			idx = i
			break
		}
	}
	if idx == 0 {
		// complete: solved iff no constraint is violated
		return g.Valid()
	}
	for v := 1; v <= g.mapping.sidelen; v++ {
		g.values[idx] = v
		if g.Valid() && naiveStep(g) {
			return true
		}
	}
	g.values[idx] = 0
	return false
}

/*

Pruned: constraint-propagated search in reading order

*/

// Pruned solves a grid by depth-first search over its augmented
// form, branching on the first open square in reading order and
// trying only that square's candidates.
func Pruned(g *Grid) (*Grid, error) {
	if !g.Valid() {
		// conflicting givens never show up as an empty candidate
		// set, so reject them before searching
		return nil, Unsolvable{Last: g.Copy()}
	}
	a := Augment(g)
	a.Propagate()
	solved, last := prunedStep(a)
	if solved != nil {
		return solved.Grid(), nil
	}
	return nil, Unsolvable{Last: last.Grid()}
}

// prunedStep returns the solved augmented grid, or nil and the
// last state expanded when every branch has failed.  When no
// open square remains every square is fixed, and fixing only
// ever draws from candidate sets that exclude all fixed peers,
// so the assignment is a valid solution without a final
// re-check.
func prunedStep(a *Augmented) (solved, last *Augmented) {
	idx := 0
	for i := 1; i <= a.mapping.scount; i++ {
		if a.squares[i].value == 0 {
			idx = i
			break
		}
	}
	if idx == 0 {
		return a, a
	}
	last = a
	for _, v := range a.squares[idx].cands {
		child := a.Fix(idx, v)
		if solved, last = prunedStep(child); solved != nil {
			return solved, last
		}
	}
	// candidate set exhausted (or empty: a contradiction)
	return nil, last
}

/*

Sorted: minimum-remaining-values search

*/

// Sorted solves a grid by depth-first search over its augmented
// form, always branching on the open square with the fewest
// remaining candidates.  Squares whose candidate set is down to
// one value are fixed in place without branching.
func Sorted(g *Grid) (*Grid, error) {
	if !g.Valid() {
		return nil, Unsolvable{Last: g.Copy()}
	}
	a := Augment(g)
	a.Propagate()
	solved, last := sortedStep(a)
	if solved != nil {
		return solved.Grid(), nil
	}
	return nil, Unsolvable{Last: last.Grid()}
}

// selectOpen finds the open square with the fewest candidates,
// ties broken by reading order.  Returns index 0 when every
// square is fixed.
func selectOpen(a *Augmented) (idx, count int) {
	idx, count = 0, a.mapping.sidelen+1
	for i := 1; i <= a.mapping.scount; i++ {
		if s := &a.squares[i]; s.value == 0 && len(s.cands) < count {
			idx, count = i, len(s.cands)
		}
	}
	return idx, count
}

func sortedStep(a *Augmented) (solved, last *Augmented) {
	for {
		idx, count := selectOpen(a)
		if idx == 0 {
			return a, a
		}
		switch count {
		case 0:
			// some square has no value left: dead end
			return nil, a
		case 1:
			// forced value: fix in place, no branch copy needed
			a.fix(idx, a.squares[idx].cands[0])
			continue
		}
		last = a
		for _, v := range a.squares[idx].cands {
			child := a.Fix(idx, v)
			if solved, last = sortedStep(child); solved != nil {
				return solved, last
			}
		}
		return nil, last
	}
}

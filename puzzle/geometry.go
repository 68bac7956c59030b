package puzzle

import (
	"fmt"
	"sync"
)

/*

Puzzle geometry

Only the classic square geometry is supported: the side length of
the puzzle is a perfect square, and the tiles are non-overlapping
sub-squares whose side is the square root of the puzzle's side
length.  Every row, column, and tile is a group that must contain
each value at most once.

*/

// A GroupID names a group (row, column, or tile) for messages
// and tests.
type GroupID struct {
	Gtype GroupType `json:"gtype"`
	Index int       `json:"index"`
}

// GroupType distinguishes the three kinds of groups.
type GroupType int

// Constants for the group types.
const (
	GtypeNone GroupType = iota
	GtypeRow
	GtypeCol
	GtypeTile
)

func (gid GroupID) String() string {
	switch gid.Gtype {
	case GtypeRow:
		return fmt.Sprintf("row %d", gid.Index)
	case GtypeCol:
		return fmt.Sprintf("column %d", gid.Index)
	case GtypeTile:
		return fmt.Sprintf("tile %d", gid.Index)
	}
	return fmt.Sprintf("group %d", gid.Index)
}

// A group descriptor identifies a group and enumerates the
// indices of its squares.
type groupDescriptor struct {
	index   int
	id      GroupID
	indices intset
}

// A mapping summarizes the geometry parameters of a puzzle,
// including the indices in each of the groups, a map from each
// index to the groups that contain it, and a map from each index
// to its peers (the other squares that share a group with it).
type mapping struct {
	sidelen int
	tilelen int
	scount  int
	gcount  int
	gdescs  []groupDescriptor
	ixmap   [][]int
	peers   [][]int
}

// squareMaps is where we memoize computed mappings for each side
// length we've encountered, to avoid computing them more than
// once.  Grids are built from batch workers, so access is locked.
var (
	squareMaps      = make(map[int]*mapping)
	squareMapsMutex sync.Mutex
)

// Find the integer square root of val, if it exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

func computeSquareMapping(slen, tlen int) *mapping {
	gcount := (slen * 3)
	scount := (slen * slen)
	gs := make([]groupDescriptor, gcount+1) // 1-based indexing
	im := make([][]int, scount+1)           // 1-based indexing
	for i := 1; i <= scount; i++ {
		im[i] = make([]int, 3) // 3 groups for every square
	}
	for i := 0; i < slen; i++ {
		// row i + 1
		rgi := i + 1 // 1-based indexes
		row := make(intset, slen)
		for ri := 0; ri < slen; ri++ {
			si := slen*i + ri + 1 // 1-based indexes
			row[ri] = si
			im[si][0] = rgi
		}
		gs[rgi] = groupDescriptor{rgi, GroupID{GtypeRow, i + 1}, row}
		// column i + 1
		cgi := i + slen + 1 // 1-based indices
		col := make(intset, slen)
		for ci := 0; ci < slen; ci++ {
			si := slen*ci + i + 1 // 1-based indices
			col[ci] = si
			im[si][1] = cgi
		}
		gs[cgi] = groupDescriptor{cgi, GroupID{GtypeCol, i + 1}, col}
		// tile i + 1
		tgi := i + 2*slen + 1 // 1-based indices
		tile := make(intset, slen)
		baserow, basecol := tlen*(i/tlen), tlen*(i%tlen)
		for tri := 0; tri < tlen; tri++ {
			for tci := 0; tci < tlen; tci++ {
				si := slen*(baserow+tri) + (basecol + tci) + 1 // 1-based indices
				tile[tri*tlen+tci] = si
				im[si][2] = tgi
			}
		}
		gs[tgi] = groupDescriptor{tgi, GroupID{GtypeTile, i + 1}, tile}
	}
	// peers: for each square, the sorted union of the other
	// squares in its three groups
	peers := make([][]int, scount+1) // 1-based indexing
	for i := 1; i <= scount; i++ {
		ps := make(intset, 0, 3*slen-2*tlen-1)
		for _, gi := range im[i] {
			for _, si := range gs[gi].indices {
				if si != i {
					ps.insert(si)
				}
			}
		}
		peers[i] = ps
	}
	return &mapping{slen, tlen, scount, gcount, gs, im, peers}
}

// squareMapping returns the mapping for a square puzzle with the
// given number of cells.  This computes (first time) and then
// returns (thereafter) the map.  Returns an error if the side
// length is not a perfect square or out of the supported range.
func squareMapping(psize int) (*mapping, error) {
	sidelen, ok := findIntSquareRoot(psize)
	if !ok {
		return nil, geometryError(PuzzleSizeAttribute, psize, NonSquareCondition, 0)
	}
	min, max := 4, 225 // largest whose values fit in a byte
	if sidelen < min {
		return nil, geometryError(SideLengthAttribute, sidelen, TooSmallCondition, min)
	}
	if sidelen > max {
		return nil, geometryError(SideLengthAttribute, sidelen, TooLargeCondition, max)
	}
	tilelen, ok := findIntSquareRoot(sidelen)
	if !ok {
		return nil, geometryError(SideLengthAttribute, sidelen, NonSquareCondition, 0)
	}
	squareMapsMutex.Lock()
	defer squareMapsMutex.Unlock()
	m, ok := squareMaps[sidelen]
	if ok {
		return m, nil
	}
	m = computeSquareMapping(sidelen, tilelen)
	squareMaps[sidelen] = m
	return m, nil
}

/*

Errors

*/

func geometryError(attr ErrorAttribute, val int, cond ErrorCondition, limit int) Error {
	err := Error{
		Scope:     GeometryScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData{val},
	}
	if cond == TooSmallCondition || cond == TooLargeCondition {
		err.Values = append(err.Values, limit)
	}
	return err
}

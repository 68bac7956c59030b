package puzzle

import (
	"reflect"
	"testing"
)

/*

Construction and propagation

*/

func TestAugmentBeforePropagate(t *testing.T) {
	g, err := Parse(simpleStartText)
	if err != nil {
		t.Fatalf("Failed to parse simple puzzle: %v", err)
	}
	a := Augment(g)
	for i := 1; i <= 16; i++ {
		if g.Value(i) != 0 {
			if cands := a.Candidates(i); cands != nil {
				t.Errorf("fixed square %d has candidates %v", i, cands)
			}
			continue
		}
		if cands := a.Candidates(i); !reflect.DeepEqual(cands, []int{1, 2, 3, 4}) {
			t.Errorf("open square %d has candidates %v before propagation", i, cands)
		}
	}
}

func TestPropagateSimple(t *testing.T) {
	g, err := Parse(simpleStartText)
	if err != nil {
		t.Fatalf("Failed to parse simple puzzle: %v", err)
	}
	a := Augment(g)
	a.Propagate()
	// in this fixture every open square sees both a 1 and a 3
	// among its peers, so every candidate set is {2, 4}
	for i := 1; i <= 16; i++ {
		if g.Value(i) != 0 {
			continue
		}
		if cands := a.Candidates(i); !reflect.DeepEqual(cands, []int{2, 4}) {
			t.Errorf("open square %d has candidates %v after propagation", i, cands)
		}
	}
}

func TestPropagateIdempotent(t *testing.T) {
	g, err := Parse(".......1.4.........2...........5.4.7..8...3....1.9....3..4..2...5.1........8.6...")
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}
	a := Augment(g)
	a.Propagate()
	once := make([][]int, 82)
	for i := 1; i <= 81; i++ {
		once[i] = a.Candidates(i)
	}
	a.Propagate()
	for i := 1; i <= 81; i++ {
		if !reflect.DeepEqual(a.Candidates(i), once[i]) {
			t.Errorf("square %d changed candidates on second propagation: %v vs %v",
				i, a.Candidates(i), once[i])
		}
	}
}

/*

Fixing

*/

func TestFixIndependence(t *testing.T) {
	g, err := Parse(simpleStartText)
	if err != nil {
		t.Fatalf("Failed to parse simple puzzle: %v", err)
	}
	a := Augment(g)
	a.Propagate()
	child := a.Fix(2, 2)
	// the parent still sees square 2 as open
	if cands := a.Candidates(2); !reflect.DeepEqual(cands, []int{2, 4}) {
		t.Errorf("parent candidates changed after Fix: %v", cands)
	}
	// the child has the square fixed and the value gone from peers
	if cands := child.Candidates(2); cands != nil {
		t.Errorf("fixed square still has candidates %v", cands)
	}
	if child.Grid().Value(2) != 2 {
		t.Errorf("fixed square has value %d", child.Grid().Value(2))
	}
	// square 4 shares a row with square 2
	if cands := child.Candidates(4); !reflect.DeepEqual(cands, []int{4}) {
		t.Errorf("peer square 4 has candidates %v after Fix", cands)
	}
	// square 10 shares only a column
	if cands := child.Candidates(10); !reflect.DeepEqual(cands, []int{4}) {
		t.Errorf("peer square 10 has candidates %v after Fix", cands)
	}
}

/*

Round trips

*/

func TestGridRoundTrip(t *testing.T) {
	g, err := NewFromValues(simpleCompleteValues)
	if err != nil {
		t.Fatalf("Failed to create grid: %v", err)
	}
	back := Augment(g).Grid()
	if !reflect.DeepEqual(back.Values(), g.Values()) {
		t.Errorf("round trip of a filled grid gave %v", back.Values())
	}
	// partial grids come back with their open squares still empty
	p, err := Parse(simpleStartText)
	if err != nil {
		t.Fatalf("Failed to parse simple puzzle: %v", err)
	}
	back = Augment(p).Grid()
	if !reflect.DeepEqual(back.Values(), p.Values()) {
		t.Errorf("round trip of a partial grid gave %v", back.Values())
	}
}

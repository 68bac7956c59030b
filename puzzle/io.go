package puzzle

import (
	"fmt"
	"strings"
)

/*

Print forms of puzzle values

*/

var (
	valueStrings = []string{
		".", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

// valueOf parses a single puzzle-text character.  Values above 9
// are written with letters, case-insensitively, so the text form
// covers side lengths up to 35.  Note that '0' is not a value:
// empty squares are written '.' and values start at 1.
func valueOf(c byte) (int, bool) {
	switch {
	case c >= '1' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	}
	return 0, false
}

/*

Puzzle text: one character per square in reading order

*/

// Parse creates a Grid from single-line puzzle text: one
// character per square in reading order, '.' for an empty
// square.  The text length must be the square of a supported
// side length.  Parsing is strict: a wrong length or any
// character that isn't '.' or an in-range value is an error.
func Parse(text string) (*Grid, error) {
	m, err := squareMapping(len(text))
	if err != nil {
		return nil, err
	}
	g := &Grid{m, make([]int, m.scount+1)}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '.' {
			continue
		}
		val, ok := valueOf(c)
		if !ok {
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: CharacterAttribute,
				Condition: InvalidCharacterCondition,
				Values:    ErrorData{string(c), i + 1},
			}
		}
		if val > m.sidelen {
			return nil, rangeError(ValueAttribute, val, 1, m.sidelen)
		}
		g.values[i+1] = val
	}
	return g, nil
}

// Text returns the single-line puzzle text for a grid.  Parsing
// the result reproduces the grid.
func (g *Grid) Text() string {
	var sb strings.Builder
	sb.Grow(g.mapping.scount)
	for i := 1; i <= g.mapping.scount; i++ {
		sb.WriteString(vstr(g.values[i]))
	}
	return sb.String()
}

/*

Pretty-printed grids, for display and test fixtures

*/

// cellWidth picks the print width of a cell from the side
// length, so multi-digit values stay right-aligned.
func cellWidth(sidelen int) int {
	if sidelen < 10 {
		return 3
	}
	if sidelen < 100 {
		return 4
	}
	return 5
}

// String gives a bordered view of the grid with separator lines
// between tiles.  Purely cosmetic; Parse does not read it back.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	slen, tlen := g.mapping.sidelen, g.mapping.tilelen
	pad := cellWidth(slen) - 1

	var hb strings.Builder
	for i := 0; i < tlen; i++ {
		hb.WriteByte('+')
		hb.WriteString(strings.Repeat("-", tlen*pad+1))
	}
	hb.WriteByte('+')
	hline := hb.String()

	var sb strings.Builder
	for ri := 0; ri < slen; ri++ {
		if ri%tlen == 0 {
			sb.WriteString(hline)
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for ci := 0; ci < slen; ci++ {
			fmt.Fprintf(&sb, "%*s", pad, vstr(g.values[ri*slen+ci+1]))
			if ci%tlen == tlen-1 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(hline)
	return sb.String()
}

package tilemapping

import (
	"strings"
	"unicode"
)

const (
	// BlankToken is how an unassigned blank is written on a rack.
	BlankToken = '?'
	// RackTileLimit is the most tiles a rack can hold.
	RackTileLimit = 7
)

// A Tile is a single letter tile. A blank tile that has been placed carries
// the letter it stands for in Letter and scores zero; a blank still on a rack
// has Letter == BlankToken.
type Tile struct {
	Letter rune
	Points int
	Blank  bool
}

// BlankTile returns an unassigned blank.
func BlankTile() Tile {
	return Tile{Letter: BlankToken, Blank: true}
}

// As returns a copy of a blank tile standing for letter. The receiver is
// not modified.
func (t Tile) As(letter rune) Tile {
	return Tile{Letter: letter, Points: 0, Blank: true}
}

// IsAssigned is true for a blank that stands for a letter.
func (t Tile) IsAssigned() bool {
	return t.Blank && t.Letter != BlankToken
}

// String shows blanks in lowercase, the usual convention.
func (t Tile) String() string {
	if t.IsAssigned() {
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}

// Tiles is a sequence of tiles, such as the tiles a move places.
type Tiles []Tile

func (ts Tiles) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Word is the letters the tiles spell, with blanks shown as their assigned
// letter.
func (ts Tiles) Word() string {
	rs := make([]rune, len(ts))
	for i, t := range ts {
		rs[i] = t.Letter
	}
	return string(rs)
}

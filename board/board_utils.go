package board

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/domino14/wordplay/tilemapping"
)

// TilesInPlay is what a plain-text position holds besides the board
// layout: the tiles on the board and the racks listed next to it.
type TilesInPlay struct {
	OnBoard []tilemapping.Tile
	Racks   []string
}

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)
var userRackRegex = regexp.MustCompile(`(?U).+\s+([A-Z\?]*)\s+-?[0-9]+`)

func (g *GameBoard) ToDisplayText() string {
	var str strings.Builder
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

// tileForCell reads one cell of a text row. '.' and ' ' are empty, upper
// case is a tile and lower case is a blank standing for that letter.
func tileForCell(ch rune, ld *tilemapping.LetterDistribution) (tilemapping.Tile, bool, error) {
	if ch == '.' || ch == ' ' {
		return tilemapping.Tile{}, false, nil
	}
	t, err := ld.TileFor(ch)
	if err != nil {
		return tilemapping.Tile{}, false, err
	}
	if t.Blank && !t.IsAssigned() {
		return tilemapping.Tile{}, false, fmt.Errorf("unassigned blank on the board")
	}
	return t, true, nil
}

// SetRow sets a row of the board to the passed-in letters, clearing the
// rest of the row.
func (g *GameBoard) SetRow(rowNum int, letters string, ld *tilemapping.LetterDistribution) ([]tilemapping.Tile, error) {
	if rowNum < 0 || rowNum >= g.Dim() {
		return nil, ErrOutOfBounds
	}
	if len([]rune(letters)) > g.Dim() {
		return nil, fmt.Errorf("row %d: %d letters do not fit", rowNum+1, len([]rune(letters)))
	}
	tiles := make([]tilemapping.Tile, 0, len(letters))
	cells := make([]tilemapping.Tile, g.Dim())
	filled := make([]bool, g.Dim())
	for idx, r := range []rune(letters) {
		t, ok, err := tileForCell(r, ld)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+1, err)
		}
		cells[idx], filled[idx] = t, ok
	}
	for idx := 0; idx < g.Dim(); idx++ {
		g.RemoveTile(rowNum, idx)
		if filled[idx] {
			g.SetTile(rowNum, idx, cells[idx])
			tiles = append(tiles, cells[idx])
		}
	}
	return tiles, nil
}

// FromRows makes a standard board and fills it from text rows, such as a
// position sent by a client.
func FromRows(rows []string, ld *tilemapping.LetterDistribution) (*GameBoard, error) {
	b := NewStandardBoard()
	if len(rows) > b.Dim() {
		return nil, fmt.Errorf("%d rows do not fit on the board", len(rows))
	}
	for i, r := range rows {
		if _, err := b.SetRow(i, r, ld); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Rows renders the tiles as text rows that FromRows reads back.
func (g *GameBoard) Rows() []string {
	rows := make([]string, g.Dim())
	for i := range g.squares {
		var sb strings.Builder
		for _, sq := range g.squares[i] {
			if sq.occupied {
				sb.WriteString(sq.tile.String())
			} else {
				sb.WriteByte('.')
			}
		}
		rows[i] = sb.String()
	}
	return rows
}

// SetFromPlaintext sets the board from a Quackle plain-text board. It
// returns the tiles on the board and the racks listed beside it.
func (g *GameBoard) SetFromPlaintext(qText string, ld *tilemapping.LetterDistribution) (*TilesInPlay, error) {
	result := boardPlaintextRegex.FindAllStringSubmatch(qText, -1)
	if len(result) != g.Dim() {
		return nil, fmt.Errorf("expected %d board rows, found %d", g.Dim(), len(result))
	}
	g.Clear()
	tilesInPlay := &TilesInPlay{}
	for i := range result {
		j := -1
		for _, ch := range result[i][1] {
			j++
			if j%2 != 0 || j/2 >= g.Dim() {
				continue
			}
			if !unicode.IsLetter(ch) {
				continue
			}
			t, ok, err := tileForCell(ch, ld)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			if ok {
				g.SetTile(i, j/2, t)
				tilesInPlay.OnBoard = append(tilesInPlay.OnBoard, t)
			}
		}
	}
	for i, m := range userRackRegex.FindAllStringSubmatch(qText, -1) {
		if i > 1 { // only the first two lines that match
			break
		}
		tilesInPlay.Racks = append(tilesInPlay.Racks, m[1])
	}
	return tilesInPlay, nil
}

// SetToPosition sets the board to a sample position.
func (g *GameBoard) SetToPosition(p Position, ld *tilemapping.LetterDistribution) (*TilesInPlay, error) {
	return g.SetFromPlaintext(string(p), ld)
}

package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/wordplay/tilemapping"
)

// Direction is the orientation of a play.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "none"
}

// Delta is the step from one cell of a word to the next.
func (d Direction) Delta() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Perpendicular returns the crossing direction.
func (d Direction) Perpendicular() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// BingoBonus is added to the score of a play that uses a full rack.
const BingoBonus = 50

// Move is a scored placement. It holds its own copies of everything, so it
// stays valid after the board and rack it came from change.
type Move struct {
	word string
	// one tile per cell of word; a zero Tile marks a cell that was already
	// on the board
	tiles       tilemapping.Tiles
	leave       tilemapping.Tiles
	rowStart    int
	colStart    int
	dir         Direction
	score       int
	bingo       bool
	tilesPlayed int
	coords      string
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewScoringMove creates a play. word is the full main word; tiles has one
// entry per letter of word, with the zero Tile for letters already on the
// board.
func NewScoringMove(word string, tiles, leave []tilemapping.Tile,
	row, col int, dir Direction, score int) *Move {

	m := &Move{
		word:     word,
		tiles:    append(tilemapping.Tiles(nil), tiles...),
		leave:    append(tilemapping.Tiles(nil), leave...),
		rowStart: row,
		colStart: col,
		dir:      dir,
		score:    score,
		coords:   ToBoardGameCoords(row, col, dir == Vertical),
	}
	for _, t := range tiles {
		if t != (tilemapping.Tile{}) {
			m.tilesPlayed++
		}
	}
	m.bingo = m.tilesPlayed == tilemapping.RackTileLimit
	return m
}

// NewRackMove creates a play that uses only rack tiles, placed horizontally
// from the centre square.
func NewRackMove(placed, leave []tilemapping.Tile, score int) *Move {
	return NewScoringMove(tilemapping.Tiles(placed).Word(), placed, leave, 7, 7, Horizontal, score)
}

// String is the usual one-line form, such as 8H CAT [ERS] 10 pts.
func (m *Move) String() string {
	return fmt.Sprintf("%v %v [%v] %v pts", m.coords, m.TilesString(), m.LeaveString(), m.score)
}

// ShortDescription is the position and word only.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v %v", m.coords, m.TilesString())
}

// TilesString is the word with blanks shown in lowercase.
func (m *Move) TilesString() string {
	var sb strings.Builder
	rs := []rune(m.word)
	for i, t := range m.tiles {
		if t == (tilemapping.Tile{}) && i < len(rs) {
			sb.WriteRune(rs[i])
			continue
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

func (m *Move) LeaveString() string {
	return m.leave.String()
}

// Word is the main word in upper case.
func (m *Move) Word() string {
	return m.word
}

// Tiles returns one tile per letter of the word; the zero Tile marks a
// letter that was already on the board.
func (m *Move) Tiles() tilemapping.Tiles {
	return append(tilemapping.Tiles(nil), m.tiles...)
}

// Placed returns only the tiles taken from the rack, in board order.
func (m *Move) Placed() tilemapping.Tiles {
	placed := make(tilemapping.Tiles, 0, m.tilesPlayed)
	for _, t := range m.tiles {
		if t != (tilemapping.Tile{}) {
			placed = append(placed, t)
		}
	}
	return placed
}

func (m *Move) Leave() tilemapping.Tiles {
	return append(tilemapping.Tiles(nil), m.leave...)
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) Bingo() bool {
	return m.bingo
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

func (m *Move) Direction() Direction {
	return m.dir
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.dir == Vertical
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// Equals compares word, start square, score and bingo. Direction is not
// compared.
func (m *Move) Equals(o *Move) bool {
	return m.Key() == o.Key()
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// ok is false if c is not a coordinate.
func FromBoardGameCoords(c string) (row, col int, vertical bool, ok bool) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ = strconv.Atoi(vMatches[2])
		return row - 1, int(vMatches[1][0] - 'A'), true, true
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		return row - 1, int(hMatches[2][0] - 'A'), false, true
	}
	return 0, 0, false, false
}

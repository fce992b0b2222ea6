package board

import (
	"errors"
	"fmt"

	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tilemapping"
)

// DefaultDim is the width and height of the standard board.
const DefaultDim = 15

// Reader is the read-only view of a board the move generators work from.
// Coordinates off the board read as no tile and no bonus.
type Reader interface {
	Tile(row, col int) (tilemapping.Tile, bool)
	// TileAt reads the cell at row*Size()+col.
	TileAt(index int) (tilemapping.Tile, bool)
	Size() int
	Bonus(row, col int) BonusSquare
	IsEmpty() bool
}

// A Square is a single square in a game board. It contains the bonus
// marking and the tile on it, if any.
type Square struct {
	tile     tilemapping.Tile
	occupied bool
	bonus    BonusSquare
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.tile, string(s.bonus))
}

func (s *Square) IsEmpty() bool {
	return !s.occupied
}

// DisplayString is the tile, or the bonus marker if the square is empty.
func (s Square) DisplayString() string {
	if s.occupied {
		return s.tile.String()
	}
	if s.bonus == NoBonus || s.bonus == 0 {
		return "."
	}
	return string(s.bonus)
}

// A GameBoard is a square grid of Squares. The bonus layout is fixed when
// the board is made; only tiles change.
type GameBoard struct {
	squares     [][]Square
	tilesPlayed int
}

var ErrOutOfBounds = errors.New("square is off the board")

// MakeBoard creates a board from a layout description, one string per row.
func MakeBoard(desc []string) *GameBoard {
	rows := make([][]Square, 0, len(desc))
	for _, s := range desc {
		row := []Square{}
		for _, c := range s {
			row = append(row, Square{bonus: BonusSquare(c)})
		}
		rows = append(rows, row)
	}
	return &GameBoard{squares: rows}
}

// NewStandardBoard returns an empty board with the standard layout.
func NewStandardBoard() *GameBoard {
	return MakeBoard(CrosswordGameBoard)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

func (g *GameBoard) Size() int {
	return g.Dim()
}

func (g *GameBoard) posExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

func (g *GameBoard) Bonus(row int, col int) BonusSquare {
	if !g.posExists(row, col) {
		return NoBonus
	}
	return g.squares[row][col].bonus
}

func (g *GameBoard) Tile(row int, col int) (tilemapping.Tile, bool) {
	if !g.posExists(row, col) {
		return tilemapping.Tile{}, false
	}
	sq := g.squares[row][col]
	return sq.tile, sq.occupied
}

func (g *GameBoard) TileAt(index int) (tilemapping.Tile, bool) {
	d := g.Dim()
	if index < 0 || d == 0 {
		return tilemapping.Tile{}, false
	}
	return g.Tile(index/d, index%d)
}

// HasTile reports whether a tile is on the square.
func (g *GameBoard) HasTile(row int, col int) bool {
	_, ok := g.Tile(row, col)
	return ok
}

// SetTile puts a tile on a square, replacing whatever was there.
func (g *GameBoard) SetTile(row int, col int, t tilemapping.Tile) error {
	if !g.posExists(row, col) {
		return ErrOutOfBounds
	}
	sq := &g.squares[row][col]
	if !sq.occupied {
		g.tilesPlayed++
	}
	sq.tile = t
	sq.occupied = true
	return nil
}

// RemoveTile empties a square.
func (g *GameBoard) RemoveTile(row int, col int) {
	if !g.posExists(row, col) {
		return
	}
	sq := &g.squares[row][col]
	if sq.occupied {
		g.tilesPlayed--
	}
	sq.tile = tilemapping.Tile{}
	sq.occupied = false
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	for i := range g.squares {
		for j := range g.squares[i] {
			g.squares[i][j].tile = tilemapping.Tile{}
			g.squares[i][j].occupied = false
		}
	}
	g.tilesPlayed = 0
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed is the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	c := &GameBoard{
		squares:     make([][]Square, len(g.squares)),
		tilesPlayed: g.tilesPlayed,
	}
	for i, row := range g.squares {
		c.squares[i] = append([]Square(nil), row...)
	}
	return c
}

// PlayMove places a move's new tiles on the board. Cells the move plays
// through must already hold tiles.
func (g *GameBoard) PlayMove(m *move.Move) error {
	rowStart, colStart, vertical := m.CoordsAndVertical()
	dr, dc := m.Direction().Delta()
	tiles := m.Tiles()
	// check first so a bad move leaves the board alone
	for idx, t := range tiles {
		row, col := rowStart+dr*idx, colStart+dc*idx
		if !g.posExists(row, col) {
			return ErrOutOfBounds
		}
		played := t != (tilemapping.Tile{})
		if played == g.HasTile(row, col) {
			return fmt.Errorf("move %v does not fit the board at %v",
				m.ShortDescription(), move.ToBoardGameCoords(row, col, vertical))
		}
	}
	for idx, t := range tiles {
		if t == (tilemapping.Tile{}) {
			continue
		}
		g.SetTile(rowStart+dr*idx, colStart+dc*idx, t)
	}
	return nil
}

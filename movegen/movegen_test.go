package movegen

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/graphmaker"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

var ld = tilemapping.EnglishLetterDistribution()

// A small dictionary; the board tests below only use words from it.
var testWords = []string{
	"AE", "AN", "AR", "AS", "AT", "EN", "ER", "ES", "NA", "NE", "NO", "OE",
	"ON", "RE", "TA", "TE", "TO",
	"ACT", "ANT", "ARE", "ART", "ATE", "CAT", "EAR", "EAT", "ERA", "ETA",
	"NET", "RAT", "SAT", "SEA", "SET", "TAN", "TAR", "TEA", "TEN",
	"ACTS", "ANTS", "ARES", "ARTS", "CARE", "CART", "CAST", "CATS", "EARS",
	"EAST", "EATS", "ERAS", "NEAT", "RACE", "RANT", "RATE", "RATS", "REST",
	"SCAT", "SEAT", "STAR", "TARS", "TEAS", "TENS",
	"CARES", "CARTS", "CRATE", "REACT", "RACES", "RATES", "STARE", "TRACE",
	"CRATES", "REACTS", "TRACES", "CASTER", "RECAST",
}

func mustGraph(t *testing.T, words ...string) *wordgraph.Graph {
	t.Helper()
	g, err := graphmaker.MakeGraph(words, false)
	require.NoError(t, err)
	return g
}

func mustRack(t *testing.T, letters string) *tilemapping.Rack {
	t.Helper()
	r, err := tilemapping.RackFromString(letters, ld)
	require.NoError(t, err)
	return r
}

func mustTiles(t *testing.T, letters string) []tilemapping.Tile {
	t.Helper()
	ts, err := ld.TilesFor(letters)
	require.NoError(t, err)
	return ts
}

// boardWith sets the given rows on a standard board.
func boardWith(t *testing.T, rows map[int]string) *board.GameBoard {
	t.Helper()
	all := make([]string, board.DefaultDim)
	for r, s := range rows {
		all[r] = s
	}
	b, err := board.FromRows(all, ld)
	require.NoError(t, err)
	return b
}

func plainBoard() *board.GameBoard {
	rows := make([]string, board.DefaultDim)
	for i := range rows {
		rows[i] = strings.Repeat(" ", board.DefaultDim)
	}
	return board.MakeBoard(rows)
}

func moveStrings(ms []*move.Move) []string {
	s := make([]string, len(ms))
	for i, m := range ms {
		s[i] = m.ShortDescription()
	}
	sort.Strings(s)
	return s
}

// perpendicularRun reads the word crossing (row, col) along dir.
func perpendicularRun(b *board.GameBoard, row, col int, dir move.Direction) string {
	dr, dc := dir.Delta()
	for b.HasTile(row-dr, col-dc) {
		row -= dr
		col -= dc
	}
	var sb strings.Builder
	for {
		t, ok := b.Tile(row, col)
		if !ok {
			break
		}
		sb.WriteRune(t.Letter)
		row += dr
		col += dc
	}
	return sb.String()
}

// checkPlay plays m on a copy of b and checks that the main word and every
// crossword it forms are words.
func checkPlay(t *testing.T, b *board.GameBoard, g wordgraph.WordGraph, m *move.Move) {
	t.Helper()
	c := b.Copy()
	require.NoError(t, c.PlayMove(m), m.String())
	row, col, _ := m.CoordsAndVertical()
	dr, dc := m.Direction().Delta()
	require.Equal(t, m.Word(), perpendicularRun(c, row, col, m.Direction()), m.String())
	require.True(t, wordgraph.FindWord(g, m.Word()), m.String())
	for i, tile := range m.Tiles() {
		if tile == (tilemapping.Tile{}) {
			continue
		}
		xw := perpendicularRun(c, row+dr*i, col+dc*i, m.Direction().Perpendicular())
		if len(xw) > 1 {
			require.True(t, wordgraph.FindWord(g, xw), "%v forms %v", m, xw)
		}
	}
}

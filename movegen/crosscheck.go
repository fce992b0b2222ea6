package movegen

import (
	"strings"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/scorer"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

// DefaultCrossCacheSize is the number of crosswords a search remembers.
const DefaultCrossCacheSize = 4096

// crossChecker tests the words a new tile forms across the main word.
// Dictionary lookups are memoized in an LRU cache that lives as long as
// one search.
type crossChecker struct {
	b     board.Reader
	graph wordgraph.WordGraph
	lru   *simplelru.LRU

	hits, misses int
}

func newCrossChecker(b board.Reader, g wordgraph.WordGraph, size int) *crossChecker {
	if size <= 0 {
		size = DefaultCrossCacheSize
	}
	// NewLRU only fails for a size below one.
	lru, _ := simplelru.NewLRU(size, nil)
	return &crossChecker{b: b, graph: g.Unconstrained(), lru: lru}
}

// crossword returns the word formed across dir when t goes on (row, col),
// and where it starts. The word is empty when t would have no neighbour
// across.
func (c *crossChecker) crossword(row, col int, dir move.Direction,
	t tilemapping.Tile) (word string, startRow, startCol int) {

	dr, dc := dir.Perpendicular().Delta()
	if !occupied(c.b, row-dr, col-dc) && !occupied(c.b, row+dr, col+dc) {
		return "", row, col
	}
	startRow, startCol = row, col
	for occupied(c.b, startRow-dr, startCol-dc) {
		startRow -= dr
		startCol -= dc
	}
	var sb strings.Builder
	for r, cl := startRow, startCol; ; r, cl = r+dr, cl+dc {
		if r == row && cl == col {
			sb.WriteRune(t.Letter)
			continue
		}
		bt, ok := c.b.Tile(r, cl)
		if !ok {
			break
		}
		sb.WriteRune(bt.Letter)
	}
	return sb.String(), startRow, startCol
}

// check reports whether t may go on (row, col) in a play along dir, and
// what the crossword it forms scores.
func (c *crossChecker) check(row, col int, dir move.Direction, t tilemapping.Tile) (int, bool) {
	word, sr, sc := c.crossword(row, col, dir, t)
	if word == "" {
		return 0, true
	}
	if !c.valid(word) {
		return 0, false
	}
	return scorer.Score(c.b, word, []tilemapping.Tile{t}, sr, sc, dir.Perpendicular()), true
}

func (c *crossChecker) valid(word string) bool {
	if v, ok := c.lru.Get(word); ok {
		c.hits++
		return v.(bool)
	}
	c.misses++
	v := c.graph.IsWord(word)
	c.lru.Add(word, v)
	return v
}

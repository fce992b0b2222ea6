// Package movegen contains the move-generating functions. Plays are grown
// from each hook square along a row or column, walking the word graph as
// tiles are laid, and collected in a bounded MoveRanking.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/scorer"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

// BoardMoveFinder finds plays on a board. It keeps no per-search state, so
// a single finder can serve concurrent searches.
type BoardMoveFinder struct {
	graph          wordgraph.WordGraph
	crossCacheSize int
}

func NewBoardMoveFinder(g wordgraph.WordGraph) *BoardMoveFinder {
	return &BoardMoveFinder{graph: g, crossCacheSize: DefaultCrossCacheSize}
}

// SetCrossCacheSize sets how many crosswords each search remembers.
func (f *BoardMoveFinder) SetCrossCacheSize(n int) {
	if n > 0 {
		f.crossCacheSize = n
	}
}

// FindBoardMoves returns the best plays the rack can make on the board.
func FindBoardMoves(b board.Reader, rack *tilemapping.Rack, g wordgraph.WordGraph) *MoveRanking {
	return NewBoardMoveFinder(g).GenAll(b, rack)
}

// FindMovesAt returns the best plays that cover the hook at (row, col).
func FindMovesAt(b board.Reader, rack *tilemapping.Rack, g wordgraph.WordGraph, row, col int) *MoveRanking {
	return NewBoardMoveFinder(g).GenAt(b, rack, row, col)
}

// GenAll tries every hook. On an empty board the only hook is the centre
// square, and only horizontal plays are made from it.
func (f *BoardMoveFinder) GenAll(b board.Reader, rack *tilemapping.Rack) *MoveRanking {
	s := f.newSearch(b, rack)
	if rack.Len() == 0 {
		return s.ranking
	}
	n := b.Size()
	if b.IsEmpty() {
		s.genAtHook(n/2, n/2, move.Horizontal)
	} else {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				s.genAtHook(row, col, move.Horizontal)
				s.genAtHook(row, col, move.Vertical)
			}
		}
	}
	s.done()
	return s.ranking
}

// GenAt tries the one hook at (row, col), in both directions.
func (f *BoardMoveFinder) GenAt(b board.Reader, rack *tilemapping.Rack, row, col int) *MoveRanking {
	s := f.newSearch(b, rack)
	if rack.Len() == 0 {
		return s.ranking
	}
	s.genAtHook(row, col, move.Horizontal)
	if !b.IsEmpty() {
		s.genAtHook(row, col, move.Vertical)
	}
	s.done()
	return s.ranking
}

// search is the state of one call. Positions along the line being searched
// are indices into that row or column.
type search struct {
	b       board.Reader
	graph   wordgraph.WordGraph
	hooks   *Hooks
	cross   *crossChecker
	rack    *rackLetters
	ranking *MoveRanking
	dim     int

	dir     move.Direction
	fixed   int // the row of a horizontal line, or the column of a vertical one
	start   int
	hookEnd int

	word   []rune
	tiles  []tilemapping.Tile
	placed []tilemapping.Tile
}

func (f *BoardMoveFinder) newSearch(b board.Reader, rack *tilemapping.Rack) *search {
	return &search{
		b:       b,
		graph:   f.graph,
		hooks:   MakeHooks(b),
		cross:   newCrossChecker(b, f.graph, f.crossCacheSize),
		rack:    newRackLetters(rack),
		ranking: NewMoveRanking(),
		dim:     b.Size(),
		word:    make([]rune, 0, b.Size()),
		tiles:   make([]tilemapping.Tile, 0, b.Size()),
		placed:  make([]tilemapping.Tile, 0, rack.Len()),
	}
}

func (s *search) done() {
	log.Debug().Int("nmoves", s.ranking.Len()).Int("hooks", s.hooks.Count()).
		Int("cross-hits", s.cross.hits).Int("cross-misses", s.cross.misses).
		Msg("found-board-moves")
}

func (s *search) cell(pos int) (int, int) {
	if s.dir == move.Vertical {
		return pos, s.fixed
	}
	return s.fixed, pos
}

func (s *search) tile(pos int) (tilemapping.Tile, bool) {
	row, col := s.cell(pos)
	return s.b.Tile(row, col)
}

func (s *search) occupied(pos int) bool {
	_, ok := s.tile(pos)
	return ok
}

func (s *search) isHook(pos int) bool {
	row, col := s.cell(pos)
	return s.hooks.IsHook(row, col)
}

// genAtHook grows every play along dir whose first hook is (row, col).
// Plays reaching back over an earlier hook are left to that hook, so no
// play is found twice in the same direction.
func (s *search) genAtHook(row, col int, dir move.Direction) {
	if !s.hooks.IsHook(row, col) {
		return
	}
	s.dir = dir
	h := col
	s.fixed = row
	if dir == move.Vertical {
		h, s.fixed = row, col
	}

	// Walk back while the rack can still fill the empty squares crossed.
	// The hook itself takes one tile.
	first, cost := h, 1
	for first > 0 {
		prev := first - 1
		if s.isHook(prev) {
			break
		}
		if !s.occupied(prev) {
			if cost == s.rack.size {
				break
			}
			cost++
		}
		first = prev
	}
	// A play covering the hook must also cover the tiles right after it.
	s.hookEnd = h
	for s.hookEnd+1 < s.dim && s.occupied(s.hookEnd+1) {
		s.hookEnd++
	}

	for p := first; p <= h; p++ {
		if p > 0 && s.occupied(p-1) {
			continue
		}
		s.start = p
		s.extend(p, s.graph.RootNodeIndex(), 0)
	}
}

// extend follows the tiles already on the board from pos, then tries to
// place a rack tile on the next empty square.
func (s *search) extend(pos int, nodeIdx uint32, crossScore int) {
	n := len(s.word)
	for ; pos < s.dim; pos++ {
		t, ok := s.tile(pos)
		if !ok {
			break
		}
		nodeIdx = s.graph.NextNodeIdx(nodeIdx, t.Letter)
		if nodeIdx == wordgraph.NullNodeIndex {
			break
		}
		s.word = append(s.word, t.Letter)
		s.tiles = append(s.tiles, tilemapping.Tile{})
	}
	if nodeIdx != wordgraph.NullNodeIndex {
		s.tryEmpty(pos, nodeIdx, crossScore)
	}
	s.word = s.word[:n]
	s.tiles = s.tiles[:n]
}

func (s *search) tryEmpty(pos int, nodeIdx uint32, crossScore int) {
	if pos > s.hookEnd && s.graph.IsTerminal(nodeIdx) {
		s.record(crossScore)
	}
	if pos >= s.dim || len(s.placed) == s.rack.size {
		return
	}
	row, col := s.cell(pos)
	rl := s.rack
	for i, t := range rl.tiles {
		if rl.counts[i] == 0 {
			continue
		}
		next := s.graph.NextNodeIdx(nodeIdx, t.Letter)
		if next == wordgraph.NullNodeIndex {
			continue
		}
		cs, ok := s.cross.check(row, col, s.dir, t)
		if !ok {
			continue
		}
		rl.counts[i]--
		s.place(pos, next, crossScore+cs, t)
		rl.counts[i]++
	}
	if rl.blanks > 0 {
		s.graph.IterateChildren(nodeIdx, func(letter rune, next uint32) {
			t := tilemapping.BlankTile().As(letter)
			cs, ok := s.cross.check(row, col, s.dir, t)
			if !ok {
				return
			}
			rl.blanks--
			s.place(pos, next, crossScore+cs, t)
			rl.blanks++
		})
	}
}

func (s *search) place(pos int, nodeIdx uint32, crossScore int, t tilemapping.Tile) {
	s.word = append(s.word, t.Letter)
	s.tiles = append(s.tiles, t)
	s.placed = append(s.placed, t)
	s.extend(pos+1, nodeIdx, crossScore)
	s.word = s.word[:len(s.word)-1]
	s.tiles = s.tiles[:len(s.tiles)-1]
	s.placed = s.placed[:len(s.placed)-1]
}

func (s *search) record(crossScore int) {
	word := string(s.word)
	if !s.graph.Accepts(word) {
		return
	}
	row, col := s.cell(s.start)
	score := crossScore + scorer.Score(s.b, word, s.placed, row, col, s.dir)
	if lowest := s.ranking.Min(); s.ranking.Len() == s.ranking.Cap() && score <= lowest.Score() {
		return
	}
	s.ranking.Insert(move.NewScoringMove(word, s.tiles, s.rack.remaining(),
		row, col, s.dir, score))
}

package movegen

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/scorer"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

var (
	ErrNoTiles          = errors.New("no tiles to place")
	ErrTooManyTiles     = fmt.Errorf("a play places at most %d tiles", tilemapping.RackTileLimit)
	ErrOffBoard         = errors.New("play runs off the board")
	ErrNoHook           = errors.New("play does not connect to the board")
	ErrInvalidWord      = errors.New("not a word")
	ErrInvalidCrossword = errors.New("crossword is not a word")
)

// ValidatePlay checks a play typed in by a user: the tiles go, in order, on
// the empty squares from (row, col) along dir, skipping squares that hold
// tiles. Tiles already on the board just before (row, col) belong to the
// play too. If rack is not nil the tiles must come from it, and the move's
// leave is what remains.
func ValidatePlay(b board.Reader, g wordgraph.WordGraph, row, col int, dir move.Direction,
	placed []tilemapping.Tile, rack *tilemapping.Rack) (*move.Move, error) {

	if len(placed) == 0 {
		return nil, ErrNoTiles
	}
	if len(placed) > tilemapping.RackTileLimit {
		return nil, ErrTooManyTiles
	}
	if dir != move.Horizontal && dir != move.Vertical {
		return nil, fmt.Errorf("bad direction %v", dir)
	}
	n := b.Size()
	inBounds := func(r, c int) bool { return r >= 0 && c >= 0 && r < n && c < n }
	if !inBounds(row, col) {
		return nil, ErrOffBoard
	}
	var leave []tilemapping.Tile
	if rack != nil {
		var err error
		leave, err = rack.Leave(placed)
		if err != nil {
			return nil, err
		}
	}

	dr, dc := dir.Delta()
	sr, sc := row, col
	for occupied(b, sr-dr, sc-dc) {
		sr -= dr
		sc -= dc
	}

	cross := newCrossChecker(b, g, len(placed))
	word := make([]rune, 0, n)
	tiles := make([]tilemapping.Tile, 0, n)
	hooked, crossed := false, false
	crossScore, next := 0, 0
	for r, c := sr, sc; inBounds(r, c); r, c = r+dr, c+dc {
		if bt, ok := b.Tile(r, c); ok {
			word = append(word, bt.Letter)
			tiles = append(tiles, tilemapping.Tile{})
			continue
		}
		if next == len(placed) {
			break
		}
		t := placed[next]
		next++
		if t.Blank && !t.IsAssigned() {
			return nil, fmt.Errorf("blank at %v has no letter", move.ToBoardGameCoords(r, c, dir == move.Vertical))
		}
		if IsHook(b, r, c) {
			hooked = true
		}
		if xw, _, _ := cross.crossword(r, c, dir, t); xw != "" {
			cs, ok := cross.check(r, c, dir, t)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrInvalidCrossword, xw)
			}
			crossed = true
			crossScore += cs
		}
		word = append(word, t.Letter)
		tiles = append(tiles, t)
	}
	if next < len(placed) {
		return nil, ErrOffBoard
	}
	if !hooked {
		return nil, ErrNoHook
	}

	w := string(word)
	score := crossScore
	if utf8.RuneCountInString(w) == 1 {
		// a lone tile only makes its crossword
		if !crossed {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWord, w)
		}
	} else {
		if !g.IsWord(w) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWord, w)
		}
		score += scorer.Score(b, w, placed, sr, sc, dir)
	}
	return move.NewScoringMove(w, tiles, leave, sr, sc, dir, score), nil
}

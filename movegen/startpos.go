package movegen

import (
	"errors"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/scorer"
)

var ErrBoardNotEmpty = errors.New("board is not empty")

// BestStartingPosition places a word found by FindRackWords as the opening
// play. The word slides left from the centre square across every start
// that still covers the centre; the highest scoring placement wins, and
// of equal scores the rightmost start.
func BestStartingPosition(b board.Reader, m *move.Move) (*move.Move, error) {
	if !b.IsEmpty() {
		return nil, ErrBoardNotEmpty
	}
	n := b.Size()
	centre := n / 2
	placed := m.Placed()
	word := m.Word()
	length := len(placed)
	if length == 0 {
		return nil, ErrNoTiles
	}
	if length > n {
		return nil, ErrOffBoard
	}

	var best *move.Move
	for col := centre; col >= 0 && col > centre-length; col-- {
		if col+length > n {
			continue
		}
		score := scorer.Score(b, word, placed, centre, col, move.Horizontal)
		if best == nil || score > best.Score() {
			best = move.NewScoringMove(word, placed, m.Leave(), centre, col, move.Horizontal, score)
		}
	}
	if best == nil {
		return nil, ErrOffBoard
	}
	return best, nil
}

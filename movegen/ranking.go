package movegen

import (
	"sort"

	"github.com/domino14/wordplay/move"
)

// MaxMoves is how many moves a search keeps.
const MaxMoves = 50

// MoveRanking holds the best distinct moves seen so far, highest score
// first. Moves with equal scores stay in the order they were inserted.
type MoveRanking struct {
	moves    []*move.Move
	keys     map[move.Key]struct{}
	capacity int
}

// NewMoveRanking returns an empty ranking of MaxMoves entries.
func NewMoveRanking() *MoveRanking {
	return NewMoveRankingSize(MaxMoves)
}

// NewMoveRankingSize returns an empty ranking that keeps capacity moves.
func NewMoveRankingSize(capacity int) *MoveRanking {
	if capacity <= 0 {
		capacity = MaxMoves
	}
	return &MoveRanking{
		moves:    make([]*move.Move, 0, capacity),
		keys:     make(map[move.Key]struct{}, capacity),
		capacity: capacity,
	}
}

// Insert adds m unless an equal move is already ranked, or the ranking is
// full and m does not beat the lowest score. It reports whether m was
// added.
func (r *MoveRanking) Insert(m *move.Move) bool {
	key := m.Key()
	if _, dup := r.keys[key]; dup {
		return false
	}
	if len(r.moves) == r.capacity {
		last := r.moves[len(r.moves)-1]
		if m.Score() <= last.Score() {
			return false
		}
		delete(r.keys, last.Key())
		r.moves = r.moves[:len(r.moves)-1]
	}
	idx := sort.Search(len(r.moves), func(i int) bool {
		return r.moves[i].Score() < m.Score()
	})
	r.moves = append(r.moves, nil)
	copy(r.moves[idx+1:], r.moves[idx:])
	r.moves[idx] = m
	r.keys[key] = struct{}{}
	return true
}

// Moves returns the ranked moves. The slice is a copy.
func (r *MoveRanking) Moves() []*move.Move {
	return append([]*move.Move(nil), r.moves...)
}

func (r *MoveRanking) Len() int {
	return len(r.moves)
}

func (r *MoveRanking) Cap() int {
	return r.capacity
}

// Min is the lowest ranked move, or nil.
func (r *MoveRanking) Min() *move.Move {
	if len(r.moves) == 0 {
		return nil
	}
	return r.moves[len(r.moves)-1]
}

// Best is the highest ranked move, or nil.
func (r *MoveRanking) Best() *move.Move {
	if len(r.moves) == 0 {
		return nil
	}
	return r.moves[0]
}

// Top returns at most n of the best moves.
func (r *MoveRanking) Top(n int) []*move.Move {
	if n <= 0 || n > len(r.moves) {
		n = len(r.moves)
	}
	return append([]*move.Move(nil), r.moves[:n]...)
}

package movegen

import "github.com/domino14/wordplay/board"

// Hooks are the empty squares a new play must cover: squares next to a
// tile already on the board, or the centre square of an empty board.
// They are worked out once per search.
type Hooks struct {
	hooks []bool
	dim   int
	empty bool
}

func MakeHooks(b board.Reader) *Hooks {
	n := b.Size()
	h := &Hooks{hooks: make([]bool, n*n), dim: n, empty: b.IsEmpty()}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			h.hooks[row*n+col] = IsHook(b, row, col)
		}
	}
	return h
}

// IsHook reads the precomputed grid. Off-board squares are not hooks.
func (h *Hooks) IsHook(row, col int) bool {
	if row < 0 || col < 0 || row >= h.dim || col >= h.dim {
		return false
	}
	return h.hooks[row*h.dim+col]
}

// Count is the number of hook squares.
func (h *Hooks) Count() int {
	n := 0
	for _, hook := range h.hooks {
		if hook {
			n++
		}
	}
	return n
}

// IsHook tells whether a play through (row, col) would connect to the
// board. A square holding a tile is never a hook.
func IsHook(b board.Reader, row, col int) bool {
	n := b.Size()
	if row < 0 || col < 0 || row >= n || col >= n {
		return false
	}
	if b.IsEmpty() {
		return row == n/2 && col == n/2
	}
	if occupied(b, row, col) {
		return false
	}
	return occupied(b, row-1, col) || occupied(b, row+1, col) ||
		occupied(b, row, col-1) || occupied(b, row, col+1)
}

func occupied(b board.Reader, row, col int) bool {
	_, ok := b.Tile(row, col)
	return ok
}

package move

const (
	// layout of Key.packed
	// 32       24       16       8
	// xxxxxxxx xxxxxxxx xxxxxxxx xxxxxxxx
	// ssssssss ssssssss ssssbrrr rrcccccc
	// s - score
	// b - bingo
	// r - row (31 max)
	// c - col (63 max)

	keyRowShift   = 6
	keyBingoShift = 11
	keyScoreShift = 12

	keyColBitmask = (1 << 6) - 1
	keyRowBitmask = (1 << 5) - 1
)

// Key is the identity of a move for de-duplication. Two moves with equal
// keys are the same play as far as a move list is concerned.
type Key struct {
	word   string
	packed uint32
}

// Key packs everything Equals compares.
func (m *Move) Key() Key {
	k := uint32(m.colStart&keyColBitmask) |
		uint32(m.rowStart&keyRowBitmask)<<keyRowShift |
		uint32(m.score)<<keyScoreShift
	if m.bingo {
		k |= 1 << keyBingoShift
	}
	return Key{word: m.word, packed: k}
}

// Word is the word the key was made from.
func (k Key) Word() string {
	return k.word
}

func (k Key) Score() int {
	return int(k.packed >> keyScoreShift)
}

func (k Key) Row() int {
	return int((k.packed >> keyRowShift) & keyRowBitmask)
}

func (k Key) Col() int {
	return int(k.packed & keyColBitmask)
}

func (k Key) Bingo() bool {
	return k.packed&(1<<keyBingoShift) != 0
}

package movegen

import "github.com/domino14/wordplay/tilemapping"

// rackLetters is a rack grouped by distinct letter. Both finders take a
// letter by decrementing its count, so a repeated letter is tried once per
// position.
type rackLetters struct {
	// one representative tile per distinct letter, in alphabetical order
	tiles  []tilemapping.Tile
	counts []int
	blanks int
	size   int
}

func newRackLetters(rack *tilemapping.Rack) *rackLetters {
	rl := &rackLetters{size: rack.Len()}
	for _, t := range rack.Sorted().Tiles() {
		if t.Blank {
			rl.blanks++
			continue
		}
		if n := len(rl.tiles); n > 0 && rl.tiles[n-1].Letter == t.Letter {
			rl.counts[n-1]++
			continue
		}
		rl.tiles = append(rl.tiles, t)
		rl.counts = append(rl.counts, 1)
	}
	return rl
}

// remaining is the current leave, blanks last.
func (rl *rackLetters) remaining() []tilemapping.Tile {
	leave := make([]tilemapping.Tile, 0, rl.size)
	for i, t := range rl.tiles {
		for j := 0; j < rl.counts[i]; j++ {
			leave = append(leave, t)
		}
	}
	for j := 0; j < rl.blanks; j++ {
		leave = append(leave, tilemapping.BlankTile())
	}
	return leave
}

package tilemapping

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

var ErrRackTooBig = fmt.Errorf("a rack holds at most %d tiles", RackTileLimit)

// Rack is an ordered set of at most seven tiles. The move generator only
// ever reads a rack; use Tiles to get a copy that can be modified.
type Rack struct {
	tiles []Tile
}

// NewRack creates a rack from tiles.
func NewRack(tiles []Tile) (*Rack, error) {
	if len(tiles) > RackTileLimit {
		return nil, ErrRackTooBig
	}
	r := &Rack{tiles: make([]Tile, len(tiles))}
	copy(r.tiles, tiles)
	return r, nil
}

// RackFromString creates a rack such as "AEINST?" using the letter
// distribution for point values.
func RackFromString(rack string, ld *LetterDistribution) (*Rack, error) {
	if ld == nil {
		return nil, errors.New("nil letter distribution")
	}
	tiles := []Tile{}
	for _, ch := range rack {
		t, err := ld.TileFor(ch)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return NewRack(tiles)
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return Tiles(r.tiles).String()
}

// Len is the number of tiles on the rack.
func (r *Rack) Len() int {
	return len(r.tiles)
}

// Tile returns the tile at idx.
func (r *Rack) Tile(idx int) Tile {
	return r.tiles[idx]
}

// Tiles returns a copy of the rack's tiles.
func (r *Rack) Tiles() []Tile {
	ts := make([]Tile, len(r.tiles))
	copy(ts, r.tiles)
	return ts
}

// Points is the face value of every tile on the rack.
func (r *Rack) Points() int {
	return lo.SumBy(r.tiles, func(t Tile) int { return t.Points })
}

// NumBlanks counts the blanks on the rack.
func (r *Rack) NumBlanks() int {
	return lo.CountBy(r.tiles, func(t Tile) bool { return t.Blank })
}

// Leave returns the tiles that remain after the given tiles are played from
// this rack. A played blank (whatever it was assigned) consumes a blank.
func (r *Rack) Leave(played []Tile) ([]Tile, error) {
	remaining := r.Tiles()
	for _, p := range played {
		idx := -1
		for i, t := range remaining {
			if (p.Blank && t.Blank) || (!p.Blank && !t.Blank && t.Letter == p.Letter) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("tile %v is not on rack %v", p, r)
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return remaining, nil
}

// Sorted returns a copy of the rack with tiles in alphabetical order and
// blanks last.
func (r *Rack) Sorted() *Rack {
	ts := r.Tiles()
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Blank != ts[j].Blank {
			return !ts[i].Blank
		}
		return ts[i].Letter < ts[j].Letter
	})
	return &Rack{tiles: ts}
}

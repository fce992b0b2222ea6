package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/scorer"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

type rackFinder struct {
	graph   wordgraph.WordGraph
	letters *rackLetters
	placed  []tilemapping.Tile
	ranking *MoveRanking
}

// FindRackWords finds every word that can be spelled from the rack alone,
// ignoring the board. A blank can stand for any letter the graph allows
// at its position. Each word becomes a move at the centre square, scored
// by face value.
func FindRackWords(rack *tilemapping.Rack, g wordgraph.WordGraph) *MoveRanking {
	f := &rackFinder{
		graph:   g,
		letters: newRackLetters(rack),
		placed:  make([]tilemapping.Tile, 0, rack.Len()),
		ranking: NewMoveRanking(),
	}
	if rack.Len() > 0 {
		f.walk(g.RootNodeIndex())
	}
	log.Debug().Str("rack", rack.String()).Int("nmoves", f.ranking.Len()).Msg("found-rack-words")
	return f.ranking
}

func (f *rackFinder) walk(nodeIdx uint32) {
	rl := f.letters
	for i, t := range rl.tiles {
		if rl.counts[i] == 0 {
			continue
		}
		next := f.graph.NextNodeIdx(nodeIdx, t.Letter)
		if next == wordgraph.NullNodeIndex {
			continue
		}
		rl.counts[i]--
		f.visit(next, t)
		rl.counts[i]++
	}
	if rl.blanks > 0 {
		f.graph.IterateChildren(nodeIdx, func(letter rune, next uint32) {
			rl.blanks--
			f.visit(next, tilemapping.BlankTile().As(letter))
			rl.blanks++
		})
	}
}

func (f *rackFinder) visit(nodeIdx uint32, t tilemapping.Tile) {
	f.placed = append(f.placed, t)
	if f.graph.IsTerminal(nodeIdx) {
		word := tilemapping.Tiles(f.placed).Word()
		if f.graph.Accepts(word) {
			f.ranking.Insert(move.NewRackMove(f.placed, f.letters.remaining(),
				scorer.RackScore(f.placed)))
		}
	}
	if len(f.placed) < f.letters.size {
		f.walk(nodeIdx)
	}
	f.placed = f.placed[:len(f.placed)-1]
}

// Package scorer computes the points a placement is worth.
package scorer

import (
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tilemapping"
)

// Score scores word laid from (row, col) in direction dir, where placed
// are the new tiles in the order they fill the word's empty cells. Tiles
// already on the board count at face value and never trigger a bonus. New
// tiles take the letter bonus of their square, and each word bonus under a
// new tile multiplies the whole word. Placing a full rack adds the bingo
// bonus.
func Score(b board.Reader, word string, placed []tilemapping.Tile,
	row, col int, dir move.Direction) int {

	if len(placed) == 0 || (dir != move.Horizontal && dir != move.Vertical) {
		return 0
	}
	dr, dc := dir.Delta()
	sum, wordMultiplier, next := 0, 1, 0
	n := utf8.RuneCountInString(word)
	for i := 0; i < n; i++ {
		r, c := row+dr*i, col+dc*i
		if t, ok := b.Tile(r, c); ok {
			sum += t.Points
			continue
		}
		if next == len(placed) {
			break
		}
		bonus := b.Bonus(r, c)
		sum += placed[next].Points * bonus.LetterMultiplier()
		wordMultiplier *= bonus.WordMultiplier()
		next++
	}
	score := sum * wordMultiplier
	if len(placed) == tilemapping.RackTileLimit {
		score += move.BingoBonus
	}
	return score
}

// RackScore scores a word made only from rack tiles, off the board: the
// face value of the tiles plus the bingo bonus for a full rack.
func RackScore(placed []tilemapping.Tile) int {
	if len(placed) == 0 {
		return 0
	}
	score := lo.SumBy(placed, func(t tilemapping.Tile) int { return t.Points })
	if len(placed) == tilemapping.RackTileLimit {
		score += move.BingoBonus
	}
	return score
}

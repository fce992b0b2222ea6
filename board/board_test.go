package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tilemapping"
)

func TestStandardLayoutSymmetry(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	n := b.Dim()
	is.Equal(n, DefaultDim)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			is.Equal(b.Bonus(r, c), b.Bonus(c, r))
			is.Equal(b.Bonus(r, c), b.Bonus(n-1-c, n-1-r))
		}
	}
	is.Equal(b.Bonus(0, 0), Bonus3WS)
	is.Equal(b.Bonus(7, 7), Bonus2WS)
	is.Equal(b.Bonus(1, 5), Bonus3LS)
	is.Equal(b.Bonus(0, 3), Bonus2LS)
	is.Equal(b.Bonus(4, 4), Bonus2WS)
	is.Equal(b.Bonus(0, 1), NoBonus)
	is.Equal(b.Bonus(-1, 3), NoBonus)
	is.Equal(b.Bonus(3, 15), NoBonus)
}

func TestMultipliers(t *testing.T) {
	is := is.New(t)
	is.Equal(Bonus2LS.LetterMultiplier(), 2)
	is.Equal(Bonus3LS.LetterMultiplier(), 3)
	is.Equal(Bonus2WS.LetterMultiplier(), 1)
	is.Equal(Bonus2WS.WordMultiplier(), 2)
	is.Equal(Bonus3WS.WordMultiplier(), 3)
	is.Equal(NoBonus.WordMultiplier(), 1)
	is.Equal(Bonus3WS.String(), "TW")
}

func TestFromRows(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	rows := make([]string, 15)
	rows[7] = ".......CaT"
	b, err := FromRows(rows, ld)
	is.NoErr(err)
	is.True(!b.IsEmpty())
	is.Equal(b.TilesPlayed(), 3)

	tile, ok := b.Tile(7, 7)
	is.True(ok)
	is.Equal(tile, tilemapping.Tile{Letter: 'C', Points: 3})
	tile, ok = b.Tile(7, 8)
	is.True(ok)
	is.True(tile.IsAssigned())
	is.Equal(tile.Points, 0)

	tile, ok = b.TileAt(7*15 + 9)
	is.True(ok)
	is.Equal(tile.Letter, 'T')
	_, ok = b.TileAt(7*15 + 10)
	is.True(!ok)
	_, ok = b.Tile(15, 0)
	is.True(!ok)
	_, ok = b.TileAt(-1)
	is.True(!ok)

	is.Equal(b.Rows()[7], ".......CaT.....")
	is.Equal(b.Rows()[0], "...............")

	_, err = FromRows([]string{"A?"}, ld)
	is.True(err != nil)
	_, err = FromRows([]string{"ABCDEFGHIJKLMNOP"}, ld)
	is.True(err != nil)
}

func TestSetRowReplaces(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	b := NewStandardBoard()
	_, err := b.SetRow(3, "QI", ld)
	is.NoErr(err)
	played, err := b.SetRow(3, "  ZA", ld)
	is.NoErr(err)
	is.Equal(tilemapping.Tiles(played).String(), "ZA")
	is.Equal(b.TilesPlayed(), 2)
	is.True(!b.HasTile(3, 0))
	is.True(b.HasTile(3, 2))
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	is.NoErr(b.SetTile(7, 7, tilemapping.Tile{Letter: 'A', Points: 1}))
	c := b.Copy()
	c.RemoveTile(7, 7)
	is.True(b.HasTile(7, 7))
	is.True(c.IsEmpty())
	is.True(!b.IsEmpty())
	is.Equal(b.SetTile(15, 15, tilemapping.Tile{Letter: 'A'}), ErrOutOfBounds)
}

func TestPlayMove(t *testing.T) {
	ld := tilemapping.EnglishLetterDistribution()
	b, err := FromRows([]string{"", "", "", "", "", "", "", ".......A"}, ld)
	require.NoError(t, err)
	ts, err := ld.TilesFor("CT")
	require.NoError(t, err)
	m := move.NewScoringMove("CAT", []tilemapping.Tile{ts[0], {}, ts[1]}, nil, 6, 7, move.Vertical, 5)
	require.NoError(t, b.PlayMove(m))
	assert.Equal(t, "C", tileString(b, 6, 7))
	assert.Equal(t, "T", tileString(b, 8, 7))
	assert.Equal(t, 3, b.TilesPlayed())

	// CAT again no longer fits: C is already there
	assert.Error(t, b.PlayMove(m))
	assert.Equal(t, 3, b.TilesPlayed())
}

func tileString(b *GameBoard, row, col int) string {
	t, ok := b.Tile(row, col)
	if !ok {
		return ""
	}
	return t.String()
}

func TestSetFromPlaintext(t *testing.T) {
	is := is.New(t)
	ld := tilemapping.EnglishLetterDistribution()
	b := NewStandardBoard()
	tip, err := b.SetToPosition(VsOxy, ld)
	is.NoErr(err)
	is.Equal(tileString(b, 0, 1), "P")
	is.Equal(tileString(b, 10, 5), "n")
	is.Equal(tileString(b, 14, 10), "G")
	is.True(!b.HasTile(0, 0))
	is.Equal(len(tip.OnBoard), b.TilesPlayed())
	is.Equal(tip.Racks, []string{"ADDELOR", "OXPBAZE"})

	tip, err = b.SetToPosition(VsEd, ld)
	is.NoErr(err)
	is.Equal(tileString(b, 2, 14), "d")
	is.Equal(tip.Racks[0], "AFGIIIS")

	_, err = b.SetFromPlaintext("|A B|", ld)
	is.True(err != nil)
}

func TestDisplayText(t *testing.T) {
	ld := tilemapping.EnglishLetterDistribution()
	b, err := FromRows([]string{"QI"}, ld)
	require.NoError(t, err)
	txt := b.ToDisplayText()
	assert.Contains(t, txt, " 1|Q I . ' . . . = . . . ' . . = |")
	assert.Contains(t, txt, "   A B C D E F G H I J K L M N O")
}

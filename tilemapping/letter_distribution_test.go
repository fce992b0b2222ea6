package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordplay/config"
)

func TestEnglishScores(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	expected := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
		'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10, '?': 0,
	}
	for l, p := range expected {
		is.Equal(ld.Score(l), p)
	}
	is.Equal(len(ld.Letters()), 27)
	is.Equal(ld.Quantity('E'), 12)
	is.True(ld.IsVowel('a'))
	is.True(!ld.IsVowel('B'))
}

func TestScanLetterDistribution(t *testing.T) {
	is := is.New(t)
	ld, err := ScanLetterDistribution(strings.NewReader("?,2,0,0\nA,3,1,1\nÑ,1,8,0\n"))
	is.NoErr(err)
	is.Equal(ld.Score('Ñ'), 8)
	is.Equal(ld.Letters(), []rune{'?', 'A', 'Ñ'})

	_, err = ScanLetterDistribution(strings.NewReader("A,3,one,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader("A,3,1,1\nA,3,1,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution(strings.NewReader(""))
	is.True(err != nil)
}

func TestTileFor(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	tile, err := ld.TileFor('Q')
	is.NoErr(err)
	is.Equal(tile, Tile{Letter: 'Q', Points: 10})
	tile, err = ld.TileFor('?')
	is.NoErr(err)
	is.Equal(tile, BlankTile())
	tile, err = ld.TileFor('q')
	is.NoErr(err)
	is.Equal(tile, Tile{Letter: 'Q', Points: 0, Blank: true})
	_, err = ld.TileFor('3')
	is.True(err != nil)
}

func TestNamedLetterDistribution(t *testing.T) {
	is := is.New(t)
	ld, err := NamedLetterDistribution(config.DefaultConfig(), "English")
	is.NoErr(err)
	is.Equal(ld.Name, "english")
	_, err = NamedLetterDistribution(config.DefaultConfig(), "klingon")
	is.True(err != nil)
}

func TestUnseen(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	full := ld.Unseen(nil)
	is.Equal(len(full), 100)
	is.Equal(full[0], BlankTile())

	seen, err := ld.TilesFor("ZQa?")
	is.NoErr(err)
	rest := ld.Unseen(seen)
	is.Equal(len(rest), 96)
	is.Equal(Tiles(rest).String()[:3], "AAA")
	for _, tl := range rest {
		is.True(tl.Letter != 'Z')
		is.True(tl.Letter != 'Q')
		is.True(!tl.Blank)
	}
}

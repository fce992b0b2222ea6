package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/cache"
	"github.com/domino14/wordplay/config"
)

const CacheKeyPrefix = "letterdist:"

//go:embed data/english.csv
var englishCSV []byte

// LetterDistribution encodes the tile distribution for the relevant game:
// how many of each tile there are and what each is worth.
type LetterDistribution struct {
	Name     string
	letters  []rune
	quantity map[rune]int
	scores   map[rune]int
	vowels   map[rune]bool
}

// ScanLetterDistribution reads a CSV with the columns
// letter,quantity,value,vowel. The blank is written as "?".
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	ld := &LetterDistribution{
		quantity: map[rune]int{},
		scores:   map[rune]int{},
		vowels:   map[rune]bool{},
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter, size := utf8.DecodeRuneInString(strings.TrimSpace(record[0]))
		if letter == utf8.RuneError || size != len(strings.TrimSpace(record[0])) {
			return nil, fmt.Errorf("bad letter %q", record[0])
		}
		letter = unicode.ToUpper(letter)
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if _, dup := ld.scores[letter]; dup {
			return nil, fmt.Errorf("letter %c listed twice", letter)
		}
		ld.letters = append(ld.letters, letter)
		ld.quantity[letter] = n
		ld.scores[letter] = p
		ld.vowels[letter] = v == 1
	}
	if len(ld.letters) == 0 {
		return nil, errors.New("empty letter distribution")
	}
	return ld, nil
}

// EnglishLetterDistribution returns the built-in English distribution.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution(bytes.NewReader(englishCSV))
	if err != nil {
		// the embedded file is fixed at build time
		panic(err)
	}
	ld.Name = "english"
	return ld
}

// CacheLoadFunc loads a named distribution from the data path.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, CacheKeyPrefix)
	if name == "english" {
		return EnglishLetterDistribution(), nil
	}
	filename := filepath.Join(cfg.GetString(config.ConfigDataPath), "letterdistributions", name+".csv")
	log.Debug().Str("filename", filename).Msg("loading-letter-distribution")
	f, err := cache.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ld, err := ScanLetterDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	ld.Name = name
	return ld, nil
}

// NamedLetterDistribution loads a distribution by name, via the global cache.
func NamedLetterDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	name = strings.ToLower(name)
	obj, err := cache.Load(cfg, CacheKeyPrefix+name, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ld, ok := obj.(*LetterDistribution)
	if !ok {
		return nil, errors.New("could not read letter distribution")
	}
	return ld, nil
}

// Score is the face value of a letter. Unknown letters score zero.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.scores[unicode.ToUpper(letter)]
}

// Quantity is how many of a letter there are in a full set.
func (ld *LetterDistribution) Quantity(letter rune) int {
	return ld.quantity[unicode.ToUpper(letter)]
}

// IsVowel reports whether the letter is a vowel.
func (ld *LetterDistribution) IsVowel(letter rune) bool {
	return ld.vowels[unicode.ToUpper(letter)]
}

// Letters returns every letter in the distribution, in file order.
func (ld *LetterDistribution) Letters() []rune {
	ls := make([]rune, len(ld.letters))
	copy(ls, ld.letters)
	return ls
}

// Unseen returns the tiles of a full set minus the ones given, in
// distribution order. A blank in seen, assigned or not, removes a blank.
func (ld *LetterDistribution) Unseen(seen []Tile) []Tile {
	left := make(map[rune]int, len(ld.quantity))
	for k, v := range ld.quantity {
		left[k] = v
	}
	for _, t := range seen {
		if t.Blank {
			left[BlankToken]--
		} else {
			left[t.Letter]--
		}
	}
	var ts []Tile
	for _, l := range ld.letters {
		for i := 0; i < left[l]; i++ {
			t, _ := ld.TileFor(l)
			ts = append(ts, t)
		}
	}
	return ts
}

// TileFor returns the rack tile for a letter. "?" is a blank; a lowercase
// letter is a blank already standing for that letter.
func (ld *LetterDistribution) TileFor(letter rune) (Tile, error) {
	if letter == BlankToken {
		return BlankTile(), nil
	}
	if unicode.IsLower(letter) {
		up := unicode.ToUpper(letter)
		if _, ok := ld.scores[up]; !ok {
			return Tile{}, fmt.Errorf("letter %c not in distribution %v", up, ld.Name)
		}
		return BlankTile().As(up), nil
	}
	p, ok := ld.scores[letter]
	if !ok {
		return Tile{}, fmt.Errorf("letter %c not in distribution %v", letter, ld.Name)
	}
	return Tile{Letter: letter, Points: p}, nil
}

// TilesFor converts a string with TileFor.
func (ld *LetterDistribution) TilesFor(s string) ([]Tile, error) {
	ts := make([]Tile, 0, len(s))
	for _, ch := range s {
		t, err := ld.TileFor(ch)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

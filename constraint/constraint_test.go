package constraint

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestZeroAcceptsEverything(t *testing.T) {
	is := is.New(t)
	c := &WordConstraint{}
	is.True(c.IsZero())
	is.True(c.Validate("QI"))
	is.True(c.Validate("ZYZZYVAS"))
	is.Equal(c.String(), "none")
}

func TestPatternIsAnchored(t *testing.T) {
	is := is.New(t)
	c, err := Parse(Options{Pattern: "C.T"})
	is.NoErr(err)
	is.True(c.Validate("CAT"))
	is.True(c.Validate("COT"))
	is.True(!c.Validate("CATS"))
	is.True(!c.Validate("SCAT"))

	c, err = Parse(Options{Pattern: "A|B"})
	is.NoErr(err)
	is.True(c.Validate("A"))
	is.True(!c.Validate("AB"))

	_, err = Parse(Options{Pattern: "C(AT"})
	is.True(err != nil)
}

func TestRequiredLetters(t *testing.T) {
	testCases := []struct {
		required string
		word     string
		ok       bool
	}{
		{"QU", "QUIT", true},
		{"QU", "QI", false},
		{"q", "QI", true},
		{"S?", "AS", true},
		{"S?", "XI", false},
		// wildcards do not count toward the word's minimum length
		{"??", "A", true},
		{"S??", "AS", true},
		{"SS", "AS", true},
		{"SSS", "AS", false},
		{"ST", "T", false},
	}
	for _, tc := range testCases {
		c, err := Parse(Options{Required: tc.required})
		assert.NoError(t, err)
		assert.Equal(t, tc.ok, c.Validate(tc.word), "required %q word %q", tc.required, tc.word)
	}
}

func TestLengths(t *testing.T) {
	is := is.New(t)
	c, err := Parse(Options{Min: 3, Max: 4})
	is.NoErr(err)
	is.True(!c.Validate("AB"))
	is.True(c.Validate("ABC"))
	is.True(c.Validate("ABCD"))
	is.True(!c.Validate("ABCDE"))

	c, err = Parse(Options{Exact: 5, Min: 2, Max: 3})
	is.NoErr(err)
	is.True(c.Validate("ABCDE"))
	is.True(!c.Validate("ABC"))
}

func TestParseKeepsCrossedLengths(t *testing.T) {
	is := is.New(t)
	c, err := Parse(Options{Min: 5, Max: 3})
	is.NoErr(err)
	is.Equal(c.Options(), Options{Min: 5, Max: 3})
	for _, w := range []string{"AB", "ABC", "ABCD", "ABCDE", "ABCDEF"} {
		is.True(!c.Validate(w))
	}
}

func TestLengthBoundsAdjust(t *testing.T) {
	is := is.New(t)
	c := &WordConstraint{}
	c.SetMinLength(6)
	c.SetMaxLength(4)
	is.Equal(c.Options().Min, 4)
	is.Equal(c.Options().Max, 4)

	c.SetMinLength(7)
	is.Equal(c.Options().Max, 7)

	c.Reset()
	is.True(c.IsZero())
}

func TestConjunction(t *testing.T) {
	is := is.New(t)
	c, err := Parse(Options{Pattern: ".*S", Required: "E", Exact: 4})
	is.NoErr(err)
	is.True(c.Validate("EATS"))
	is.True(!c.Validate("OATS"))
	is.True(!c.Validate("EATEN"))
	is.True(!c.Validate("SEAT"))
	is.Equal(c.String(), "pattern=.*S required=E exact=4")
}

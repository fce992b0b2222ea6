package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/constraint"
	"github.com/domino14/wordplay/tilemapping"
)

func TestRackWordsSingleWord(t *testing.T) {
	is := is.New(t)
	g := mustGraph(t, "CAT")
	ranking := FindRackWords(mustRack(t, "CAT"), g)
	is.Equal(ranking.Len(), 1)
	m := ranking.Best()
	is.Equal(m.Word(), "CAT")
	is.Equal(m.Score(), 5)
	is.True(!m.Bingo())
	is.Equal(m.BoardCoords(), "8H")
	is.Equal(m.TilesPlayed(), 3)
}

func TestRackWordsLeave(t *testing.T) {
	is := is.New(t)
	g := mustGraph(t, "CAT")
	m := FindRackWords(mustRack(t, "SCATER"), g).Best()
	is.Equal(m.String(), "8H CAT [ERS] 5 pts")
}

func TestRackWordsRepeatedLetters(t *testing.T) {
	g := mustGraph(t, "AA", "AAA", "BAA")
	ranking := FindRackWords(mustRack(t, "AAA"), g)
	assert.Equal(t, []string{"AAA", "AA"}, []string{ranking.Moves()[0].Word(), ranking.Moves()[1].Word()})
	assert.Equal(t, 2, ranking.Len())
	assert.Equal(t, []int{3, 2}, scores(ranking.Moves()))
}

func TestRackWordsBingo(t *testing.T) {
	is := is.New(t)
	g := mustGraph(t, "RETAINS", "STAIN", "SATIN")
	ranking := FindRackWords(mustRack(t, "AEINRST"), g)
	is.Equal(ranking.Len(), 3)
	best := ranking.Best()
	is.Equal(best.Word(), "RETAINS")
	is.Equal(best.Score(), 57)
	is.True(best.Bingo())
	is.Equal(len(best.Leave()), 0)
}

func TestRackWordsBlank(t *testing.T) {
	is := is.New(t)
	g := mustGraph(t, "AT", "TA", "CAT")
	rack := mustRack(t, "?T")
	ranking := FindRackWords(rack, g)
	assert.Equal(t, []string{"8H Ta", "8H aT"}, moveStrings(ranking.Moves()))
	for _, m := range ranking.Moves() {
		is.Equal(m.Score(), 1)
	}
	// the caller's blank was never assigned
	is.Equal(rack.Tile(0), tilemapping.BlankTile())
}

func TestRackWordsBlankTriesEveryChild(t *testing.T) {
	g := mustGraph(t, "AB", "AD", "AG", "AH", "AX")
	ranking := FindRackWords(mustRack(t, "A?"), g)
	assert.ElementsMatch(t, []string{"8H Ab", "8H Ad", "8H Ag", "8H Ah", "8H Ax"},
		moveStrings(ranking.Moves()))
}

func TestRackWordsConstraint(t *testing.T) {
	g := mustGraph(t, "AT", "ACT", "CAT", "CATS", "SCAT", "CAST", "ACTS")
	c, err := constraint.Parse(constraint.Options{Required: "S", Pattern: "C.*"})
	require.NoError(t, err)
	ranking := FindRackWords(mustRack(t, "ACST"), g.WithConstraint(c))
	assert.Equal(t, []string{"8H CAST", "8H CATS"}, moveStrings(ranking.Moves()))
}

func TestRackWordsEmptyRack(t *testing.T) {
	is := is.New(t)
	ranking := FindRackWords(mustRack(t, ""), mustGraph(t, "CAT"))
	is.Equal(ranking.Len(), 0)
}

func TestRackWordsDeterministic(t *testing.T) {
	g := mustGraph(t, testWords...)
	a := FindRackWords(mustRack(t, "ACERST?"), g)
	b := FindRackWords(mustRack(t, "ACERST?"), g)
	require.Equal(t, a.Len(), b.Len())
	for i, m := range a.Moves() {
		assert.True(t, m.Equals(b.Moves()[i]))
		assert.Equal(t, m.String(), b.Moves()[i].String())
	}
}

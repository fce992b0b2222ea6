package shell

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/graphmaker"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"export /path/to/pos.yaml",
			&shellcmd{"export", []string{"/path/to/pos.yaml"}, map[string]string{}},
			nil},
		{"constraint -pattern C.* -min 3",
			&shellcmd{"constraint", nil, map[string]string{"pattern": "C.*", "min": "3"}},
			nil},
		{"row 8 '   HELLO' ",
			&shellcmd{"row", []string{"8", "   HELLO"}, map[string]string{}},
			nil},
		{"constraint clear -required s",
			&shellcmd{"constraint", []string{"clear"}, map[string]string{"required": "s"}},
			nil,
		},
		{"constraint -max",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) *ShellController {
	t.Helper()
	sc, err := newController(config.DefaultConfig())
	require.NoError(t, err)
	g, err := graphmaker.MakeGraph([]string{"CAT", "CATS", "ACT", "ACTS", "AT", "TA", "AS"}, false)
	require.NoError(t, err)
	sc.graph = g
	sc.out = io.Discard
	return sc
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.execute(line)
	require.NoError(t, err, line)
	return resp.message
}

func TestGenAndCommit(t *testing.T) {
	sc := testController(t)
	run(t, sc, "rack CATS")
	out := run(t, sc, "gen 3")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, moveTableHeader(), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  1: 8"), lines[1])
	require.NotEmpty(t, sc.curPlays)

	best := sc.curPlays[0]
	out = run(t, sc, "commit 1")
	assert.Contains(t, out, "played "+best.String())
	assert.False(t, sc.board.IsEmpty())
	assert.Equal(t, 4-best.TilesPlayed(), sc.rack.Len())
	assert.Empty(t, sc.curPlays)

	_, err := sc.execute("commit 1")
	assert.Error(t, err)
}

func TestWordsCommitOpensBoard(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "rack acts")
	out := run(t, sc, "words")
	is.True(strings.Contains(out, "8H CATS"))
	is.True(sc.curPlaysFromRack)

	run(t, sc, "commit")
	is.True(!sc.board.IsEmpty())
	is.True(sc.board.HasTile(7, 7))
	is.Equal(sc.rack.Len(), 0)

	// a rack word cannot be committed onto a board with tiles
	run(t, sc, "rack CATS")
	run(t, sc, "words")
	_, err := sc.execute("commit 1")
	is.True(err != nil)
}

func TestPlay(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "row 8 ......CAT")
	run(t, sc, "rack SXY")
	out := run(t, sc, "play 8G S")
	is.True(strings.Contains(out, "8G CATS [XY] 6 pts"))
	tl, ok := sc.board.Tile(7, 9)
	is.True(ok)
	is.Equal(tl.Letter, 'S')
	is.Equal(sc.rack.String(), "XY")

	_, err := sc.execute("play 8G Z")
	is.True(err != nil)
	_, err = sc.execute("play 8G")
	is.True(err != nil)
}

func TestAt(t *testing.T) {
	sc := testController(t)
	run(t, sc, "row 8 ......CAT")
	run(t, sc, "rack S")
	out := run(t, sc, "at 9H")
	assert.Contains(t, out, "H8 AS")
	assert.NotContains(t, out, "CATS")
	assert.Len(t, sc.curPlays, 1)
}

func TestConstraintCommand(t *testing.T) {
	sc := testController(t)
	run(t, sc, "rack CATS")
	assert.Equal(t, "(no constraint)", run(t, sc, "constraint"))

	run(t, sc, "constraint -required S")
	assert.False(t, sc.constraint.IsZero())
	run(t, sc, "words")
	words := []string{}
	for _, m := range sc.curPlays {
		words = append(words, m.Word())
	}
	assert.ElementsMatch(t, []string{"CATS", "ACTS", "AS"}, words)

	run(t, sc, "constraint -max 2")
	run(t, sc, "words")
	require.Len(t, sc.curPlays, 1)
	assert.Equal(t, "AS", sc.curPlays[0].Word())

	run(t, sc, "constraint clear")
	assert.True(t, sc.constraint.IsZero())

	_, err := sc.execute("constraint -pattern [")
	assert.Error(t, err)
	_, err = sc.execute("constraint -exact many")
	assert.Error(t, err)
	_, err = sc.execute("constraint -colour red")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	sc := testController(t)
	assert.True(t, strings.HasPrefix(run(t, sc, "check cat acts,"), "The play (CAT,ACTS) is VALID in"))
	assert.Contains(t, run(t, sc, "check cat dog"), "INVALID")
	_, err := sc.execute("check")
	assert.Error(t, err)
}

func TestExportAndLoad(t *testing.T) {
	sc := testController(t)
	run(t, sc, "row 8 ......cAT")
	run(t, sc, "rack S?")
	run(t, sc, "constraint -min 3")
	run(t, sc, "gen")
	require.NotEmpty(t, sc.curPlays)

	filename := filepath.Join(t.TempDir(), "pos.yaml")
	run(t, sc, "export "+filename)

	other := testController(t)
	run(t, other, "load "+filename)
	assert.Equal(t, sc.board.Rows(), other.board.Rows())
	assert.Equal(t, sc.rack.String(), other.rack.String())
	assert.Equal(t, sc.constraint.String(), other.constraint.String())
	tl, ok := other.board.Tile(7, 6)
	assert.True(t, ok)
	assert.True(t, tl.Blank)

	_, err := other.execute("load " + filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRandRack(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "randrack")
	is.Equal(sc.rack.Len(), 7)
}

func TestSearchNeedsRackAndLexicon(t *testing.T) {
	sc := testController(t)
	_, err := sc.execute("gen")
	assert.ErrorIs(t, err, errNoRack)

	sc.graph = nil
	run(t, sc, "rack CAT")
	_, err = sc.execute("gen")
	assert.ErrorIs(t, err, errNoLexicon)
	assert.Equal(t, "(none)", run(t, sc, "lexicon"))
}

func TestHelpAndExit(t *testing.T) {
	sc := testController(t)
	assert.Contains(t, run(t, sc, "help"), "commit")
	assert.Contains(t, run(t, sc, "help constraint"), "-pattern")
	_, err := sc.execute("help nosuchtopic")
	assert.Error(t, err)
	_, err = sc.execute("fly")
	assert.Error(t, err)
	_, err = sc.execute("exit")
	assert.ErrorIs(t, err, errQuit)
}

func TestCompleter(t *testing.T) {
	c := NewShellCompleter(testController(t))
	matches, n := c.Do([]rune("comm"), 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, [][]rune{[]rune("it")}, matches)

	matches, _ = c.Do([]rune("constraint -re"), 14)
	assert.Equal(t, [][]rune{[]rune("quired")}, matches)
}

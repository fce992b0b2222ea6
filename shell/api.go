package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/wordplay/analyzer"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/constraint"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

func moveTableHeader() string {
	return "     Move                Leave    Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-20s%-9s%d", idx+1, m.ShortDescription(), m.LeaveString(), m.Score())
}

func (sc *ShellController) setLexicon(name string) (*Response, error) {
	g, err := wordgraph.Open(sc.config, name)
	if err != nil {
		return nil, err
	}
	sc.graph = g
	sc.curPlays = nil
	return msg("lexicon set to " + g.LexiconName()), nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.lexiconName()), nil
	}
	return sc.setLexicon(cmd.args[0])
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.rack == nil {
			return msg("(no rack)"), nil
		}
		return msg(sc.rack.String()), nil
	}
	rack, err := tilemapping.RackFromString(strings.ToUpper(cmd.args[0]), sc.ld)
	if err != nil {
		return nil, err
	}
	sc.rack = rack
	sc.curPlays = nil
	return msg("rack set to " + rack.String()), nil
}

// boardTiles lists the tiles on the board.
func (sc *ShellController) boardTiles() []tilemapping.Tile {
	var ts []tilemapping.Tile
	n := sc.board.Dim()
	for i := 0; i < n*n; i++ {
		if t, ok := sc.board.TileAt(i); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// randRack draws a rack from the tiles not yet on the board.
func (sc *ShellController) randRack(cmd *shellcmd) (*Response, error) {
	pool := sc.ld.Unseen(sc.boardTiles())
	if len(pool) == 0 {
		return nil, errors.New("no tiles left to draw")
	}
	frand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	rack, err := tilemapping.NewRack(pool[:min(tilemapping.RackTileLimit, len(pool))])
	if err != nil {
		return nil, err
	}
	sc.rack = rack.Sorted()
	sc.curPlays = nil
	return msg("rack set to " + sc.rack.String()), nil
}

func (sc *ShellController) row(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: row <n> [letters]")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	letters := ""
	if len(cmd.args) > 1 {
		letters = cmd.args[1]
	}
	if _, err := sc.board.SetRow(n-1, letters, sc.ld); err != nil {
		return nil, err
	}
	sc.curPlays = nil
	return sc.show(cmd)
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString(sc.board.ToDisplayText())
	rack := "(none)"
	if sc.rack != nil {
		rack = sc.rack.String()
	}
	fmt.Fprintf(&sb, "Rack: %s   Lexicon: %s", rack, sc.lexiconName())
	if !sc.constraint.IsZero() {
		fmt.Fprintf(&sb, "   Constraint: %s", sc.constraint)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) clear(cmd *shellcmd) (*Response, error) {
	sc.board.Clear()
	sc.curPlays = nil
	return msg("board cleared"), nil
}

func (sc *ShellController) setConstraint(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 && cmd.args[0] == "clear" {
		sc.constraint.Reset()
		return msg("constraint cleared"), nil
	}
	if len(cmd.options) == 0 {
		if sc.constraint.IsZero() {
			return msg("(no constraint)"), nil
		}
		return msg(sc.constraint.String()), nil
	}
	opts := sc.constraint.Options()
	for k, v := range cmd.options {
		var err error
		switch k {
		case "pattern":
			opts.Pattern = v
		case "required":
			opts.Required = v
		case "exact":
			opts.Exact, err = strconv.Atoi(v)
		case "min":
			opts.Min, err = strconv.Atoi(v)
		case "max":
			opts.Max, err = strconv.Atoi(v)
		default:
			return nil, fmt.Errorf("unknown constraint option -%s", k)
		}
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", k, err)
		}
	}
	c, err := constraint.Parse(opts)
	if err != nil {
		return nil, err
	}
	sc.constraint = c
	sc.curPlays = nil
	return msg("constraint set to " + c.String()), nil
}

func (sc *ShellController) showPlays(numPlays int) *Response {
	if numPlays <= 0 || numPlays > len(sc.curPlays) {
		numPlays = len(sc.curPlays)
	}
	if numPlays == 0 {
		return msg("no moves found")
	}
	lines := []string{moveTableHeader()}
	for i, m := range sc.curPlays[:numPlays] {
		lines = append(lines, MoveTableRow(i, m))
	}
	return msg(strings.Join(lines, "\n"))
}

func (sc *ShellController) finder(g wordgraph.WordGraph) *movegen.BoardMoveFinder {
	f := movegen.NewBoardMoveFinder(g)
	f.SetCrossCacheSize(sc.config.GetInt(config.ConfigCrossCacheSize))
	return f
}

// searchSetup returns what every search needs.
func (sc *ShellController) searchSetup() (wordgraph.WordGraph, error) {
	if sc.rack == nil {
		return nil, errNoRack
	}
	return sc.activeGraph()
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	numPlays, err := intArg(cmd, 0, defaultNumPlays)
	if err != nil {
		return nil, err
	}
	g, err := sc.searchSetup()
	if err != nil {
		return nil, err
	}
	ranking := sc.finder(g).GenAll(sc.board, sc.rack)
	sc.curPlays = ranking.Moves()
	sc.curPlaysFromRack = false
	return sc.showPlays(numPlays), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	numPlays, err := intArg(cmd, 0, defaultNumPlays)
	if err != nil {
		return nil, err
	}
	g, err := sc.searchSetup()
	if err != nil {
		return nil, err
	}
	sc.curPlays = movegen.FindRackWords(sc.rack, g).Moves()
	sc.curPlaysFromRack = true
	return sc.showPlays(numPlays), nil
}

func (sc *ShellController) at(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: at <coord>, for example at 8H")
	}
	row, col, _, ok := move.FromBoardGameCoords(cmd.args[0])
	if !ok {
		return nil, fmt.Errorf("bad coordinates %q", cmd.args[0])
	}
	numPlays, err := intArg(cmd, 1, defaultNumPlays)
	if err != nil {
		return nil, err
	}
	g, err := sc.searchSetup()
	if err != nil {
		return nil, err
	}
	sc.curPlays = sc.finder(g).GenAt(sc.board, sc.rack, row, col).Moves()
	sc.curPlaysFromRack = false
	return sc.showPlays(numPlays), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a word or space-separated list of words to check")
	}
	if sc.graph == nil {
		return nil, errNoLexicon
	}
	playValid := true
	wordsFriendly := []string{}
	for _, w := range cmd.args {
		wordFriendly := strings.Trim(strings.ToUpper(w), ",")
		wordsFriendly = append(wordsFriendly, wordFriendly)
		if !wordgraph.FindWord(sc.graph, wordFriendly) {
			playValid = false
		}
	}
	validStr := "VALID"
	if !playValid {
		validStr = "INVALID"
	}
	return msg(fmt.Sprintf("The play (%v) is %v in %v", strings.Join(wordsFriendly, ","), validStr, sc.lexiconName())), nil
}

// placeMove puts m on the board and leaves the rest of the rack.
func (sc *ShellController) placeMove(m *move.Move) (*Response, error) {
	if err := sc.board.PlayMove(m); err != nil {
		return nil, err
	}
	if sc.rack != nil {
		rack, err := tilemapping.NewRack(m.Leave())
		if err != nil {
			return nil, err
		}
		sc.rack = rack
	}
	sc.curPlays = nil
	log.Debug().Str("move", m.String()).Msg("placed-move")
	resp, _ := sc.show(nil)
	return msg("played " + m.String() + "\n" + resp.message), nil
}

// play validates and places a play given as coordinates and the tiles to
// place, such as "play 8G S".
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: play <coord> <tiles>")
	}
	if sc.graph == nil {
		return nil, errNoLexicon
	}
	row, col, vertical, ok := move.FromBoardGameCoords(cmd.args[0])
	if !ok {
		return nil, fmt.Errorf("bad coordinates %q", cmd.args[0])
	}
	tiles, err := sc.ld.TilesFor(cmd.args[1])
	if err != nil {
		return nil, err
	}
	dir := move.Horizontal
	if vertical {
		dir = move.Vertical
	}
	m, err := movegen.ValidatePlay(sc.board, sc.graph, row, col, dir, tiles, sc.rack)
	if err != nil {
		return nil, err
	}
	return sc.placeMove(m)
}

// commit places a generated move, numbered as in the last listing. A rack
// word is placed as the opening play.
func (sc *ShellController) commit(cmd *shellcmd) (*Response, error) {
	n, err := intArg(cmd, 0, 1)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(sc.curPlays) {
		return nil, errors.New("play outside range")
	}
	m := sc.curPlays[n-1]
	if sc.curPlaysFromRack {
		m, err = movegen.BestStartingPosition(sc.board, m)
		if err != nil {
			return nil, fmt.Errorf("rack words can only open the board: %w", err)
		}
	}
	return sc.placeMove(m)
}

// session is what export writes and load reads.
type session struct {
	Lexicon           string `yaml:"lexicon,omitempty"`
	analyzer.Position `yaml:",inline"`
	Moves             []analyzer.JsonMove `yaml:"moves,omitempty"`
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a filename to save to")
	}
	filename := cmd.args[0]
	s := session{
		Position: analyzer.Position{
			Board:      sc.board.Rows(),
			Constraint: sc.constraint.Options(),
		},
	}
	if sc.graph != nil {
		s.Lexicon = sc.graph.LexiconName()
	}
	if sc.rack != nil {
		s.Rack = sc.rack.String()
	}
	for _, m := range sc.curPlays {
		s.Moves = append(s.Moves, analyzer.MakeJsonMove(m))
	}
	out, err := yaml.Marshal(&s)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, out, 0644); err != nil {
		return nil, err
	}
	return msg("position written to " + filename), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a filename to load")
	}
	data, err := os.ReadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	var s session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Lexicon != "" && s.Lexicon != sc.lexiconName() {
		if _, err := sc.setLexicon(s.Lexicon); err != nil {
			return nil, err
		}
	}
	c, err := constraint.Parse(s.Constraint)
	if err != nil {
		return nil, err
	}
	sc.constraint = c
	sc.board.Clear()
	for i, r := range s.Board {
		if _, err := sc.board.SetRow(i, r, sc.ld); err != nil {
			return nil, err
		}
	}
	sc.rack = nil
	if s.Rack != "" {
		if sc.rack, err = tilemapping.RackFromString(s.Rack, sc.ld); err != nil {
			return nil, err
		}
	}
	sc.curPlays = nil
	return sc.show(cmd)
}

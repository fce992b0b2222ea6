package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/constraint"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

const (
	ModeBoard = "board"
	ModeRack  = "rack"
)

var SampleJson = []byte(`{
"rack": "EINRSTZ",
"board": [
  "...............",
  "...............",
  "...............",
  "...............",
  "...............",
  "...............",
  "...............",
  "...HELLO.......",
  "...............",
  "...............",
  "...............",
  "...............",
  "...............",
  "...............",
  "..............."
]}`)

var (
	errNoRack  = errors.New("position has no rack")
	errBadMode = errors.New("mode must be board or rack")
)

// Position is a request: a rack, and for board mode the board as 15 text
// rows ('.' or space for an empty square, lower case for a blank).
type Position struct {
	Rack       string             `json:"rack" yaml:"rack"`
	Board      []string           `json:"board,omitempty" yaml:"board,omitempty,flow"`
	Constraint constraint.Options `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Mode       string             `json:"mode,omitempty" yaml:"mode,omitempty"`
	Limit      int                `json:"limit,omitempty" yaml:"limit,omitempty"`
}

type JsonMove struct {
	Row                int    `json:"row" yaml:"row"`
	Column             int    `json:"column" yaml:"column"`
	Vertical           bool   `json:"vertical" yaml:"vertical"`
	DisplayCoordinates string `json:"coords" yaml:"coords"`
	Word               string `json:"word" yaml:"word"`
	Tiles              string `json:"tiles" yaml:"tiles"`
	Leave              string `json:"leave" yaml:"leave"`
	Score              int    `json:"score" yaml:"score"`
	Bingo              bool   `json:"bingo,omitempty" yaml:"bingo,omitempty"`
}

// Result is the outcome of one position in a batch.
type Result struct {
	Rack  string     `json:"rack" yaml:"rack"`
	Moves []JsonMove `json:"moves" yaml:"moves"`
	Error string     `json:"error,omitempty" yaml:"error,omitempty"`
}

type Analyzer struct {
	graph          wordgraph.WordGraph
	ld             *tilemapping.LetterDistribution
	crossCacheSize int
	maxWorkers     int
}

func MakeJsonMove(m *move.Move) JsonMove {
	j := JsonMove{}
	j.Row, j.Column, j.Vertical = m.CoordsAndVertical()
	j.DisplayCoordinates = m.BoardCoords()
	j.Word = m.Word()
	j.Tiles = m.TilesString()
	j.Leave = m.LeaveString()
	j.Score = m.Score()
	j.Bingo = m.Bingo()
	return j
}

// NewAnalyzer loads the configured lexicon and letter distribution.
func NewAnalyzer(cfg *config.Config) (*Analyzer, error) {
	g, err := wordgraph.Open(cfg, cfg.GetString(config.ConfigDefaultLexicon))
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	ld, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, fmt.Errorf("loading letter distribution: %w", err)
	}
	return NewAnalyzerWithGraph(cfg, g, ld), nil
}

// NewAnalyzerWithGraph makes an analyzer over an already loaded graph.
func NewAnalyzerWithGraph(cfg *config.Config, g wordgraph.WordGraph, ld *tilemapping.LetterDistribution) *Analyzer {
	an := &Analyzer{graph: g, ld: ld}
	an.crossCacheSize = cfg.GetInt(config.ConfigCrossCacheSize)
	an.maxWorkers = cfg.GetInt(config.ConfigMaxBatchWorkers)
	if an.maxWorkers <= 0 {
		an.maxWorkers = runtime.GOMAXPROCS(0)
	}
	return an
}

func (an *Analyzer) Graph() wordgraph.WordGraph {
	return an.graph
}

func (an *Analyzer) LetterDistribution() *tilemapping.LetterDistribution {
	return an.ld
}

// ParsePosition reads a JSON position.
func ParsePosition(j []byte) (*Position, error) {
	p := &Position{}
	if err := json.Unmarshal(j, p); err != nil {
		return nil, fmt.Errorf("bad position: %w", err)
	}
	return p, nil
}

// Run finds the best moves for a position.
func (an *Analyzer) Run(ctx context.Context, p *Position) ([]*move.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Rack) == "" {
		return nil, errNoRack
	}
	rack, err := tilemapping.RackFromString(strings.ToUpper(p.Rack), an.ld)
	if err != nil {
		return nil, err
	}
	c, err := constraint.Parse(p.Constraint)
	if err != nil {
		return nil, err
	}
	g := an.graph
	if !c.IsZero() {
		g = wordgraph.Constrain(g, c)
	}

	var ranking *movegen.MoveRanking
	switch p.Mode {
	case ModeRack:
		ranking = movegen.FindRackWords(rack, g)
	case ModeBoard, "":
		bd, err := board.FromRows(p.Board, an.ld)
		if err != nil {
			return nil, err
		}
		f := movegen.NewBoardMoveFinder(g)
		f.SetCrossCacheSize(an.crossCacheSize)
		ranking = f.GenAll(bd, rack)
	default:
		return nil, errBadMode
	}
	log.Ctx(ctx).Debug().Str("rack", rack.String()).Str("mode", p.Mode).
		Str("constraint", c.String()).Int("nmoves", ranking.Len()).Msg("analyzed-position")
	return ranking.Top(p.Limit), nil
}

// Analyze reads a JSON position and returns the best moves as JSON.
func (an *Analyzer) Analyze(ctx context.Context, jsonBoard []byte) ([]byte, error) {
	p, err := ParsePosition(jsonBoard)
	if err != nil {
		return nil, err
	}
	moves, err := an.Run(ctx, p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(lo.Map(moves, func(m *move.Move, _ int) JsonMove { return MakeJsonMove(m) }))
}

// AnalyzeBatch analyzes positions concurrently. A bad position is reported
// in its Result; only cancellation fails the whole batch.
func (an *Analyzer) AnalyzeBatch(ctx context.Context, ps []Position) ([]Result, error) {
	results := make([]Result, len(ps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(an.maxWorkers)
	for i := range ps {
		i := i
		g.Go(func() error {
			results[i].Rack = ps[i].Rack
			moves, err := an.Run(gctx, &ps[i])
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Moves = lo.Map(moves, func(m *move.Move, _ int) JsonMove { return MakeJsonMove(m) })
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ToYAML renders batch results.
func ToYAML(results []Result) ([]byte, error) {
	return yaml.Marshal(results)
}

// RunTest analyzes SampleJson and prints the board and the moves.
func (an *Analyzer) RunTest(w io.Writer) error {
	moves, err := an.Analyze(context.Background(), SampleJson)
	if err != nil {
		return err
	}
	p, _ := ParsePosition(SampleJson)
	bd, err := board.FromRows(p.Board, an.ld)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, bd.ToDisplayText())
	var ms []JsonMove
	if err := json.Unmarshal(moves, &ms); err != nil {
		return err
	}
	for _, m := range ms {
		fmt.Fprintf(w, "%-4s %-15s %-7s %d\n", m.DisplayCoordinates, m.Tiles, m.Leave, m.Score)
	}
	return nil
}

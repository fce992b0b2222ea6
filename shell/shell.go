package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/constraint"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

const defaultNumPlays = 15

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("no lexicon loaded; use the `lexicon` command")
	errNoRack            = errors.New("please set a rack first with the `rack` command")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	ld         *tilemapping.LetterDistribution
	graph      wordgraph.WordGraph
	constraint *constraint.WordConstraint

	board *board.GameBoard
	rack  *tilemapping.Rack

	curPlays []*move.Move
	// curPlaysFromRack is set when curPlays came from the rack-only finder
	// and have no board position yet.
	curPlaysFromRack bool
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController makes an interactive shell. The default lexicon is
// loaded if it can be found; otherwise the shell starts without one.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg)
	if err != nil {
		return nil, err
	}
	historyFile := filepath.Join(os.TempDir(), "wordplay_history")
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordplay>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stderr()

	lex := cfg.GetString(config.ConfigDefaultLexicon)
	if _, err := sc.setLexicon(lex); err != nil {
		log.Warn().Err(err).Str("lexicon", lex).Msg("could-not-load-default-lexicon")
	}
	return sc, nil
}

func newController(cfg *config.Config) (*ShellController, error) {
	ld, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, err
	}
	return &ShellController{
		out:        os.Stderr,
		config:     cfg,
		ld:         ld,
		constraint: &constraint.WordConstraint{},
		board:      board.NewStandardBoard(),
	}, nil
}

// extractFields splits a command line into the command, its positional
// arguments and its -option value pairs. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// activeGraph is the lexicon with the current constraint attached.
func (sc *ShellController) activeGraph() (wordgraph.WordGraph, error) {
	if sc.graph == nil {
		return nil, errNoLexicon
	}
	if sc.constraint.IsZero() {
		return sc.graph, nil
	}
	return wordgraph.Constrain(sc.graph, sc.constraint), nil
}

func (sc *ShellController) lexiconName() string {
	if sc.graph == nil {
		return "(none)"
	}
	return sc.graph.LexiconName()
}

// intArg reads an optional positional int argument.
func intArg(cmd *shellcmd, idx, def int) (int, error) {
	if len(cmd.args) <= idx {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(cmd.args[idx], "#"))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", cmd.args[idx])
	}
	return n, nil
}

func (sc *ShellController) execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "rack":
		return sc.setRack(cmd)
	case "randrack":
		return sc.randRack(cmd)
	case "row":
		return sc.row(cmd)
	case "board", "s":
		return sc.show(cmd)
	case "clear":
		return sc.clear(cmd)
	case "constraint":
		return sc.setConstraint(cmd)
	case "gen":
		return sc.generate(cmd)
	case "words":
		return sc.words(cmd)
	case "at":
		return sc.at(cmd)
	case "check":
		return sc.check(cmd)
	case "play":
		return sc.play(cmd)
	case "commit":
		return sc.commit(cmd)
	case "export":
		return sc.export(cmd)
	case "load":
		return sc.load(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
	}
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	resp, err := sc.execute(line)
	if errors.Is(err, errQuit) {
		sig <- syscall.SIGINT
		return err
	}
	if errors.Is(err, errNoData) {
		return nil
	}
	if err != nil {
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.standardModeSwitch(line, sig); err != nil {
			log.Debug().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

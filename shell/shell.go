// Package shell is the interactive front end: score guesses by hand,
// watch a solver play, play a game yourself, or run batches over the
// whole answer list.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/gridlegame/gridle/ai/strategy"
	"github.com/gridlegame/gridle/automatic"
	"github.com/gridlegame/gridle/config"
	"github.com/gridlegame/gridle/game"
	"github.com/gridlegame/gridle/lexicon"
	"github.com/gridlegame/gridle/scoring"
)

type ShellController struct {
	l       *readline.Instance
	cfg     *config.Config
	dict    *lexicon.Dictionary
	answers []string
	sim     *game.Simulator
}

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong option syntax")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a command line into the command, its positional
// args and its `-name value` options.
func extractFields(line string) (*shellcmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	idx := 1
	for idx < len(fields) {
		f := fields[idx]
		if !strings.HasPrefix(f, "-") {
			args = append(args, f)
			idx++
			continue
		}
		if idx+1 >= len(fields) {
			return nil, errWrongOptionSyntax
		}
		options[strings.TrimPrefix(f, "-")] = fields[idx+1]
		idx += 2
	}
	if len(args) == 0 {
		args = nil
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
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

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "score <answer> <guess> - show the feedback mask for a guess\n")
	io.WriteString(w, "solve <answer> - watch the filtering solver play out a game\n")
	io.WriteString(w, "play - play a game yourself against a random answer\n")
	io.WriteString(w, "autoplay [n] [-file log.csv] [-gamelog games.yaml] - solve the first n\n")
	io.WriteString(w, "    answers (default all) and show stats\n")
	io.WriteString(w, "set maxattempts <n> - change the turn limit\n")
	io.WriteString(w, "exit - leave the shell\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	dict := lexicon.Default()
	var err error
	if cfg.DictionaryPath != "" {
		dict, err = lexicon.LoadFile(cfg.DictionaryPath)
		if err != nil {
			return nil, err
		}
	}
	answers := lexicon.Answers()
	if cfg.AnswersPath != "" {
		answers, err = lexicon.AnswersFile(cfg.AnswersPath)
		if err != nil {
			return nil, err
		}
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgridle>\033[0m ",
		HistoryFile:     "/tmp/gridle_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	sim := game.NewSimulator(dict)
	sim.SetMaxAttempts(cfg.MaxAttempts)
	return &ShellController{l: l, cfg: cfg, dict: dict, answers: answers, sim: sim}, nil
}

func (sc *ShellController) score(fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("score needs an answer and a guess")
	}
	answer, guess := fields[0], fields[1]
	if len(answer) != scoring.WordLength || len(guess) != scoring.WordLength {
		return fmt.Errorf("answer and guess must both be %d letters", scoring.WordLength)
	}
	showMessage(scoring.Compute(answer, guess).String(), sc.l.Stderr())
	return nil
}

func (sc *ShellController) solve(fields []string) error {
	if len(fields) != 1 {
		return fmt.Errorf("solve needs an answer word")
	}
	answer := fields[0]
	if !sc.dict.Has(answer) {
		return fmt.Errorf("%q is not in the dictionary", answer)
	}

	var words []string
	f := strategy.NewFilter(sc.dict)
	turn, won := sc.sim.Play(answer, game.GuessFunc(func(history []game.Guess) string {
		word := f.Guess(history)
		words = append(words, word)
		return word
	}))
	for i, word := range words {
		mask := scoring.Compute(answer, word)
		showMessage(fmt.Sprintf("%2d: %s %s", i+1, word, mask), sc.l.Stderr())
	}
	if won {
		showMessage(fmt.Sprintf("solved %q in %d turns", answer, turn), sc.l.Stderr())
	} else {
		showMessage(fmt.Sprintf("failed to solve %q in %d turns", answer, sc.sim.MaxAttempts()),
			sc.l.Stderr())
	}
	return nil
}

// play runs an interactive game: the human is the guesser. Words not
// in the dictionary are rejected without consuming a turn, matching
// how the real game treats unplayable words.
func (sc *ShellController) play() error {
	answer := sc.answers[frand.Intn(len(sc.answers))]
	limit := sc.sim.MaxAttempts()
	showMessage(fmt.Sprintf("I picked a word. You have %d guesses.", limit), sc.l.Stderr())

	sc.l.SetPrompt("guess> ")
	defer sc.l.SetPrompt("\033[31mgridle>\033[0m ")

	for turn := 1; turn <= limit; {
		line, err := sc.l.Readline()
		if err != nil {
			showMessage(fmt.Sprintf("giving up? The word was %q.", answer), sc.l.Stderr())
			return nil
		}
		guess := strings.ToLower(strings.TrimSpace(line))
		if guess == answer {
			showMessage(fmt.Sprintf("CCCCC, got it in %d!", turn), sc.l.Stderr())
			return nil
		}
		if len(guess) != scoring.WordLength || !sc.dict.Has(guess) {
			showMessage(fmt.Sprintf("%q is not a playable word", guess), sc.l.Stderr())
			continue
		}
		showMessage(scoring.Compute(answer, guess).String(), sc.l.Stderr())
		turn++
	}
	showMessage(fmt.Sprintf("out of guesses. The word was %q.", answer), sc.l.Stderr())
	return nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) error {
	answers := sc.answers
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("badly formatted game count")
		}
		if n < len(answers) {
			answers = answers[:n]
		}
	}
	cfg := *sc.cfg
	if file, ok := cmd.options["file"]; ok {
		cfg.AutoplayLogFile = file
	}
	if file, ok := cmd.options["gamelog"]; ok {
		cfg.GameLogFile = file
	}

	res, err := automatic.Run(context.Background(), &cfg, sc.dict, answers,
		func(d *lexicon.Dictionary) game.Guesser {
			return strategy.NewFilter(d)
		})
	if err != nil {
		return err
	}
	showMessage(res.Summary(), sc.l.Stderr())
	return res.Histogram(sc.l.Stderr())
}

func (sc *ShellController) set(fields []string) error {
	if len(fields) != 2 || fields[0] != "maxattempts" {
		return fmt.Errorf("only `set maxattempts <n>` is supported")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return fmt.Errorf("badly formatted attempt count")
	}
	sc.cfg.MaxAttempts = n
	sc.sim.SetMaxAttempts(n)
	log.Debug().Msgf("set max attempts to %v", n)
	return nil
}

func (sc *ShellController) modeSwitch(line string, sig chan os.Signal) error {
	cmd, err := extractFields(line)
	if err == errNoData {
		return nil
	} else if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
		return nil
	}

	switch cmd.cmd {
	case "score":
		err = sc.score(cmd.args)
	case "solve":
		err = sc.solve(cmd.args)
	case "play":
		err = sc.play()
	case "autoplay":
		err = sc.autoplay(cmd)
	case "set":
		err = sc.set(cmd.args)
	case "help":
		usage(sc.l.Stderr())
	case "exit":
		sig <- syscall.SIGINT
	default:
		showMessage("command not recognized. Type `help` for a list.", sc.l.Stderr())
	}
	if err != nil {
		showMessage(err.Error(), sc.l.Stderr())
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

		if err := sc.modeSwitch(line, sig); err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

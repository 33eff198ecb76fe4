// Package automatic plays large batches of games, one per answer word,
// and aggregates the outcomes. Games run across a worker pool; each
// worker owns its simulator and guesser, and everything shares the one
// read-only dictionary.
package automatic

import (
	"context"
	"expvar"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gridlegame/gridle/config"
	"github.com/gridlegame/gridle/game"
	"github.com/gridlegame/gridle/lexicon"
	"github.com/gridlegame/gridle/stats"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
	IsPlaying = expvar.NewInt("isPlaying")
}

// GuesserFactory builds a fresh guesser for one game. Guessers carry
// per-game state (candidate sets and the like), so the runner needs a
// new one per answer.
type GuesserFactory func(dict *lexicon.Dictionary) game.Guesser

// GameLog is the per-game YAML record written when the config names a
// game log file.
type GameLog struct {
	Answer string   `yaml:"answer"`
	Won    bool     `yaml:"won"`
	Turns  int      `yaml:"turns,omitempty"`
	Words  []string `yaml:"words,flow"`
}

// BatchResult aggregates a whole batch.
type BatchResult struct {
	Games    int
	Wins     int
	TurnStat stats.Statistic
	// WinningTurns holds one entry per solved game, for histograms.
	WinningTurns []float64
}

type gameOutcome struct {
	answer string
	turn   int
	won    bool
	words  []string
}

// recorder wraps a guesser and keeps the words it played, for logs.
type recorder struct {
	inner game.Guesser
	words []string
}

func (r *recorder) Guess(history []game.Guess) string {
	word := r.inner.Guess(history)
	r.words = append(r.words, word)
	return word
}

// Run plays one game per answer and collects the results. The context
// stops the feeder early; games already underway still finish and are
// counted.
func Run(ctx context.Context, cfg *config.Config, dict *lexicon.Dictionary,
	answers []string, factory GuesserFactory) (*BatchResult, error) {

	logGames := cfg.GameLogFile != ""

	var csvFile, yamlFile *os.File
	var err error
	if cfg.AutoplayLogFile != "" {
		csvFile, err = os.Create(cfg.AutoplayLogFile)
		if err != nil {
			return nil, err
		}
		defer csvFile.Close()
	}
	if logGames {
		yamlFile, err = os.Create(cfg.GameLogFile)
		if err != nil {
			return nil, err
		}
		defer yamlFile.Close()
	}

	log.Info().Msgf("starting %d games, %d threads", len(answers), cfg.Threads)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	jobs := make(chan string)
	outcomes := make(chan gameOutcome)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Threads; i++ {
		g.Go(func() error {
			sim := game.NewSimulator(dict)
			sim.SetMaxAttempts(cfg.MaxAttempts)
			for answer := range jobs {
				rec := &recorder{inner: factory(dict)}
				var guesser game.Guesser = rec
				if !logGames {
					guesser = rec.inner
				}
				turn, won := sim.Play(answer, guesser)
				GamesPlayed.Add(1)
				select {
				case outcomes <- gameOutcome{answer: answer, turn: turn, won: won, words: rec.words}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
	feedLoop:
		for _, answer := range answers {
			select {
			case jobs <- answer:
			case <-ctx.Done():
				log.Info().Msg("got stop signal, draining...")
				break feedLoop
			}
		}
		close(jobs)
	}()

	done := make(chan struct{})
	result := &BatchResult{}
	var logErr error
	go func() {
		defer close(done)
		var yamlEnc *yaml.Encoder
		if yamlFile != nil {
			yamlEnc = yaml.NewEncoder(yamlFile)
		}
		for o := range outcomes {
			result.Games++
			if o.won {
				result.Wins++
				result.TurnStat.Push(float64(o.turn))
				result.WinningTurns = append(result.WinningTurns, float64(o.turn))
			}
			if csvFile != nil {
				fmt.Fprintf(csvFile, "%s,%v,%d\n", o.answer, o.won, o.turn)
			}
			if yamlEnc != nil {
				gl := GameLog{Answer: o.answer, Won: o.won, Turns: o.turn, Words: o.words}
				if err := yamlEnc.Encode(gl); err != nil && logErr == nil {
					logErr = err
				}
			}
		}
		if yamlEnc != nil {
			if err := yamlEnc.Close(); err != nil && logErr == nil {
				logErr = err
			}
		}
	}()

	err = g.Wait()
	close(outcomes)
	<-done
	if err != nil {
		return nil, err
	}
	if logErr != nil {
		return nil, logErr
	}

	sort.Float64s(result.WinningTurns)
	log.Info().Msgf("finished: %d/%d solved", result.Wins, result.Games)
	return result, nil
}

// Summary renders the batch in one line.
func (r *BatchResult) Summary() string {
	if r.Wins == 0 {
		return fmt.Sprintf("%d games, 0 solved", r.Games)
	}
	low, high := r.TurnStat.ConfidenceInterval(95)
	return fmt.Sprintf("%d games, %d solved (%.1f%%), mean turns %.2f (95%%: %.2f to %.2f)",
		r.Games, r.Wins, 100*float64(r.Wins)/float64(r.Games),
		r.TurnStat.Mean(), low, high)
}

// Histogram prints the winning-turn distribution.
func (r *BatchResult) Histogram(w io.Writer) error {
	if len(r.WinningTurns) == 0 {
		_, err := fmt.Fprintln(w, "no solved games to plot")
		return err
	}
	// one bin per distinct turn count
	first := r.WinningTurns[0]
	last := r.WinningTurns[len(r.WinningTurns)-1]
	bins := int(last-first) + 1
	hist := histogram.Hist(bins, r.WinningTurns)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// Package strategy contains guessers for the game simulator. The
// simulator doesn't care how a guess gets picked; everything here just
// satisfies game.Guesser.
package strategy

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/gridlegame/gridle/game"
	"github.com/gridlegame/gridle/lexicon"
	"github.com/gridlegame/gridle/scoring"
)

type candidate struct {
	word  string
	count uint64
}

// Filter plays the most frequent word still consistent with every
// piece of feedback received. A word is consistent with a past guess
// exactly when scoring that guess against the word reproduces the
// observed mask. Filter consumes its candidate set as the game goes,
// so use a fresh one per game.
type Filter struct {
	candidates []candidate
}

// NewFilter builds a Filter over the whole dictionary.
func NewFilter(dict *lexicon.Dictionary) *Filter {
	words := dict.Words()
	candidates := make([]candidate, len(words))
	for i, w := range words {
		candidates[i] = candidate{word: w, count: dict.Frequency(w)}
	}
	return &Filter{candidates: candidates}
}

func (f *Filter) Guess(history []game.Guess) string {
	if len(history) > 0 {
		// Earlier guesses already filtered on their own feedback, so
		// only the newest record prunes anything new.
		last := history[len(history)-1]
		f.candidates = lo.Filter(f.candidates, func(c candidate, _ int) bool {
			return scoring.Compute(c.word, last.Word) == last.Mask
		})
	}
	if len(f.candidates) == 0 {
		panic("strategy: no candidates remain; is the answer in the dictionary?")
	}
	best := lo.MaxBy(f.candidates, func(a, b candidate) bool {
		return a.count > b.count
	})
	return best.word
}

// Remaining reports how many candidate words are still consistent with
// the feedback seen so far.
func (f *Filter) Remaining() int {
	return len(f.candidates)
}

// Random plays a uniformly random dictionary word and ignores all
// feedback. Useful as a worst-case baseline in batch runs.
type Random struct {
	words []string
}

func NewRandom(dict *lexicon.Dictionary) *Random {
	return &Random{words: dict.Words()}
}

func (r *Random) Guess(_ []game.Guess) string {
	return r.words[frand.Intn(len(r.words))]
}

// Scripted plays a fixed word sequence, repeating the last word once
// the script runs out. It exists for tests and shell demos.
type Scripted struct {
	words []string
}

func NewScripted(words ...string) *Scripted {
	if len(words) == 0 {
		panic("strategy: scripted guesser needs at least one word")
	}
	return &Scripted{words: words}
}

func (s *Scripted) Guess(history []game.Guess) string {
	i := len(history)
	if i >= len(s.words) {
		i = len(s.words) - 1
	}
	return s.words[i]
}

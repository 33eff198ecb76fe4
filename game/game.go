// Package game drives single games of the five-letter guessing puzzle:
// a guesser proposes words, the simulator scores each one against the
// answer and feeds the accumulated history back, until the guesser
// hits the answer or runs out of turns.
package game

import (
	"fmt"

	"github.com/gridlegame/gridle/lexicon"
	"github.com/gridlegame/gridle/scoring"
)

// DefaultMaxAttempts is how many turns a game runs before it is called
// unsolved. The official puzzle stops at 6; we keep playing well past
// that so slow guessers still land somewhere in the turn distribution
// instead of being truncated out of it.
const DefaultMaxAttempts = 32

// CanonicalMaxAttempts is the official puzzle's turn limit, for
// callers that want strict rules.
const CanonicalMaxAttempts = 6

// A Guess is one played turn: the word and the feedback it earned.
// Records are appended to the history and never changed afterwards.
type Guess struct {
	Word string
	Mask scoring.Mask
}

// Guesser proposes the next word given the history so far (empty on
// the first turn). The word returned must be in the simulator's
// dictionary unless it is the answer itself; anything else is a bug in
// the guesser, not a playable move.
type Guesser interface {
	Guess(history []Guess) string
}

// GuessFunc adapts a plain function to the Guesser interface.
type GuessFunc func(history []Guess) string

func (f GuessFunc) Guess(history []Guess) string { return f(history) }

// Simulator owns the dictionary and runs guess/feedback rounds. It
// holds no per-game state; a single Simulator can play any number of
// sequential games, and concurrent games just need their own Play
// calls (the dictionary is read-only).
type Simulator struct {
	dict        *lexicon.Dictionary
	maxAttempts int
}

// NewSimulator creates a simulator over the given dictionary with
// DefaultMaxAttempts.
func NewSimulator(dict *lexicon.Dictionary) *Simulator {
	return &Simulator{dict: dict, maxAttempts: DefaultMaxAttempts}
}

// SetMaxAttempts overrides the turn limit for subsequent games.
func (s *Simulator) SetMaxAttempts(n int) {
	if n < 1 {
		panic("game: max attempts must be at least 1")
	}
	s.maxAttempts = n
}

func (s *Simulator) MaxAttempts() int {
	return s.maxAttempts
}

func (s *Simulator) Dictionary() *lexicon.Dictionary {
	return s.dict
}

// Play runs one game. The answer is assumed to be a dictionary word.
// It returns the winning turn number and true, or 0 and false if the
// guesser never found the answer within the turn limit. A guesser
// returning a word that is neither the answer nor in the dictionary
// panics: that is a broken guesser, not a losable turn.
func (s *Simulator) Play(answer string, g Guesser) (int, bool) {
	history := make([]Guess, 0, s.maxAttempts)

	for turn := 1; turn <= s.maxAttempts; turn++ {
		word := g.Guess(history)
		if word == answer {
			return turn, true
		}
		if !s.dict.Has(word) {
			panic(fmt.Sprintf("game: guesser played %q, which is not in the dictionary", word))
		}
		history = append(history, Guess{
			Word: word,
			Mask: scoring.Compute(answer, word),
		})
	}
	return 0, false
}

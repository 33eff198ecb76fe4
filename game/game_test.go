package game

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/gridlegame/gridle/lexicon"
	"github.com/gridlegame/gridle/scoring"
)

func testDict(t *testing.T) *lexicon.Dictionary {
	t.Helper()
	d, err := lexicon.Load(strings.NewReader(
		"right 100\nwrong 90\nnight 80\nsight 70\nlight 60\n"))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPlayFirstTurnWin(t *testing.T) {
	is := is.New(t)
	sim := NewSimulator(testDict(t))
	turn, won := sim.Play("right", GuessFunc(func(_ []Guess) string {
		return "right"
	}))
	is.True(won)
	is.Equal(turn, 1)
}

func TestPlayWinsOnTurnK(t *testing.T) {
	is := is.New(t)
	sim := NewSimulator(testDict(t))
	for k := 2; k <= 5; k++ {
		turn, won := sim.Play("right", GuessFunc(func(history []Guess) string {
			if len(history) == k-1 {
				return "right"
			}
			return "wrong"
		}))
		is.True(won)
		is.Equal(turn, k)
	}
}

func TestPlayExhaustsAttempts(t *testing.T) {
	is := is.New(t)
	sim := NewSimulator(testDict(t))
	calls := 0
	turn, won := sim.Play("right", GuessFunc(func(_ []Guess) string {
		calls++
		return "wrong"
	}))
	is.True(!won)
	is.Equal(turn, 0)
	is.Equal(calls, DefaultMaxAttempts)
}

func TestPlayHistoryIsOrderedAndScored(t *testing.T) {
	is := is.New(t)
	sim := NewSimulator(testDict(t))
	seq := []string{"wrong", "night", "sight", "right"}
	var seen [][]Guess
	turn, won := sim.Play("right", GuessFunc(func(history []Guess) string {
		snapshot := make([]Guess, len(history))
		copy(snapshot, history)
		seen = append(seen, snapshot)
		return seq[len(history)]
	}))
	is.True(won)
	is.Equal(turn, 4)
	is.Equal(len(seen), 4)
	is.Equal(len(seen[0]), 0)
	for i := 1; i < len(seen); i++ {
		is.Equal(len(seen[i]), i)
		for j, g := range seen[i] {
			is.Equal(g.Word, seq[j])
			is.Equal(g.Mask, scoring.Compute("right", g.Word))
		}
	}
}

func TestPlayCustomMaxAttempts(t *testing.T) {
	is := is.New(t)
	sim := NewSimulator(testDict(t))
	sim.SetMaxAttempts(CanonicalMaxAttempts)
	calls := 0
	_, won := sim.Play("right", GuessFunc(func(_ []Guess) string {
		calls++
		return "wrong"
	}))
	is.True(!won)
	is.Equal(calls, CanonicalMaxAttempts)
}

func TestPlayRejectsOffDictionaryGuess(t *testing.T) {
	sim := NewSimulator(testDict(t))
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an off-dictionary guess")
		}
	}()
	sim.Play("right", GuessFunc(func(_ []Guess) string {
		return "zzzzz"
	}))
}

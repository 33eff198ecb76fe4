// Package scoring computes the per-letter feedback for a guess played
// against an answer. Duplicate letters follow the usual rules: an
// answer letter can back at most one Correct or Misplaced mark in the
// guess, and
// exact matches are consumed before misplaced ones.
package scoring

import (
	"fmt"
	"strings"
)

// WordLength is the fixed length of every answer and guess.
const WordLength = 5

// Correctness is the feedback state for one letter position.
type Correctness uint8

const (
	// Absent: the letter does not contribute to any match.
	Absent Correctness = iota
	// Misplaced: the letter occurs elsewhere in the answer, at a
	// position not consumed by a more specific match.
	Misplaced
	// Correct: the letter matches its position exactly.
	Correct
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("Correctness(%d)", uint8(c))
}

// rune rendering for masks; used by String and ParseMask.
const (
	correctRune   = 'C'
	misplacedRune = 'M'
	absentRune    = '-'
)

// A Mask is the feedback for a whole guess, one Correctness per
// position. It is a plain array so masks compare with ==.
type Mask [WordLength]Correctness

func (m Mask) String() string {
	var sb strings.Builder
	for _, c := range m {
		switch c {
		case Correct:
			sb.WriteRune(correctRune)
		case Misplaced:
			sb.WriteRune(misplacedRune)
		default:
			sb.WriteRune(absentRune)
		}
	}
	return sb.String()
}

// ParseMask parses the string form produced by Mask.String, e.g.
// "CM--C".
func ParseMask(s string) (Mask, error) {
	var m Mask
	if len(s) != WordLength {
		return m, fmt.Errorf("mask %q must have %d characters", s, WordLength)
	}
	for i, r := range s {
		switch r {
		case correctRune:
			m[i] = Correct
		case misplacedRune:
			m[i] = Misplaced
		case absentRune:
			m[i] = Absent
		default:
			return m, fmt.Errorf("bad mask character %q in %q", r, s)
		}
	}
	return m, nil
}

// Compute scores guess against answer. Both must be exactly WordLength
// letters; anything else is a caller bug and panics. The first pass
// marks exact matches and consumes those answer positions. The second
// pass scans the answer left to right for an unconsumed occurrence of
// each remaining guess letter; the first one found is consumed and the
// position marked Misplaced. This consumption order is what keeps
// repeated letters from being credited more times than the answer
// contains them.
func Compute(answer, guess string) Mask {
	if len(answer) != WordLength {
		panic(fmt.Sprintf("scoring: answer %q is not %d letters", answer, WordLength))
	}
	if len(guess) != WordLength {
		panic(fmt.Sprintf("scoring: guess %q is not %d letters", guess, WordLength))
	}

	var mask Mask
	var used [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			mask[i] = Correct
			used[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if mask[i] == Correct {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if used[j] || answer[j] != guess[i] {
				continue
			}
			used[j] = true
			mask[i] = Misplaced
			break
		}
	}

	return mask
}

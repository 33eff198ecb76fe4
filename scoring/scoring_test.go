package scoring

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func mustMask(t *testing.T, s string) Mask {
	t.Helper()
	m, err := ParseMask(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestCompute(t *testing.T) {
	is := is.New(t)
	type tc struct {
		answer string
		guess  string
		mask   string
	}
	cases := []tc{
		{"abcde", "abcde", "CCCCC"},
		{"abcde", "lmnop", "-----"},
		{"abcde", "cdbea", "MMMMM"},
		{"aabbb", "aaccc", "CC---"},
		{"aabbb", "ccaac", "--MM-"},
		{"aabbb", "caacc", "-CM--"},
		{"azzaz", "aaabb", "CM---"},
		{"abcde", "aacde", "C-CCC"},
		{"baaaa", "aaaaa", "-CCCC"},
		{"right", "wrong", "-M--M"},
	}
	for _, c := range cases {
		is.Equal(Compute(c.answer, c.guess), mustMask(t, c.mask)) // c.answer vs c.guess
	}
}

// A letter in the guess may never earn more non-Absent marks than it
// has occurrences in the answer.
func TestComputeRepeatBound(t *testing.T) {
	is := is.New(t)
	pairs := [][2]string{
		{"aabbb", "aaaaa"},
		{"azzaz", "zzzzz"},
		{"right", "tight"},
		{"abcde", "eeeee"},
		{"aabba", "babab"},
	}
	for _, p := range pairs {
		answer, guess := p[0], p[1]
		mask := Compute(answer, guess)
		for letter := byte('a'); letter <= 'z'; letter++ {
			credited := 0
			for i := 0; i < WordLength; i++ {
				if guess[i] == letter && mask[i] != Absent {
					credited++
				}
			}
			is.True(credited <= strings.Count(answer, string(letter)))
		}
	}
}

func TestComputeBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a short guess")
		}
	}()
	Compute("abcde", "abcd")
}

func TestMaskRoundTrip(t *testing.T) {
	is := is.New(t)
	m := Compute("aabbb", "caacc")
	is.Equal(m.String(), "-CM--")
	parsed, err := ParseMask(m.String())
	is.NoErr(err)
	is.Equal(parsed, m)

	_, err = ParseMask("CCXX-")
	is.True(err != nil)
	_, err = ParseMask("CC")
	is.True(err != nil)
}

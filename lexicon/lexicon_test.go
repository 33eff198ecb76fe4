package lexicon

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	d, err := Load(strings.NewReader("hello 12345\nworld 99\n\nraise 1000000\n"))
	is.NoErr(err)
	is.Equal(d.Len(), 3)
	is.True(d.Has("hello"))
	is.True(d.Has("raise"))
	is.True(!d.Has("crane"))
	is.Equal(d.Frequency("world"), uint64(99))
	is.Equal(d.Frequency("crane"), uint64(0))
	is.Equal(d.Words(), []string{"hello", "raise", "world"})
}

func TestLoadMalformed(t *testing.T) {
	is := is.New(t)
	cases := []string{
		"hello12345",        // no separator
		"hello abc",         // non-numeric count
		"hello -3",          // negative count
		"hi 100",            // word too short
		"toolong 100",       // word too long
		"ok 5\nhello\nx 10", // bad line mid-file
	}
	for _, in := range cases {
		_, err := Load(strings.NewReader(in))
		is.True(err != nil) // in
	}
}

func TestDefault(t *testing.T) {
	is := is.New(t)
	d := Default()
	is.True(d.Len() > 500)
	is.True(d.Has("right"))
	is.True(d.Has("wrong"))
	is.True(d.Frequency("right") > 0)
}

func TestAnswers(t *testing.T) {
	is := is.New(t)
	d := Default()
	answers := Answers()
	is.True(len(answers) > 50)
	for _, a := range answers {
		is.True(d.Has(a)) // a
	}
}

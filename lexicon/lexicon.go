// Package lexicon loads and holds the immutable set of playable words,
// along with the corpus frequency of each word. The frequency table is
// carried for guessers to weigh candidates with; nothing in the game
// core interprets it.
package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gridlegame/gridle/scoring"
)

//go:embed data/dictionary.txt data/answers.txt
var dataFS embed.FS

// Dictionary is a read-only word set. Construct one with Load or
// LoadFile, or use the built-in Default dictionary. Once built it is
// never mutated, so a single Dictionary may be shared across any
// number of concurrent games.
type Dictionary struct {
	freqs map[string]uint64
	words []string // sorted, for deterministic iteration
}

// Load reads `word<space>count` lines. A line with no separator, a
// word that is not five lowercase letters, or a count that doesn't
// parse is a hard error; the word list is static data and a bad line
// means the file is broken, not the program.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{freqs: make(map[string]uint64)}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, count, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("dictionary line %d: %q: want word<space>count", lineno, line)
		}
		if len(word) != scoring.WordLength {
			return nil, fmt.Errorf("dictionary line %d: word %q is not %d letters",
				lineno, word, scoring.WordLength)
		}
		n, err := strconv.ParseUint(count, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dictionary line %d: bad count %q: %w", lineno, count, err)
		}
		if _, exists := d.freqs[word]; !exists {
			d.words = append(d.words, word)
		}
		d.freqs[word] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Strings(d.words)
	log.Debug().Msgf("loaded dictionary with %d words", len(d.words))
	return d, nil
}

// LoadFile loads a dictionary from a word-frequency file on disk.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

var (
	defaultDict *Dictionary
	defaultOnce sync.Once
)

// Default returns the dictionary embedded in the binary. The embedded
// list is checked-in static data, so a parse failure is a build
// problem and panics.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		f, err := dataFS.Open("data/dictionary.txt")
		if err != nil {
			panic("lexicon: missing embedded dictionary: " + err.Error())
		}
		defer f.Close()
		defaultDict, err = Load(f)
		if err != nil {
			panic("lexicon: bad embedded dictionary: " + err.Error())
		}
	})
	return defaultDict
}

// Has reports whether word is a playable word.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.freqs[word]
	return ok
}

// Frequency returns the corpus occurrence count for word, or 0 if the
// word is not in the dictionary.
func (d *Dictionary) Frequency(word string) uint64 {
	return d.freqs[word]
}

// Words returns every playable word in sorted order. The returned
// slice is shared; callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Answers returns the embedded list of answer words used for batch
// runs. Every answer is also a dictionary word.
func Answers() []string {
	data, err := dataFS.ReadFile("data/answers.txt")
	if err != nil {
		panic("lexicon: missing embedded answers: " + err.Error())
	}
	return strings.Fields(string(data))
}

// AnswersFile reads a whitespace-separated answer list from disk.
func AnswersFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}

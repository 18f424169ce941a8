/*
Package lexicon loads and indexes the playable word corpus.

The corpus is a plain text file with one word per line. Only entries that
are exactly five ASCII letters after trimming survive the load; everything
else is skipped without complaint so that arbitrary dictionary dumps can be
pointed at directly. Words are uppercased once at load time and the result
is immutable for the life of the process.

Lookups go through a Patricia trie, which also gives cheap prefix browsing
for the interactive `words <prefix>` view.
*/
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/wordleology/wordleologist/internal/utils"
)

// WordLength is the only word size the trainer plays with.
const WordLength = 5

// Lexicon is the immutable set of valid five letter words.
type Lexicon struct {
	words []string // sorted ascending, uppercase
	trie  *patricia.Trie
}

// Load reads a line-oriented corpus and keeps the five letter words.
// Lines that are not exactly five ASCII letters after trimming are
// silently dropped. Returns an error only when nothing usable remains.
func Load(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{trie: patricia.NewTrie()}
	scanner := bufio.NewScanner(r)

	skipped := 0
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if len(word) != WordLength || !utils.IsUpperWord(word) {
			skipped++
			continue
		}
		if lex.trie.Insert(patricia.Prefix(word), struct{}{}) {
			lex.words = append(lex.words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	if len(lex.words) == 0 {
		return nil, fmt.Errorf("corpus contains no %d letter words", WordLength)
	}

	sort.Strings(lex.words)
	log.Debugf("Lexicon loaded: %d words kept, %d lines skipped", len(lex.words), skipped)
	return lex, nil
}

// LoadFile opens a corpus file and loads it.
func LoadFile(path string) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Words returns the full word list, sorted ascending.
// The slice is shared; callers must not modify it.
func (l *Lexicon) Words() []string {
	return l.words
}

// Contains reports whether the word is in the lexicon, case-insensitively.
func (l *Lexicon) Contains(word string) bool {
	if len(word) != WordLength {
		return false
	}
	return l.trie.Match(patricia.Prefix(strings.ToUpper(word)))
}

// WithPrefix returns all words starting with the given prefix, sorted.
func (l *Lexicon) WithPrefix(prefix string) []string {
	var matches []string
	_ = l.trie.VisitSubtree(patricia.Prefix(strings.ToUpper(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		matches = append(matches, string(p))
		return nil
	})
	sort.Strings(matches)
	return matches
}

// Random picks a uniformly random word using the supplied source.
func (l *Lexicon) Random(rng *rand.Rand) string {
	return l.words[rng.Intn(len(l.words))]
}

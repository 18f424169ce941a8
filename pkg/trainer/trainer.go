/*
Package trainer implements the Wordle constraint-filtering and
guess-recommendation engine.

A Trainer owns everything learned about one hidden word: a set of still
possible letters for each of the five positions, the letters known to be
somewhere in the word, and the letters known to be nowhere in it. Feedback
arrives through the Green, Yellow and Gray operations (or ApplyMarks when a
full graded guess is available) and only ever narrows that state.

Derived views (the candidate word set, letter frequencies and the three
guess recommendations) are recomputed from the constraint state and the
lexicon on every call. The corpus is a few thousand words, so rescanning is
cheaper than keeping caches honest.
*/
package trainer

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/wordleology/wordleologist/internal/utils"
	"github.com/wordleology/wordleologist/pkg/lexicon"
)

// WordLength mirrors the lexicon's fixed word size.
const WordLength = lexicon.WordLength

var (
	// ErrNoCandidates means the recorded feedback admits no lexicon word at
	// all. The session state is contradictory; only Reset recovers it.
	ErrNoCandidates = errors.New("no candidate words remain: recorded feedback is contradictory")

	// ErrBadAssignment is returned when a green assignment is not exactly
	// one letter.
	ErrBadAssignment = errors.New("assignment must be exactly one letter")

	// ErrBadIndex is returned for position indexes outside 0..4.
	ErrBadIndex = errors.New("position index out of range")

	// ErrNoTarget is returned by self-play operations when no target word
	// has been set.
	ErrNoTarget = errors.New("no target word set")

	// ErrInvalidGuess is returned for guesses that are not five letter
	// lexicon words.
	ErrInvalidGuess = errors.New("guess must be a five letter word from the lexicon")
)

// Trainer tracks one advisory or self-play session against a shared lexicon.
// It is not safe for concurrent use; every session owns its own Trainer.
type Trainer struct {
	lex *lexicon.Lexicon
	rng *rand.Rand

	possible [WordLength]letterSet
	included letterSet
	excluded letterSet
	status   [26]Mark
	guessed  []string
	target   string
	hardmode bool
}

// New creates an advisory session with no target word.
// The rand source drives recommendation tie-breaks only; inject a seeded
// source for reproducible output.
func New(lex *lexicon.Lexicon, rng *rand.Rand) *Trainer {
	t := &Trainer{lex: lex, rng: rng}
	t.clear("")
	return t
}

// NewSelfPlay creates a session with a random target word for play mode.
func NewSelfPlay(lex *lexicon.Lexicon, rng *rand.Rand) *Trainer {
	t := &Trainer{lex: lex, rng: rng}
	t.clear(lex.Random(rng))
	return t
}

// Reset restores the session to its initial state. A non-empty target puts
// the session in self-play mode; it must be a five letter lexicon word.
func (t *Trainer) Reset(target string) error {
	if target != "" {
		target = strings.ToUpper(strings.TrimSpace(target))
		if len(target) != WordLength || !t.lex.Contains(target) {
			return fmt.Errorf("target %q: %w", target, ErrInvalidGuess)
		}
	}
	t.clear(target)
	return nil
}

func (t *Trainer) clear(target string) {
	for i := range t.possible {
		t.possible[i] = allLetters
	}
	t.included = 0
	t.excluded = 0
	t.status = [26]Mark{}
	t.guessed = nil
	t.target = target
	t.hardmode = false
}

// Target returns the self-play target word, or "" in advisory mode.
func (t *Trainer) Target() string { return t.target }

// Guessed returns the guesses submitted so far, oldest first.
func (t *Trainer) Guessed() []string {
	out := make([]string, len(t.guessed))
	copy(out, t.guessed)
	return out
}

// Hardmode reports whether recommendations are restricted to words that
// could still be the answer.
func (t *Trainer) Hardmode() bool { return t.hardmode }

// SetHardmode switches the recommendation pool restriction.
func (t *Trainer) SetHardmode(on bool) { t.hardmode = on }

// ToggleHardmode flips hardmode and returns the new value.
func (t *Trainer) ToggleHardmode() bool {
	t.hardmode = !t.hardmode
	return t.hardmode
}

// Assign collapses the possible letters at index to the single given
// letter and records it as included. This is the green-letter primitive.
// The call mutates nothing when it rejects its input.
func (t *Trainer) Assign(index int, letter string) error {
	if index < 0 || index >= WordLength {
		return fmt.Errorf("index %d: %w", index, ErrBadIndex)
	}
	letter = utils.OnlyLetters(letter)
	if len(letter) != 1 {
		return fmt.Errorf("%q: %w", letter, ErrBadAssignment)
	}
	c := letter[0]
	t.possible[index] = bit(c)
	t.included.add(c)
	return nil
}

// Include records letters as known to appear somewhere in the target.
func (t *Trainer) Include(letters string) {
	letters = utils.OnlyLetters(letters)
	for i := 0; i < len(letters); i++ {
		t.included.add(letters[i])
	}
}

// ExcludeAt removes letters from the possible set at one index. A position
// already collapsed to a confirmed letter is left untouched.
func (t *Trainer) ExcludeAt(index int, letters string) error {
	if index < 0 || index >= WordLength {
		return fmt.Errorf("index %d: %w", index, ErrBadIndex)
	}
	if t.possible[index].size() <= 1 {
		return nil
	}
	letters = utils.OnlyLetters(letters)
	for i := 0; i < len(letters); i++ {
		t.possible[index].remove(letters[i])
	}
	return nil
}

// Exclude removes letters from every unresolved position and records them
// for the scoring heuristic. This is the gray-letter primitive. Positions
// already confirmed by a green stay as they are: a repeated letter can be
// green at one position and gray at another occurrence in the same guess.
func (t *Trainer) Exclude(letters string) {
	letters = utils.OnlyLetters(letters)
	for index := range t.possible {
		_ = t.ExcludeAt(index, letters)
	}
	// excluded is consulted only by the information score; candidate
	// filtering is driven entirely by the positional sets.
	for i := 0; i < len(letters); i++ {
		t.excluded.add(letters[i])
	}
}

// Green applies a five character green pattern such as "-R---".
// Non-letter characters mark positions with no green. The whole pattern is
// validated before any position is assigned.
func (t *Trainer) Green(pattern string) error {
	marks, err := patternLetters(pattern)
	if err != nil {
		return err
	}
	for index, c := range marks {
		if err := t.Assign(index, string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Yellow applies a five character yellow pattern such as "A----": each
// marked letter is required somewhere in the word but ruled out at the
// position it was guessed.
func (t *Trainer) Yellow(pattern string) error {
	marks, err := patternLetters(pattern)
	if err != nil {
		return err
	}
	for index, c := range marks {
		t.Include(string(c))
		if err := t.ExcludeAt(index, string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Gray rules the given letters out of every unresolved position.
// Letters may come in any order and any case; other characters are ignored.
func (t *Trainer) Gray(letters string) {
	t.Exclude(letters)
}

// patternLetters maps a positional pattern string to {index: letter}.
// Non-letter characters are placeholders for untouched positions.
func patternLetters(pattern string) (map[int]byte, error) {
	if len(pattern) > WordLength {
		return nil, fmt.Errorf("pattern %q longer than %d: %w", pattern, WordLength, ErrBadIndex)
	}
	marks := make(map[int]byte)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			marks[i] = c
		}
	}
	return marks, nil
}

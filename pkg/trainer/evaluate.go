package trainer

import (
	"fmt"
	"strings"
)

// Mark is the graded result for a single letter of a guess. The ordering is
// by information value: a later, less informative reading never downgrades
// a letter's best known status.
type Mark uint8

const (
	MarkUnknown Mark = iota
	MarkAbsent
	MarkPresent
	MarkCorrect
)

func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkPresent:
		return "present-elsewhere"
	case MarkCorrect:
		return "correct-position"
	}
	return "unknown"
}

// ValidateGuess checks that a submitted guess is exactly five characters
// and a lexicon member, case-insensitively. State is never touched.
func (t *Trainer) ValidateGuess(guess string) error {
	guess = strings.TrimSpace(guess)
	if len(guess) != WordLength || !t.lex.Contains(guess) {
		return fmt.Errorf("%q: %w", guess, ErrInvalidGuess)
	}
	return nil
}

// Evaluate grades a guess against the self-play target word and records it
// in the guess history. Grading is count-aware over two passes: exact
// matches claim their letters first, then remaining guess letters go
// present or absent depending on how many unclaimed copies the target
// still holds. A doubled guess letter can therefore come back correct at
// one position and absent at the other.
func (t *Trainer) Evaluate(guess string) ([WordLength]Mark, error) {
	var marks [WordLength]Mark
	if t.target == "" {
		return marks, ErrNoTarget
	}
	if err := t.ValidateGuess(guess); err != nil {
		return marks, err
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))

	var remaining [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == t.target[i] {
			marks[i] = MarkCorrect
		} else {
			remaining[t.target[i]-'A']++
		}
	}
	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if remaining[guess[i]-'A'] > 0 {
			marks[i] = MarkPresent
			remaining[guess[i]-'A']--
		} else {
			marks[i] = MarkAbsent
		}
	}

	for i := 0; i < WordLength; i++ {
		t.upgradeStatus(guess[i], marks[i])
	}
	t.guessed = append(t.guessed, guess)
	return marks, nil
}

// upgradeStatus records the best known status for a letter. Green sticks;
// a yellow reading beats a gray one from another occurrence.
func (t *Trainer) upgradeStatus(c byte, m Mark) {
	if m > t.status[c-'A'] {
		t.status[c-'A'] = m
	}
}

// Alphabet returns the best known status of every letter, for display.
func (t *Trainer) Alphabet() [26]Mark {
	return t.status
}

// Solved reports whether every mark is a correct-position hit.
func Solved(marks [WordLength]Mark) bool {
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// ApplyMarks feeds a fully graded guess back into the constraint state.
// Greens are applied first, then yellows, then grays, so the gray pass sees
// positions confirmed this very round as settled and leaves them alone.
//
// A gray occurrence of a letter that also came back green or yellow in the
// same guess means "no further copies", which the per-position model cannot
// express; those letters are skipped rather than over-excluded, keeping the
// true target inside the candidate set.
func (t *Trainer) ApplyMarks(guess string, marks [WordLength]Mark) error {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != WordLength {
		return fmt.Errorf("%q: %w", guess, ErrInvalidGuess)
	}

	var present letterSet
	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect || marks[i] == MarkPresent {
			present.add(guess[i])
		}
	}

	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkCorrect {
			if err := t.Assign(i, string(guess[i])); err != nil {
				return err
			}
		}
	}
	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkPresent {
			t.Include(string(guess[i]))
			if err := t.ExcludeAt(i, string(guess[i])); err != nil {
				return err
			}
		}
	}
	gray := make([]byte, 0, WordLength)
	for i := 0; i < WordLength; i++ {
		if marks[i] == MarkAbsent {
			if present.has(guess[i]) {
				// Duplicate letter already confirmed elsewhere this round.
				// Still ruled out at this exact slot.
				if err := t.ExcludeAt(i, string(guess[i])); err != nil {
					return err
				}
				continue
			}
			gray = append(gray, guess[i])
		}
	}
	if len(gray) > 0 {
		t.Exclude(string(gray))
	}
	return nil
}

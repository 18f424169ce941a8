package trainer

// Candidates returns every lexicon word still consistent with the recorded
// feedback, sorted ascending. The set is recomputed from the lexicon on
// every call.
//
// An empty result is never returned as such: it means the constraint state
// is contradictory (or the target is not a lexicon word) and surfaces as
// ErrNoCandidates so callers can tell it apart from a small-but-valid set.
func (t *Trainer) Candidates() ([]string, error) {
	words := t.lex.Words()
	out := make([]string, 0, len(words))
	for _, word := range words {
		if t.admits(word) {
			out = append(out, word)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoCandidates
	}
	return out, nil
}

// CandidateCount returns the size of the candidate set.
func (t *Trainer) CandidateCount() (int, error) {
	words, err := t.Candidates()
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// admits checks one word against the full constraint state: every included
// letter must occur in the word, and every position must hold a letter the
// position still allows.
func (t *Trainer) admits(word string) bool {
	if t.included&^wordLetters(word) != 0 {
		return false
	}
	for i := 0; i < WordLength; i++ {
		if !t.possible[i].has(word[i]) {
			return false
		}
	}
	return true
}

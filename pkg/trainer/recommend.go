package trainer

// ClueMode selects one of the three guess-ranking heuristics.
type ClueMode int

const (
	// MoreInformation favors discovering unknown, broadly occurring letters.
	MoreInformation ClueMode = iota
	// MoreGreens favors letters likely to land in the correct position.
	MoreGreens
	// Balanced sums the other two scores.
	Balanced
)

func (m ClueMode) String() string {
	switch m {
	case MoreInformation:
		return "more information"
	case MoreGreens:
		return "more green letters"
	case Balanced:
		return "balanced"
	}
	return "unknown"
}

// Clues bundles one recommendation per heuristic.
type Clues struct {
	Information string
	Positional  string
	Balanced    string
}

// BestGuess returns a maximal-score word for the given mode, drawn from the
// full lexicon, or from the candidate set when hardmode is on. Ties are
// broken uniformly at random, so repeat calls with identical state may
// return different members of the maximal set.
func (t *Trainer) BestGuess(mode ClueMode) (string, error) {
	candidates, err := t.Candidates()
	if err != nil {
		return "", err
	}

	pool := t.lex.Words()
	if t.hardmode {
		pool = candidates
	}
	if len(pool) == 0 {
		return "", ErrNoCandidates
	}

	freq := CountFrequencies(candidates)
	idxFreq := CountIndexFrequencies(candidates)
	known := t.included | t.excluded

	best := -1
	var tied []string
	for _, word := range pool {
		var score int
		switch mode {
		case MoreInformation:
			score = informationScore(word, freq, known)
		case MoreGreens:
			score = positionalScore(word, idxFreq)
		default:
			score = informationScore(word, freq, known) + positionalScore(word, idxFreq)
		}
		if score > best {
			best = score
			tied = tied[:0]
		}
		if score == best {
			tied = append(tied, word)
		}
	}
	return tied[t.rng.Intn(len(tied))], nil
}

// Clues computes all three recommendations over the same candidate state.
func (t *Trainer) Clues() (Clues, error) {
	info, err := t.BestGuess(MoreInformation)
	if err != nil {
		return Clues{}, err
	}
	greens, err := t.BestGuess(MoreGreens)
	if err != nil {
		return Clues{}, err
	}
	balanced, err := t.BestGuess(Balanced)
	if err != nil {
		return Clues{}, err
	}
	return Clues{Information: info, Positional: greens, Balanced: balanced}, nil
}

// informationScore sums presence counts over the distinct letters of a
// word, skipping letters whose status is already settled: guessing a known
// letter again yields nothing new.
func informationScore(word string, freq Frequencies, known letterSet) int {
	score := 0
	letters := wordLetters(word) &^ known
	for c := byte('A'); c <= 'Z'; c++ {
		if letters.has(c) {
			score += freq.Of(c)
		}
	}
	return score
}

// positionalScore sums the per-position counts for each letter of a word.
// Repeats count once per position, not once per distinct letter.
func positionalScore(word string, freq IndexFrequencies) int {
	score := 0
	for i := 0; i < WordLength; i++ {
		score += freq.Of(i, word[i])
	}
	return score
}

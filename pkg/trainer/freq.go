package trainer

// Frequencies counts, per letter, how many words of a set contain that
// letter at least once. A word with repeated letters contributes one.
type Frequencies [26]int

// Of returns the count for a letter.
func (f Frequencies) Of(c byte) int { return f[c-'A'] }

// IndexFrequencies counts, per position and letter, how many words of a
// set carry that exact letter at that exact position.
type IndexFrequencies [WordLength][26]int

// Of returns the count for a letter at a position.
func (f IndexFrequencies) Of(index int, c byte) int { return f[index][c-'A'] }

// CountFrequencies tallies per-letter presence counts over a word set.
func CountFrequencies(words []string) Frequencies {
	var freq Frequencies
	for _, word := range words {
		seen := wordLetters(word)
		for c := byte('A'); c <= 'Z'; c++ {
			if seen.has(c) {
				freq[c-'A']++
			}
		}
	}
	return freq
}

// CountIndexFrequencies tallies per-position letter counts over a word set.
func CountIndexFrequencies(words []string) IndexFrequencies {
	var freq IndexFrequencies
	for _, word := range words {
		for i := 0; i < WordLength; i++ {
			freq[i][word[i]-'A']++
		}
	}
	return freq
}

// Frequencies returns presence counts over the current candidate set.
func (t *Trainer) Frequencies() (Frequencies, error) {
	words, err := t.Candidates()
	if err != nil {
		return Frequencies{}, err
	}
	return CountFrequencies(words), nil
}

// IndexFrequencies returns positional counts over the current candidate set.
func (t *Trainer) IndexFrequencies() (IndexFrequencies, error) {
	words, err := t.Candidates()
	if err != nil {
		return IndexFrequencies{}, err
	}
	return CountIndexFrequencies(words), nil
}

package trainer

import (
	"math/rand"
	"testing"
)

// batchLexicon sets up a state where the candidate set is
// {BATCH, CATCH, LATCH, MATCH} and BLIMP is the unique information-score
// maximizer: its unknown letters B, L, M each appear in one candidate,
// while every candidate carries at most one unknown letter.
func batchTrainer(t *testing.T) *Trainer {
	t.Helper()
	tr := New(
		newLexicon(t, "BATCH", "CATCH", "LATCH", "MATCH", "BLIMP"),
		rand.New(rand.NewSource(7)),
	)
	if err := tr.Green("-ATCH"); err != nil {
		t.Fatalf("Green: %v", err)
	}
	return tr
}

func TestInformationScorePrefersUnknownLetters(t *testing.T) {
	tr := batchTrainer(t)

	// Deterministic despite the random tie-break: BLIMP scores 3, every
	// other word at most 1.
	for i := 0; i < 20; i++ {
		got, err := tr.BestGuess(MoreInformation)
		if err != nil {
			t.Fatalf("BestGuess: %v", err)
		}
		if got != "BLIMP" {
			t.Fatalf("BestGuess(MoreInformation) = %q, want BLIMP", got)
		}
	}
}

func TestHardmodeRestrictsPool(t *testing.T) {
	tr := batchTrainer(t)
	tr.SetHardmode(true)

	inCandidates := map[string]bool{"BATCH": true, "CATCH": true, "LATCH": true, "MATCH": true}
	for _, mode := range []ClueMode{MoreInformation, MoreGreens, Balanced} {
		for i := 0; i < 20; i++ {
			got, err := tr.BestGuess(mode)
			if err != nil {
				t.Fatalf("BestGuess(%v): %v", mode, err)
			}
			if !inCandidates[got] {
				t.Fatalf("hardmode BestGuess(%v) = %q, not a candidate", mode, got)
			}
		}
	}
}

func TestTieBreakConfinedToMaximalSet(t *testing.T) {
	tr := batchTrainer(t)
	tr.SetHardmode(true)

	// Within the candidate pool, BATCH, LATCH and MATCH tie on the
	// information score (one unknown letter each, one occurrence each);
	// CATCH has no unknown letters and must never win.
	tied := map[string]bool{"BATCH": true, "LATCH": true, "MATCH": true}
	for i := 0; i < 50; i++ {
		got, err := tr.BestGuess(MoreInformation)
		if err != nil {
			t.Fatalf("BestGuess: %v", err)
		}
		if !tied[got] {
			t.Fatalf("BestGuess = %q, want member of maximal set %v", got, tied)
		}
	}
}

func TestPositionalScoreCountsEveryPosition(t *testing.T) {
	words := []string{"CRANE", "CRATE", "SLATE"}
	idx := CountIndexFrequencies(words)

	testCases := []struct {
		word string
		want int
	}{
		// per position: C@0 twice, R@1 twice, A@2 in all three,
		// N@3 once, E@4 in all three
		{"CRANE", 2 + 2 + 3 + 1 + 3},
		// S@0 once, L@1 once, A@2 in all three, T@3 twice, E@4 in all three
		{"SLATE", 1 + 1 + 3 + 2 + 3},
	}
	for _, tc := range testCases {
		if got := positionalScore(tc.word, idx); got != tc.want {
			t.Errorf("positionalScore(%s) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestCluesPropagatesContradiction(t *testing.T) {
	tr := newTrainer(t, "CRANE", "SLATE")
	if err := tr.Yellow("X----"); err != nil {
		t.Fatalf("Yellow: %v", err)
	}
	if _, err := tr.Clues(); err == nil {
		t.Fatal("Clues on contradictory state must fail")
	}
}

func TestFrequenciesCountPresenceOncePerWord(t *testing.T) {
	freq := CountFrequencies([]string{"GEESE", "CRANE"})

	if got := freq.Of('E'); got != 2 {
		t.Errorf("freq[E] = %d, want 2 (one per word, repeats ignored)", got)
	}
	if got := freq.Of('G'); got != 1 {
		t.Errorf("freq[G] = %d, want 1", got)
	}
	if got := freq.Of('Z'); got != 0 {
		t.Errorf("freq[Z] = %d, want 0", got)
	}
}

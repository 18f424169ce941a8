package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/wordleology/wordleologist/pkg/lexicon"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

// runBench self-plays n random targets, guessing the balanced
// recommendation in hardmode each round, and prints the guess-count
// distribution. Useful for eyeballing heuristic changes against a corpus.
func runBench(lex *lexicon.Lexicon, rng *rand.Rand, n, maxGuesses int) {
	if maxGuesses <= 0 {
		maxGuesses = 6
	}
	bar := progressbar.Default(int64(n), "solving")

	histogram := make([]int, maxGuesses+1)
	failed := 0
	for run := 0; run < n; run++ {
		used, err := solveOne(lex, rng, maxGuesses)
		if err != nil {
			log.Errorf("bench run %d: %v", run, err)
			failed++
		} else if used == 0 {
			failed++
		} else {
			histogram[used]++
		}
		_ = bar.Add(1)
	}

	solved := n - failed
	fmt.Printf("\nSolved %d/%d targets within %d guesses\n", solved, n, maxGuesses)
	total := 0
	for guesses := 1; guesses <= maxGuesses; guesses++ {
		count := histogram[guesses]
		total += guesses * count
		fmt.Printf("%d guesses: %d\n", guesses, count)
	}
	if solved > 0 {
		fmt.Printf("mean: %.2f guesses\n", float64(total)/float64(solved))
	}
	if failed > 0 {
		fmt.Printf("unsolved: %d\n", failed)
	}
}

// solveOne plays a single round to completion. Returns the number of
// guesses used, or 0 when the budget ran out.
func solveOne(lex *lexicon.Lexicon, rng *rand.Rand, maxGuesses int) (int, error) {
	tr := trainer.NewSelfPlay(lex, rng)
	tr.SetHardmode(true)

	for attempt := 1; attempt <= maxGuesses; attempt++ {
		guess, err := tr.BestGuess(trainer.Balanced)
		if err != nil {
			return 0, err
		}
		marks, err := tr.Evaluate(guess)
		if err != nil {
			return 0, err
		}
		if trainer.Solved(marks) {
			return attempt, nil
		}
		if err := tr.ApplyMarks(guess, marks); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

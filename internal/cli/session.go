// Package cli drives the interactive trainer prompt: it tokenizes command
// input, validates it, and dispatches to the engine, rendering results
// through the gradient package.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wordleology/wordleologist/internal/logger"
	"github.com/wordleology/wordleologist/pkg/config"
	"github.com/wordleology/wordleologist/pkg/gradient"
	"github.com/wordleology/wordleologist/pkg/lexicon"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

// Session is one interactive trainer run over stdin/stdout.
type Session struct {
	lg     *log.Logger
	tr     *trainer.Trainer
	lex    *lexicon.Lexicon
	rng    *rand.Rand
	cfg    *config.Config
	reader *bufio.Reader
	out    io.Writer
}

// NewSession builds an interactive session reading from stdin.
func NewSession(lex *lexicon.Lexicon, rng *rand.Rand, cfg *config.Config) *Session {
	tr := trainer.New(lex, rng)
	tr.SetHardmode(cfg.Trainer.Hardmode)
	return &Session{
		lg:     logger.Default("cli"),
		tr:     tr,
		lex:    lex,
		rng:    rng,
		cfg:    cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Start runs the prompt loop until `exit` or EOF.
func (s *Session) Start() error {
	banner := gradient.MarkStyle(trainer.MarkCorrect).Render("Wordle") +
		gradient.MarkStyle(trainer.MarkPresent).Render("ologist")
	fmt.Fprintf(s.out, "\n%s at your service.\n\n", banner)
	fmt.Fprintln(s.out, "Enter 'help' for instructions")
	fmt.Fprintln(s.out, "Enter 'exit' to quit.")

	for {
		fmt.Fprint(s.out, "\n > ")
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		command, token := tokenize(line)
		if command == "" {
			continue
		}
		if command == "exit" {
			return nil
		}
		if err := validate(command, token); err != nil {
			s.lg.Errorf("%v", err)
			continue
		}

		if !mutates(command) || !s.cfg.CLI.ShowRemaining {
			s.dispatch(command, token)
			continue
		}
		before, beforeErr := s.tr.CandidateCount()
		s.dispatch(command, token)
		if after := s.remaining(); after >= 0 && beforeErr == nil && after < before {
			fmt.Fprintf(s.out, "\n%s possible words remain.\n", gradient.RenderRemaining(after))
		}
	}
}

// mutates reports whether a command narrows the constraint state, so the
// remaining count is only recomputed (and a contradiction reported) when
// it can actually have changed.
func mutates(command string) bool {
	switch command {
	case "green", "yellow", "gray", "reset":
		return true
	}
	return false
}

// tokenize splits an input line at the first space into a lowercase
// command and its raw argument token.
func tokenize(line string) (string, string) {
	line = strings.TrimSpace(line)
	command, token, _ := strings.Cut(line, " ")
	return strings.ToLower(command), strings.TrimSpace(token)
}

// validate checks a token's shape for its command before anything mutates.
func validate(command, token string) error {
	switch command {
	case "green", "yellow", "test":
		if len(token) != lexicon.WordLength {
			return fmt.Errorf("%s needs a %d character sequence, got %q", command, lexicon.WordLength, token)
		}
	case "gray":
		if token == "" {
			return fmt.Errorf("gray needs at least one letter")
		}
	case "help":
		if _, ok := helpTopics[strings.ToLower(token)]; !ok {
			return fmt.Errorf("no help for %q", token)
		}
	case "clues", "words", "hardmode", "reset", "play":
		// no token required; extra text is ignored
	default:
		return fmt.Errorf("%s is not a known command", command)
	}
	return nil
}

func (s *Session) dispatch(command, token string) {
	switch command {
	case "green":
		if err := s.tr.Green(token); err != nil {
			s.lg.Errorf("green: %v", err)
		}
	case "yellow":
		if err := s.tr.Yellow(token); err != nil {
			s.lg.Errorf("yellow: %v", err)
		}
	case "gray":
		s.tr.Gray(token)
	case "test":
		s.printPrediction(strings.ToUpper(token))
	case "clues":
		s.printClues()
	case "words":
		s.printWords(token)
	case "hardmode":
		if s.tr.ToggleHardmode() {
			fmt.Fprintln(s.out, "hardmode is on.")
		} else {
			fmt.Fprintln(s.out, "hardmode is off.")
		}
	case "reset":
		if err := s.tr.Reset(""); err != nil {
			s.lg.Errorf("reset: %v", err)
		}
		fmt.Fprintln(s.out, "Fresh slate.")
	case "play":
		s.play()
	case "help":
		fmt.Fprintln(s.out, helpTopics[strings.ToLower(token)])
	}
}

// remaining returns the candidate count, or -1 on a contradictory state.
func (s *Session) remaining() int {
	n, err := s.tr.CandidateCount()
	if err != nil {
		s.lg.Errorf("%v", err)
		s.lg.Error("Use 'reset' to start over.")
		return -1
	}
	return n
}

func (s *Session) printPrediction(guess string) {
	words, err := s.tr.Candidates()
	if err != nil {
		s.lg.Errorf("%v", err)
		return
	}
	freq := trainer.CountFrequencies(words)
	idxFreq := trainer.CountIndexFrequencies(words)
	fmt.Fprintln(s.out, gradient.RenderPrediction(guess, len(words), freq, idxFreq))
}

func (s *Session) printClues() {
	clues, err := s.tr.Clues()
	if err != nil {
		s.lg.Errorf("clues: %v", err)
		return
	}
	words, err := s.tr.Candidates()
	if err != nil {
		s.lg.Errorf("clues: %v", err)
		return
	}
	freq := trainer.CountFrequencies(words)
	idxFreq := trainer.CountIndexFrequencies(words)

	fmt.Fprintf(s.out, "More Information: %s\n", gradient.RenderPrediction(clues.Information, len(words), freq, idxFreq))
	fmt.Fprintf(s.out, "More Green Letters: %s\n", gradient.RenderPrediction(clues.Positional, len(words), freq, idxFreq))
	fmt.Fprintf(s.out, "Balanced: %s\n", gradient.RenderPrediction(clues.Balanced, len(words), freq, idxFreq))
}

func (s *Session) printWords(prefix string) {
	words, err := s.tr.Candidates()
	if err != nil {
		s.lg.Errorf("words: %v", err)
		return
	}
	if prefix != "" {
		inPrefix := make(map[string]bool)
		for _, w := range s.lex.WithPrefix(prefix) {
			inPrefix[w] = true
		}
		kept := words[:0:0]
		for _, w := range words {
			if inPrefix[w] {
				kept = append(kept, w)
			}
		}
		words = kept
		if len(words) == 0 {
			fmt.Fprintf(s.out, "No possible words start with %q.\n", strings.ToUpper(prefix))
			return
		}
	}

	shown := words
	if max := s.cfg.CLI.MaxWordsShown; max > 0 && len(shown) > max {
		shown = shown[:max]
	}
	perRow := s.cfg.CLI.WordsPerRow
	if perRow <= 0 {
		perRow = 8
	}
	for i := 0; i < len(shown); i += perRow {
		end := min(i+perRow, len(shown))
		fmt.Fprintln(s.out, strings.Join(shown[i:end], "  "))
	}
	if len(shown) < len(words) {
		fmt.Fprintf(s.out, "... and %d more.\n", len(words)-len(shown))
	}
}

// play runs a self-contained game against a random target. The advisory
// session's constraint state is left alone; the round gets its own trainer.
func (s *Session) play() {
	game := trainer.NewSelfPlay(s.lex, s.rng)
	rendered := make([]string, 0, s.cfg.Trainer.MaxGuesses)

	for len(rendered) < s.cfg.Trainer.MaxGuesses {
		fmt.Fprint(s.out, "\nPlease enter your guess: ")
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return
		}
		guess := strings.ToUpper(strings.TrimSpace(line))
		if err := game.ValidateGuess(guess); err != nil {
			fmt.Fprint(s.out, "\nPlease enter a valid 5 letter word.")
			continue
		}
		marks, err := game.Evaluate(guess)
		if err != nil {
			s.lg.Errorf("play: %v", err)
			return
		}
		rendered = append(rendered, gradient.RenderMarks(guess, marks))

		fmt.Fprintln(s.out)
		for _, row := range rendered {
			fmt.Fprintln(s.out, row)
		}
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, gradient.RenderAlphabet(game.Alphabet()))

		if trainer.Solved(marks) {
			fmt.Fprintln(s.out, "\nCongratulations!")
			return
		}
	}
	reveal := gradient.MarkStyle(trainer.MarkCorrect).Render(game.Target())
	fmt.Fprintf(s.out, "\nWe were looking for %s\n", reveal)
	fmt.Fprintln(s.out, "Better luck next time!")
}

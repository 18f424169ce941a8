package cli

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/wordleology/wordleologist/internal/logger"
	"github.com/wordleology/wordleologist/pkg/config"
	"github.com/wordleology/wordleologist/pkg/lexicon"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		wantCommand string
		wantToken   string
	}{
		{"green -r---", "green", "-r---"},
		{"GRAY stl", "gray", "stl"},
		{"clues", "clues", ""},
		{"  words   cr  ", "words", "cr"},
		{"help green", "help", "green"},
		{"", "", ""},
	}
	for _, tc := range testCases {
		command, token := tokenize(tc.input)
		if command != tc.wantCommand || token != tc.wantToken {
			t.Errorf("tokenize(%q) = (%q, %q), want (%q, %q)",
				tc.input, command, token, tc.wantCommand, tc.wantToken)
		}
	}
}

// newTestSession builds a session over in-memory streams with its error
// log captured in errLog.
func newTestSession(t *testing.T, input string, errLog *bytes.Buffer) *Session {
	t.Helper()
	lex, err := lexicon.Load(strings.NewReader("CRANE\nSLATE\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	lg := logger.Default("cli")
	lg.SetOutput(errLog)
	return &Session{
		lg:     lg,
		tr:     trainer.New(lex, rng),
		lex:    lex,
		rng:    rng,
		cfg:    config.DefaultConfig(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &bytes.Buffer{},
	}
}

func TestContradictionReportedOnlyOnMutation(t *testing.T) {
	// 'X' occurs in no word, so the yellow reading is contradictory.
	// Commands that cannot change the candidate set must not re-report it
	// on every prompt afterwards.
	var errLog bytes.Buffer
	s := newTestSession(t, "yellow x----\nhelp green\nhardmode\nexit\n", &errLog)

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := strings.Count(errLog.String(), "Use 'reset'"); got != 1 {
		t.Errorf("reset hint logged %d times, want 1\nlog:\n%s", got, errLog.String())
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		command string
		token   string
		wantOK  bool
	}{
		{"green", "-r---", true},
		{"green", "-r--", false},
		{"green", "", false},
		{"yellow", "a----", true},
		{"yellow", "toolong", false},
		{"test", "crane", true},
		{"test", "cr", false},
		{"gray", "stl", true},
		{"gray", "", false},
		{"clues", "", true},
		{"words", "", true},
		{"words", "cr", true},
		{"hardmode", "", true},
		{"reset", "", true},
		{"play", "", true},
		{"help", "", true},
		{"help", "green", true},
		{"help", "bogus", false},
		{"frobnicate", "", false},
	}
	for _, tc := range testCases {
		err := validate(tc.command, tc.token)
		if tc.wantOK && err != nil {
			t.Errorf("validate(%q, %q) = %v, want ok", tc.command, tc.token, err)
		}
		if !tc.wantOK && err == nil {
			t.Errorf("validate(%q, %q) = ok, want error", tc.command, tc.token)
		}
	}
}

/*
Package main implements the wordleologist trainer CLI and advisor server.

Wordleologist tracks what a sequence of Wordle feedback readings says about
the hidden word and recommends guesses that narrow the field. The engine
keeps a set of possible letters per position plus the letters known present
or absent; every query refilters the corpus against that state and ranks
guesses by letter frequency over the remaining candidates.

# Usage

Start the interactive trainer with the default corpus:

	wordleologist

Point at a different corpus and enable debug logging:

	wordleologist -words /path/to/words.txt -d

Run as a MessagePack IPC server for editor integration:

	wordleologist -serve

Benchmark the balanced heuristic against 500 random targets:

	wordleologist -bench 500

# Interactive commands

	green -r---     confirm 'r' at the second position
	yellow a----    'a' is in the word, but not first
	gray stl        's', 't' and 'l' are not in the word
	test crane      color a prospective guess by its usefulness
	clues           show the three recommended guesses
	words [prefix]  list remaining possible words
	hardmode        restrict recommendations to possible answers
	play            guess a random word in six tries
	reset           start over
	help [command]  instructions

# Configuration

Runtime configuration lives in a TOML file that is created with defaults
when missing:

	[lexicon]
	words_file = "words.txt"

	[trainer]
	hardmode = false
	max_guesses = 6

	[cli]
	words_per_row = 8
	max_words_shown = 120
	show_remaining = true

The corpus is one word per line; anything that is not exactly five letters
is skipped, so standard dictionary dumps work unmodified.
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wordleology/wordleologist/internal/cli"
	"github.com/wordleology/wordleologist/internal/utils"
	"github.com/wordleology/wordleologist/pkg/config"
	"github.com/wordleology/wordleologist/pkg/lexicon"
	"github.com/wordleology/wordleologist/pkg/server"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

const (
	Version = "1.0.0"
	AppName = "wordleologist"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, corpus and mode together; the real logic lives
// in the library packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	wordsPath := flag.String("words", "", "Corpus file, one word per line (overrides config)")
	configPath := flag.String("config", "", "Path to config.toml")
	hardmode := flag.Bool("hard", false, "Start with hardmode on")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC advisor instead of the prompt")
	benchRuns := flag.Int("bench", 0, "Self-play n random targets with the balanced heuristic and report")
	seed := flag.Int64("seed", 0, "Seed for recommendation tie-breaks (0 uses the clock)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}
	if *hardmode {
		appConfig.Trainer.Hardmode = true
	}

	lex, err := lexicon.LoadFile(resolveWordsFile(*wordsPath, appConfig))
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Debugf("Corpus ready: %d words", lex.Len())

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	switch {
	case *benchRuns > 0:
		runBench(lex, rng, *benchRuns, appConfig.Trainer.MaxGuesses)
	case *serveMode:
		tr := trainer.New(lex, rng)
		tr.SetHardmode(appConfig.Trainer.Hardmode)
		if err := server.NewServer(tr).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		if err := cli.NewSession(lex, rng, appConfig).Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	}
}

// resolveWordsFile picks the corpus path: the -words flag wins, then the
// configured path, falling back to a file next to the executable when the
// configured path is relative and absent from the working directory.
func resolveWordsFile(flagPath string, cfg *config.Config) string {
	path := flagPath
	if path == "" {
		path = cfg.Lexicon.WordsFile
	}
	if utils.FileExists(path) || filepath.IsAbs(path) {
		return path
	}
	if execDir, err := utils.GetExecutableDir(); err == nil {
		sibling := filepath.Join(execDir, path)
		if utils.FileExists(sibling) {
			return sibling
		}
	}
	return path
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordleologist ] Wordle hints as gentle as you want them.")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

package server

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wordleology/wordleologist/pkg/lexicon"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

func newTrainer(t *testing.T) *trainer.Trainer {
	t.Helper()
	lex, err := lexicon.Load(strings.NewReader("CRANE\nSLATE\nTRACE\nGRAPE\nBRINE"))
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	return trainer.New(lex, rand.New(rand.NewSource(5)))
}

// runRequests encodes requests, runs the server to EOF and returns a
// decoder positioned after the ready message.
func runRequests(t *testing.T, tr *trainer.Trainer, requests ...AdviseRequest) *msgpack.Decoder {
	t.Helper()

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, request := range requests {
		if err := enc.Encode(request); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	if err := NewServerIO(tr, &in, &out).Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready message: %v", err)
	}
	if ready["status"] != "ready" {
		t.Fatalf("ready status = %q", ready["status"])
	}
	return dec
}

func TestServerGreenNarrowsCandidates(t *testing.T) {
	dec := runRequests(t, newTrainer(t),
		AdviseRequest{ID: "r1", Op: "green", Token: "c----"},
		AdviseRequest{ID: "r2", Op: "words", Limit: 10},
	)

	var green AdviseResponse
	if err := dec.Decode(&green); err != nil {
		t.Fatalf("decoding green response: %v", err)
	}
	if green.ID != "r1" || green.Status != "ok" || green.Count != 1 {
		t.Errorf("green response = %+v, want ok with count 1", green)
	}

	var words AdviseResponse
	if err := dec.Decode(&words); err != nil {
		t.Fatalf("decoding words response: %v", err)
	}
	if len(words.Words) != 1 || words.Words[0] != "CRANE" {
		t.Errorf("words = %v, want [CRANE]", words.Words)
	}
}

func TestServerClues(t *testing.T) {
	dec := runRequests(t, newTrainer(t),
		AdviseRequest{ID: "r1", Op: "clues"},
	)

	var response AdviseResponse
	if err := dec.Decode(&response); err != nil {
		t.Fatalf("decoding clues response: %v", err)
	}
	if response.Clues == nil {
		t.Fatal("clues response missing clue set")
	}
	for _, w := range []string{response.Clues.Information, response.Clues.Positional, response.Clues.Balanced} {
		if len(w) != 5 {
			t.Errorf("clue %q is not a five letter word", w)
		}
	}
}

func TestServerUnknownOp(t *testing.T) {
	dec := runRequests(t, newTrainer(t),
		AdviseRequest{ID: "r1", Op: "frobnicate"},
	)

	var failure AdviseError
	if err := dec.Decode(&failure); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if failure.ID != "r1" || failure.Code != 400 {
		t.Errorf("error = %+v, want code 400", failure)
	}
}

func TestServerContradictionAndReset(t *testing.T) {
	dec := runRequests(t, newTrainer(t),
		// X is in no corpus word: requiring it empties the candidates
		AdviseRequest{ID: "r1", Op: "yellow", Token: "x----"},
		AdviseRequest{ID: "r2", Op: "reset"},
	)

	var failure AdviseError
	if err := dec.Decode(&failure); err != nil {
		t.Fatalf("decoding contradiction response: %v", err)
	}
	if failure.Code != 409 {
		t.Errorf("contradiction code = %d, want 409", failure.Code)
	}

	var reset AdviseResponse
	if err := dec.Decode(&reset); err != nil {
		t.Fatalf("decoding reset response: %v", err)
	}
	if reset.Status != "ok" || reset.Count != 5 {
		t.Errorf("reset response = %+v, want ok with full corpus", reset)
	}
}

func TestServerHardmodeToggle(t *testing.T) {
	dec := runRequests(t, newTrainer(t),
		AdviseRequest{ID: "r1", Op: "hardmode"},
	)

	var response AdviseResponse
	if err := dec.Decode(&response); err != nil {
		t.Fatalf("decoding hardmode response: %v", err)
	}
	if !response.Hardmode {
		t.Error("hardmode not reported on after toggle")
	}
}

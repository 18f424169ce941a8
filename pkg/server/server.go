package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wordleology/wordleologist/internal/logger"
	"github.com/wordleology/wordleologist/pkg/trainer"
)

// defaultWordsLimit caps the candidate list in "words" responses when the
// request does not name its own limit.
const defaultWordsLimit = 64

// Server handles the IPC for one trainer session.
type Server struct {
	lg  *log.Logger
	tr  *trainer.Trainer
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates an advisor server using stdin/stdout for IPC.
func NewServer(tr *trainer.Trainer) *Server {
	return NewServerIO(tr, os.Stdin, os.Stdout)
}

// NewServerIO creates an advisor server over arbitrary streams.
func NewServerIO(tr *trainer.Trainer, r io.Reader, w io.Writer) *Server {
	return &Server{
		lg:  logger.Default("ipc"),
		tr:  tr,
		dec: msgpack.NewDecoder(bufio.NewReader(r)),
		enc: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// disconnects.
func (s *Server) Start() error {
	s.lg.Debug("Starting advisor server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var request AdviseRequest
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.lg.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest processes a single decoded request.
func (s *Server) handleRequest(request AdviseRequest) {
	start := time.Now()

	var err error
	response := AdviseResponse{ID: request.ID, Status: "ok"}

	switch request.Op {
	case "green":
		err = s.tr.Green(request.Token)
	case "yellow":
		err = s.tr.Yellow(request.Token)
	case "gray":
		if request.Token == "" {
			s.sendError(request.ID, "gray needs at least one letter", 400)
			return
		}
		s.tr.Gray(request.Token)
	case "words":
		limit := request.Limit
		if limit <= 0 {
			limit = defaultWordsLimit
		}
		var words []string
		words, err = s.tr.Candidates()
		if err == nil && len(words) > limit {
			words = words[:limit]
		}
		response.Words = words
	case "clues":
		var clues trainer.Clues
		clues, err = s.tr.Clues()
		if err == nil {
			response.Clues = &ClueSet{
				Information: clues.Information,
				Positional:  clues.Positional,
				Balanced:    clues.Balanced,
			}
		}
	case "hardmode":
		s.tr.ToggleHardmode()
	case "reset":
		err = s.tr.Reset(request.Token)
	case "status":
		// count and hardmode are filled in below for every op
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
		return
	}
	if err != nil {
		s.sendError(request.ID, err.Error(), errCode(err))
		return
	}

	count, err := s.tr.CandidateCount()
	if err != nil {
		s.sendError(request.ID, err.Error(), errCode(err))
		return
	}
	response.Count = count
	response.Hardmode = s.tr.Hardmode()
	response.TimeTaken = time.Since(start).Microseconds()
	s.send(response)
}

// errCode maps engine faults to protocol codes: contradictions are 409,
// malformed feedback is 400.
func errCode(err error) int {
	switch {
	case errors.Is(err, trainer.ErrNoCandidates):
		return 409
	case errors.Is(err, trainer.ErrBadAssignment),
		errors.Is(err, trainer.ErrBadIndex),
		errors.Is(err, trainer.ErrInvalidGuess):
		return 400
	}
	return 500
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.lg.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(AdviseError{ID: id, Error: message, Code: code})
}

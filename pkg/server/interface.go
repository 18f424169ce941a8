/*
Package server implements msgpack IPC for the trainer engine.

The server speaks binary MessagePack over stdin/stdout so that editors and
front ends can drive a trainer session through process communication
instead of the interactive prompt. Requests are processed synchronously,
one at a time, against a single session; timing info is included in every
response.

# IPC

Each request carries an ID, an op, and an optional token whose meaning
depends on the op:

	{"id": "r1", "op": "green", "tok": "-R---"}
	{"id": "r2", "op": "gray",  "tok": "stl"}
	{"id": "r3", "op": "clues"}
	{"id": "r4", "op": "words", "l": 32}

Responses echo the ID and carry the candidate count, the capped candidate
list for "words", and the clue triple for "clues":

	{"id": "r3", "status": "ok", "c": 214, "clues": {"i": "AROSE", "g": "SLATE", "b": "AROSE"}, "t": 180}

Ops: green, yellow, gray, words, clues, hardmode, reset, status.

A contradictory constraint state (no candidate words remain) is reported
with code 409 and is sticky until a "reset" op; malformed input is 400.
*/
package server

// AdviseRequest is one incoming engine request.
type AdviseRequest struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Token string `msgpack:"tok,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// ClueSet carries the three recommendations.
type ClueSet struct {
	Information string `msgpack:"i"`
	Positional  string `msgpack:"g"`
	Balanced    string `msgpack:"b"`
}

// AdviseResponse is the reply for a successful op.
type AdviseResponse struct {
	ID        string   `msgpack:"id"`
	Status    string   `msgpack:"status"`
	Count     int      `msgpack:"c"`
	Hardmode  bool     `msgpack:"hard"`
	Words     []string `msgpack:"w,omitempty"`
	Clues     *ClueSet `msgpack:"clues,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}

// AdviseError holds basic error information for failed requests.
type AdviseError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

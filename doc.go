// Package vteparser implements an incremental, byte-fed parser for
// terminal control sequences (ANSI/VT escape codes). It consumes raw
// bytes through Parser.Push and produces a stream of typed Events: no
// screen model, no rendering, no I/O. Callers own both ends — feeding
// bytes from wherever they arrive, and applying the resulting events
// to whatever state they maintain.
//
// The parser is a table-driven state machine: every byte is
// classified into one of ten structural roles, and the (state, class)
// pair looks up a packed (next state, action) transition. Chunk
// boundaries carry no meaning — Push may be called with any split of
// a byte stream and must produce the same events as a single call
// with the concatenated input.
package vteparser

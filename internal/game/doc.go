// Package game builds and validates the Game objects consumed by the guessing
// web application.
//
// A Game has an answer (the entity to guess), six hints revealed from hardest
// to easiest, and three trivia fields. Builders turn TMDB detail payloads into
// candidate games; Validate applies the acceptance rules that decide whether a
// candidate is exported. Building is deterministic: the same payload and run
// date always yield the same Game.
package game

// Package dictionary provides a client for the Free Dictionary API.
package dictionary

import "errors"

// ErrNotFound is returned when the upstream dictionary has no entry for a word.
var ErrNotFound = errors.New("word not found")

// ErrUpstream is returned when the upstream dictionary responds with an
// unexpected status code.
var ErrUpstream = errors.New("dictionary upstream error")

// Entry represents a single dictionary entry for a word.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic represents a pronunciation variant.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups definitions under a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense of a word, optionally with a usage example.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
}

package hangman

import (
	"strings"
	"unicode/utf8"
)

// InputKind classifies one line of player input.
type InputKind int

const (
	// InputSave is an empty line, reserved for a save request.
	InputSave InputKind = iota
	// InputLetter is a single character, applied with GuessLetter.
	InputLetter
	// InputWord is anything longer, applied with GuessWord.
	InputWord
)

// Input is a normalized line of player input.
type Input struct {
	Kind InputKind
	Text string
}

// ParseInput trims and lower-cases raw and classifies it by length.
// Validation of the text itself is left to Game.
func ParseInput(raw string) Input {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch utf8.RuneCountInString(text) {
	case 0:
		return Input{Kind: InputSave}
	case 1:
		return Input{Kind: InputLetter, Text: text}
	default:
		return Input{Kind: InputWord, Text: text}
	}
}

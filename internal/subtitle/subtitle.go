package subtitle

import (
	"errors"
	"fmt"
)

// represents single subtitle cue, timestamps kept exactly as written
type Cue struct {
	Number int
	Begin  string
	End    string
	Text   string
}

// represents parsed subtitle file
type Document struct {
	Cues []Cue

	// blocks dropped because they did not match the cue grammar
	Skipped int
}

var (
	ErrNotFound = errors.New("subtitle file not found or not readable")
	ErrDecode   = errors.New("subtitle file is not valid text")
)

// ParseError reports the first malformed block when parsing in strict mode.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed cue at line %d: %s", e.Line, e.Reason)
}

type ParseOptions struct {
	// fail on the first malformed block instead of skipping it
	Strict bool
}

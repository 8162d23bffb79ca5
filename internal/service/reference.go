package service

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ReferenceKind tells how a reference was written by the user.
type ReferenceKind int

const (
	// ByID is a reference that is not a plain number.
	ByID ReferenceKind = iota
	// ByPosition is an all-digit reference.
	ByPosition
)

// Reference is a parsed user reference to a task.
//
// A ByPosition reference keeps its raw text, so it still resolves a task
// whose id is exactly that numeral before falling back to the position.
type Reference struct {
	Kind     ReferenceKind
	Raw      string
	Position int // 1-based, set for ByPosition
}

// ErrReferenceRequired indicates no task reference was provided.
var ErrReferenceRequired = errors.New("task reference required")

// ParseReference parses a task reference.
//
// Parsing rules:
// 1. Empty or whitespace-only input → ErrReferenceRequired
// 2. All ASCII digits → ByPosition
// 3. Anything else → ByID
func ParseReference(input string) (Reference, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Reference{}, ErrReferenceRequired
	}

	if isAllDigits(input) {
		n, err := strconv.Atoi(input)
		if err == nil {
			return Reference{Kind: ByPosition, Raw: input, Position: n}, nil
		}
		// Too large to be a position; only an id can match.
	}

	return Reference{Kind: ByID, Raw: input}, nil
}

// IDReference returns a reference that only matches an exact id.
func IDReference(id string) Reference {
	return Reference{Kind: ByID, Raw: id}
}

func (r Reference) String() string { return r.Raw }

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

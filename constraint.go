package wordsieve

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidLetter   = errors.New("invalid letter")
)

type constraintKind int

const (
	kindExactPosition constraintKind = iota
	kindPresentElsewhere
	kindAbsentEverywhere
	kindNotRepeated
)

// Constraint is one atom of guess feedback compiled into a predicate over
// candidate words. It is an immutable value; two constraints built from
// the same feedback compare equal with ==.
type Constraint struct {
	kind   constraintKind
	index  int
	letter byte
}

func foldLetter(letter rune) (byte, error) {
	letter = unicode.ToLower(letter)
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	return byte(letter), nil
}

// NewExactPosition builds the "green" constraint: the candidate has letter
// at index.
func NewExactPosition(index, wordLen int, letter rune) (Constraint, error) {
	if index < 0 || index >= wordLen {
		return Constraint{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c, err := foldLetter(letter)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{kind: kindExactPosition, index: index, letter: c}, nil
}

// NewPresentElsewhere builds the "yellow" constraint: the candidate
// contains letter, but not at index.
func NewPresentElsewhere(index, wordLen int, letter rune) (Constraint, error) {
	if index < 0 || index >= wordLen {
		return Constraint{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c, err := foldLetter(letter)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{kind: kindPresentElsewhere, index: index, letter: c}, nil
}

// NewAbsent builds the "grey" constraint. A grey report is ambiguous when
// the guess repeats a letter: if history already confirmed the letter via
// an exact-position or present-elsewhere constraint, grey means the letter
// is not repeated (count < 2), not that it is missing entirely. History
// must include the constraints derived from earlier positions of the same
// guess, in left-to-right order.
//
// With three or more copies of a letter in one guess the right reading is
// undefined; only "absent" and "count < 2" are ever distinguished.
func NewAbsent(letter rune, history []Constraint) (Constraint, error) {
	c, err := foldLetter(letter)
	if err != nil {
		return Constraint{}, err
	}

	kind := kindAbsentEverywhere
	for _, prev := range history {
		if prev.letter == c && (prev.kind == kindExactPosition || prev.kind == kindPresentElsewhere) {
			kind = kindNotRepeated
			break
		}
	}
	return Constraint{kind: kind, letter: c}, nil
}

// Matches reports whether word satisfies the constraint.
func (c Constraint) Matches(word string) bool {
	switch c.kind {
	case kindExactPosition:
		return c.index < len(word) && word[c.index] == c.letter
	case kindPresentElsewhere:
		return c.index < len(word) && strings.IndexByte(word, c.letter) >= 0 && word[c.index] != c.letter
	case kindAbsentEverywhere:
		return strings.IndexByte(word, c.letter) < 0
	default:
		return strings.Count(word, string(c.letter)) < 2
	}
}

// Letter returns the letter the constraint is about, lowercased.
func (c Constraint) Letter() rune {
	return rune(c.letter)
}

func (c Constraint) String() string {
	switch c.kind {
	case kindExactPosition:
		return fmt.Sprintf("exact(%d, %c)", c.index, c.letter)
	case kindPresentElsewhere:
		return fmt.Sprintf("elsewhere(%d, %c)", c.index, c.letter)
	case kindAbsentEverywhere:
		return fmt.Sprintf("absent(%c)", c.letter)
	default:
		return fmt.Sprintf("not-repeated(%c)", c.letter)
	}
}

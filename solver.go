package wordsieve

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Feedback symbols, one per letter position of a guess.
const (
	FeedbackExact     = 'g'
	FeedbackElsewhere = 'y'
	FeedbackAbsent    = '_'
)

var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrFeedbackSymbol = errors.New("invalid feedback symbol")
)

// Solver owns one session's state: the current candidate set and the
// ordered history of every constraint applied so far. A Solver is not safe
// for concurrent use; each session gets its own.
type Solver struct {
	wordLen int
	words   []string
	history []Constraint
	log     zerolog.Logger
}

type solverOptions struct {
	log zerolog.Logger
}

type SolverOption interface {
	apply(*solverOptions)
}

type solverOptionFunc func(*solverOptions)

func (f solverOptionFunc) apply(opts *solverOptions) {
	f(opts)
}

// WithLogger attaches a logger to the solver. At debug level the solver
// traces every constraint it applies and the candidate count after it.
func WithLogger(log zerolog.Logger) SolverOption {
	return solverOptionFunc(func(opts *solverOptions) {
		opts.log = log
	})
}

// NewSolver starts a session over the dictionary's words.
func NewSolver(dic *Dictionary, opts ...SolverOption) *Solver {
	options := solverOptions{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt.apply(&options)
	}

	return &Solver{
		wordLen: dic.WordLength(),
		words:   dic.Words(),
		log:     options.log,
	}
}

// ApplyGuess narrows the candidate set by one guess and its feedback
// string, and returns the number of candidates remaining. Feedback holds
// one symbol per letter: 'g' exact position, 'y' present elsewhere,
// '_' absent.
//
// The whole pair is validated before any constraint is applied; on error
// the candidate set and history are unchanged.
func (s *Solver) ApplyGuess(word, feedback string) (int, error) {
	word = Normalize(word)
	if len(word) != s.wordLen {
		return len(s.words), fmt.Errorf("%w: word %q is %d letters, want %d", ErrLengthMismatch, word, len(word), s.wordLen)
	}
	if len(feedback) != s.wordLen {
		return len(s.words), fmt.Errorf("%w: feedback %q is %d symbols, want %d", ErrLengthMismatch, feedback, len(feedback), s.wordLen)
	}
	for i := 0; i < s.wordLen; i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return len(s.words), fmt.Errorf("%w: %q at position %d", ErrInvalidLetter, c, i)
		}
		switch feedback[i] {
		case FeedbackExact, FeedbackElsewhere, FeedbackAbsent:
		default:
			return len(s.words), fmt.Errorf("%w: %q at position %d", ErrFeedbackSymbol, feedback[i], i)
		}
	}

	// Left to right, narrowing after each position, so a grey report on a
	// letter already confirmed earlier in this same guess resolves to the
	// weaker not-repeated reading.
	for i := 0; i < s.wordLen; i++ {
		var c Constraint
		var err error
		switch feedback[i] {
		case FeedbackExact:
			c, err = NewExactPosition(i, s.wordLen, rune(word[i]))
		case FeedbackElsewhere:
			c, err = NewPresentElsewhere(i, s.wordLen, rune(word[i]))
		case FeedbackAbsent:
			c, err = NewAbsent(rune(word[i]), s.history)
		}
		if err != nil {
			return len(s.words), err
		}
		s.apply(c)
	}

	return len(s.words), nil
}

func (s *Solver) apply(c Constraint) {
	s.history = append(s.history, c)

	kept := s.words[:0]
	for _, w := range s.words {
		if c.Matches(w) {
			kept = append(kept, w)
		}
	}
	s.words = kept

	s.log.Debug().Stringer("constraint", c).Int("remaining", len(kept)).Msg("applied constraint")
}

func (s *Solver) CandidateCount() int {
	return len(s.words)
}

// Candidates returns the remaining candidate words, in dictionary order.
func (s *Solver) Candidates() []string {
	return append([]string(nil), s.words...)
}

// IsCandidate reports whether word is still in the candidate set. The
// argument is normalized before comparison.
func (s *Solver) IsCandidate(word string) bool {
	word = Normalize(word)
	for _, w := range s.words {
		if w == word {
			return true
		}
	}
	return false
}

// History returns all constraints applied so far, in application order.
func (s *Solver) History() []Constraint {
	return append([]Constraint(nil), s.history...)
}

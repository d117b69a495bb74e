package wordsieve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

var ErrMalformedCommand = errors.New("malformed command")

const shellIntro = `wordsieve: interactive word-game solver.
Report guesses as: word <guess> <feedback>
  (g = exact position, y = present elsewhere, _ = absent)
Eg: word steam __g_y
Type help for all commands.`

const shellHelp = `Commands:
  word <guess> <feedback>  apply a guess and its feedback
  status                   number of remaining candidates
  possible                 list all remaining candidates
  check <word>             is the word still a candidate?
  complete <prefix>        remaining candidates with the prefix
  help                     this summary
  exit                     leave`

const shellPrompt = "(wordsieve) "

// Shell is the line-oriented interactive loop around one solving session.
// Malformed commands are reported and leave the solver untouched.
type Shell struct {
	Solver *Solver
	Dict   *Dictionary
	In     io.Reader
	Out    io.Writer
	Log    zerolog.Logger
}

// Run reads commands until exit or EOF.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.Out, shellIntro)

	s := bufio.NewScanner(sh.In)
	for {
		fmt.Fprint(sh.Out, shellPrompt)
		if !s.Scan() {
			fmt.Fprintln(sh.Out)
			return s.Err()
		}

		quit, err := sh.Exec(s.Text())
		if err != nil {
			sh.Log.Debug().Err(err).Str("line", s.Text()).Msg("command rejected")
			fmt.Fprintln(sh.Out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the shell should
// quit.
func (sh *Shell) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "word":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: usage: word <guess> <feedback>", ErrMalformedCommand)
		}
		n, err := sh.Solver.ApplyGuess(args[0], args[1])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(sh.Out, "%d possible words remaining\n", n)
	case "status":
		fmt.Fprintf(sh.Out, "%d possible words remaining\n", sh.Solver.CandidateCount())
	case "possible":
		for _, w := range sh.Solver.Candidates() {
			fmt.Fprintln(sh.Out, w)
		}
	case "check":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: usage: check <word>", ErrMalformedCommand)
		}
		switch {
		case sh.Solver.IsCandidate(args[0]):
			fmt.Fprintf(sh.Out, "%s is still a candidate\n", Normalize(args[0]))
		case sh.Dict.Contains(args[0]):
			fmt.Fprintf(sh.Out, "%s has been ruled out\n", Normalize(args[0]))
		default:
			fmt.Fprintf(sh.Out, "%s is not in the dictionary\n", Normalize(args[0]))
		}
	case "complete":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: usage: complete <prefix>", ErrMalformedCommand)
		}
		for _, w := range sh.Dict.Complete(args[0]) {
			if sh.Solver.IsCandidate(w) {
				fmt.Fprintln(sh.Out, w)
			}
		}
	case "help", "?":
		fmt.Fprintln(sh.Out, shellHelp)
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown command %q", ErrMalformedCommand, cmd)
	}

	return false, nil
}

// Package wordsieve narrows a dictionary of fixed-length words against
// per-letter guess feedback from word games in the Wordle family.
package wordsieve

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/google/btree"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultWordLength is the word length used when no option overrides it.
const DefaultWordLength = 5

// Dictionary holds the word list a solving session starts from. Words are
// kept in the order they were read; the btree is a lookup index over the
// same words, not the store.
type Dictionary struct {
	wordLen int
	words   []string
	index   *btree.BTreeG[string]
}

type dicOptions struct {
	wordLen int
}

type Option interface {
	apply(*dicOptions)
}

type optionFunc func(*dicOptions)

func (f optionFunc) apply(opts *dicOptions) {
	f(opts)
}

// WithWordLength sets the word length for the dictionary. Values below 1
// are ignored.
func WithWordLength(n int) Option {
	return optionFunc(func(opts *dicOptions) {
		if n > 0 {
			opts.wordLen = n
		}
	})
}

func New(opts ...Option) *Dictionary {
	options := dicOptions{
		wordLen: DefaultWordLength,
	}
	for _, opt := range opts {
		opt.apply(&options)
	}

	return &Dictionary{
		wordLen: options.wordLen,
		index:   btree.NewG(2, lessWord),
	}
}

func lessWord(a, b string) bool {
	return a < b
}

// Normalize lowercases s and strips diacritics, so that "Café" and "cafe"
// load and compare as the same word.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func (dic *Dictionary) ReadFile(name string) error {
	if dic == nil {
		return errors.New("Dictionary is nil")
	}

	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return dic.Read(file)
}

// Read loads whitespace-separated words from r. Lines starting with '#'
// are skipped. Each word is normalized; words that are not exactly the
// dictionary's word length, contain characters outside a-z after
// normalization, or duplicate an earlier word are dropped.
func (dic *Dictionary) Read(r io.Reader) error {
	if dic == nil {
		return errors.New("Dictionary is nil")
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}

		for _, token := range strings.Fields(line) {
			dic.add(Normalize(token))
		}
	}

	return s.Err()
}

func (dic *Dictionary) add(word string) {
	if len(word) != dic.wordLen {
		return
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return
		}
	}

	if _, found := dic.index.Get(word); found {
		return
	}
	dic.index.ReplaceOrInsert(word)
	dic.words = append(dic.words, word)
}

// Words returns the dictionary words in the order they were read.
func (dic *Dictionary) Words() []string {
	return append([]string(nil), dic.words...)
}

func (dic *Dictionary) Len() int {
	return len(dic.words)
}

func (dic *Dictionary) WordLength() int {
	return dic.wordLen
}

// Contains reports whether word is in the dictionary. The argument is
// normalized before lookup.
func (dic *Dictionary) Contains(word string) bool {
	_, found := dic.index.Get(Normalize(word))
	return found
}

// Complete returns all dictionary words starting with prefix, in
// lexicographic order.
func (dic *Dictionary) Complete(prefix string) []string {
	prefix = Normalize(prefix)

	var completion []string
	dic.index.AscendRange(prefix, prefix+string(unicode.MaxRune), func(word string) bool {
		if strings.HasPrefix(word, prefix) {
			completion = append(completion, word)
			return true
		}

		return false
	})

	return completion
}

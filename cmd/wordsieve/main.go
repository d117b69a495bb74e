package main

import (
	"fmt"
	"os"

	"github.com/okatsu/wordsieve"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dictFile string
	wordLen  int
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "wordsieve",
	Short: "Interactive word-game solver",
	Long: `wordsieve loads a dictionary of fixed-length words and narrows it
against the feedback you report for each guess.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

		dic := wordsieve.New(wordsieve.WithWordLength(wordLen))
		if err := dic.ReadFile(dictFile); err != nil {
			return fmt.Errorf("failed to read dictionary: %w", err)
		}
		log.Info().Str("file", dictFile).Int("words", dic.Len()).Msg("dictionary loaded")

		shell := &wordsieve.Shell{
			Solver: wordsieve.NewSolver(dic, wordsieve.WithLogger(log)),
			Dict:   dic,
			In:     os.Stdin,
			Out:    os.Stdout,
			Log:    log,
		}
		return shell.Run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&dictFile, "dict", "d", "en_words.txt", "dictionary file, whitespace-separated words")
	rootCmd.Flags().IntVarP(&wordLen, "length", "n", wordsieve.DefaultWordLength, "word length")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-solver/internal/factory"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/simulator"
)

func newPlayCmd() *cobra.Command {
	var (
		dictPath string
		maxWrong int
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "play <secret>",
		Short: "Play a whole game locally against a secret word",
		Long: `Play a whole game locally against a secret word.

The solver runs in-process with the given dictionary; no server is needed.
If the dictionary cannot be read, a small built-in word list is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{
				DictionaryPath: dictPath,
				Logger:         logger,
			})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			source := app.LoadDictionary(cmd.Context())
			logger.Debug("dictionary ready",
				slog.String("source", string(source)),
				slog.Int("words", app.DictionaryService.WordCount()),
			)

			sim, err := app.NewSimulator(strategy)
			if err != nil {
				return err
			}

			result, err := sim.Play(cmd.Context(), args[0], maxWrong)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(PlayResultFromSimulator(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dict", "d", "data/words.txt", "Dictionary file, one word per line")
	cmd.Flags().IntVarP(&maxWrong, "max-wrong", "m", simulator.DefaultMaxWrong, "Wrong guesses allowed before losing")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy: "+strings.Join(model.ValidStrategies(), ", ")+" (default: frequency)")

	return cmd
}

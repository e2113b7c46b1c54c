package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-solver/internal/model"
)

// guessFlags are shared by the stateless and session guess commands
type guessFlags struct {
	guessed   []string
	remaining int
}

func (f *guessFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.guessed, "guessed", "g", nil, "Letters already guessed, comma-separated")
	cmd.Flags().IntVarP(&f.remaining, "remaining", "r", 6, "Wrong guesses remaining")
}

func (f *guessFlags) body(pattern string) map[string]any {
	guessed := f.guessed
	if guessed == nil {
		guessed = []string{}
	}
	return map[string]any{
		"pattern":           pattern,
		"guessed_letters":   guessed,
		"guesses_remaining": f.remaining,
	}
}

func newGuessCmd() *cobra.Command {
	var (
		flags    guessFlags
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "guess <pattern>",
		Short: "Suggest the next letter for a word state",
		Long: `Suggest the next letter for a word state.

The pattern has one token per letter: a revealed letter, or "__" or "*" for a
blank. Quote it so the shell keeps it as one argument:

  hangman guess "f __ i __ h t" --guessed f,i,h,t`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.body(args[0])
			if strategy != "" {
				req["strategy"] = strategy
			}

			var result Decision
			if err := client.Post(cmd.Context(), "/api/v1/guess", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy: "+strings.Join(model.ValidStrategies(), ", ")+" (default: server default)")

	return cmd
}

package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-solver/internal/model"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Server-side session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionGuessCmd())
	cmd.AddCommand(newSessionResetCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func sessionPath(id string, suffix string) string {
	return fmt.Sprintf("/api/v1/sessions/%s%s", url.PathEscape(id), suffix)
}

func newSessionCreateCmd() *cobra.Command {
	var (
		strategy   string
		wordLength int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if strategy != "" {
				req["strategy"] = strategy
			}
			if wordLength > 0 {
				req["word_length"] = wordLength
			}

			var result Session
			if err := client.Post(cmd.Context(), "/api/v1/sessions", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Strategy: "+strings.Join(model.ValidStrategies(), ", ")+" (default: server default)")
	cmd.Flags().IntVar(&wordLength, "word-length", 0, "Length of the word being solved")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Get(cmd.Context(), sessionPath(args[0], ""), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newSessionGuessCmd() *cobra.Command {
	var flags guessFlags

	cmd := &cobra.Command{
		Use:   "guess <id> <pattern>",
		Short: "Record a word state in a session and suggest the next letter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionGuess
			if err := client.Post(cmd.Context(), sessionPath(args[0], "/guess"), flags.body(args[1]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a session for a new word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Post(cmd.Context(), sessionPath(args[0], "/reset"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), sessionPath(args[0], "")); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Session %s deleted", args[0]))
			return nil
		},
	}
}

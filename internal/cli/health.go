package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long:  "Show whether the server is up and has a dictionary loaded. With --strict a degraded server is reported as an error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)

			if strict && !result.DictionaryLoaded {
				return fmt.Errorf("server is %s: no dictionary loaded", result.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when no dictionary is loaded")
	return cmd
}

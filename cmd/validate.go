package main

import (
	"fmt"
	"masthead/internal/config"
	"masthead/pkg/serrors"

	"github.com/spf13/cobra"
)

func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [seed]",
		Short: "Checks that a seed document loads into an empty catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Seed.Path
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := loadCatalog(cmd.Context(), path, nil); err != nil {
				if field := serrors.Field(err); field != "" {
					return fmt.Errorf("%s is invalid (field %s): %w", path, field, err)
				}

				return fmt.Errorf("%s is invalid: %w", path, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)

			return err //nolint: wrapcheck
		},
	}

	return cmd
}

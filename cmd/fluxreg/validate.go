package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/fluxreg"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every definition, exit non-zero on any rejection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.config.Strict = true
			srv, err := a.service()
			if err != nil {
				return err
			}
			snapshot, err := srv.Reload(cmd.Context())
			var loadErr *fluxreg.LoadError
			if errors.As(err, &loadErr) {
				for _, rejection := range loadErr.Rejections {
					fmt.Fprintf(cmd.OutOrStdout(), "REJECTED %s: %v\n", rejection.ID, rejection.Err)
				}
				return fmt.Errorf("%d workflow definition(s) rejected", len(loadErr.Rejections))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK %d workflow definition(s)\n", snapshot.Len())
			return nil
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viant/fluxreg/model"
)

func (a *app) listCmd() *cobra.Command {
	var groupID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow definitions grouped by category",
		Long: `List accepted workflow definitions under their category label.

Examples:
  fluxreg list -d ./workflows
  fluxreg list -d ./workflows --group fulfillment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service()
			if err != nil {
				return err
			}
			if _, err = srv.Load(cmd.Context()); err != nil {
				return err
			}
			var subset []*model.Workflow
			if cmd.Flags().Changed("group") {
				subset = []*model.Workflow{}
				for _, definition := range srv.Registry().Definitions() {
					if definition.Group == groupID {
						subset = append(subset, definition)
					}
				}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, bucket := range srv.Registry().GroupedDefinitions(subset) {
				fmt.Fprintln(w, bucket.Label)
				for _, definition := range bucket.Definitions {
					fmt.Fprintf(w, "  %s\t%s\n", definition.ID, definition.Label)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "only definitions of this group id")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List groups referenced by workflow definitions, sorted by label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service()
			if err != nil {
				return err
			}
			if _, err = srv.Load(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, category := range srv.Registry().Categories() {
				fmt.Fprintf(w, "%s\t%s\n", category.ID, category.Label)
			}
			return w.Flush()
		},
	}
}

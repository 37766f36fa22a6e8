package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <workflow-id>",
		Short: "Show states and transitions of a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service()
			if err != nil {
				return err
			}
			if _, err = srv.Load(cmd.Context()); err != nil {
				return err
			}
			instance, err := srv.Instantiate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n", instance.ID(), instance.Label())
			if group := instance.Group(); group != nil {
				fmt.Fprintf(w, "group\t%s (%s)\n", group.ID, group.Label)
				if group.EntityType != "" {
					fmt.Fprintf(w, "entity type\t%s\n", group.EntityType)
				}
				fmt.Fprintf(w, "class\t%s\n", group.WorkflowClass)
			}
			fmt.Fprintln(w, "states:")
			for _, state := range instance.States() {
				var next []string
				for _, transition := range instance.PossibleTransitions(state.ID) {
					next = append(next, transition.ID)
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", state.ID, state.Label, strings.Join(next, ", "))
			}
			fmt.Fprintln(w, "transitions:")
			for _, transition := range instance.Transitions() {
				fmt.Fprintf(w, "  %s\t%s\t%s -> %s\n", transition.ID, transition.Label, transition.From, transition.To)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/viant/fluxreg"
	"github.com/viant/fluxreg/internal/watcher"
	"github.com/viant/fluxreg/service/dao/workflow"
	"github.com/viant/fluxreg/service/event"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload definitions whenever local definition files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			listener := event.NewListener[fluxreg.ReloadEvent](srv.Events(), func(ctx context.Context, e *event.Event[fluxreg.ReloadEvent]) error {
				return printReload(cmd.OutOrStdout(), &e.Data)
			})
			listener.Start(ctx)
			defer listener.Stop()

			config := watcher.DefaultConfig(localDirs(a.config.Definitions)...)
			config.Match = workflow.IsDefinitionFile
			w, err := watcher.New(config)
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()
			onChange, err := w.Start()
			if err != nil {
				return err
			}
			if _, err = srv.Load(ctx); err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-onChange:
					if _, err := srv.Reload(ctx); err != nil {
						log.Error().Err(err).Msg("reload failed, previous definitions kept")
					}
				}
			}
		},
	}
}

func printReload(w io.Writer, reload *fluxreg.ReloadEvent) error {
	_, err := fmt.Fprintf(w, "revision %s: %d accepted, %d rejected\n", reload.Revision, reload.Accepted, len(reload.Rejected))
	if err == nil && len(reload.Rejected) > 0 {
		_, err = fmt.Fprintf(w, "  rejected: %s\n", strings.Join(reload.Rejected, ", "))
	}
	return err
}

// localDirs returns directories to watch for local definition locations, remote URLs are skipped
func localDirs(locations []string) []string {
	var result []string
	seen := map[string]bool{}
	for _, location := range locations {
		info, err := os.Stat(location)
		if err != nil {
			continue
		}
		dir := location
		if !info.IsDir() {
			dir = filepath.Dir(location)
		}
		if !seen[dir] {
			seen[dir] = true
			result = append(result, dir)
		}
	}
	return result
}

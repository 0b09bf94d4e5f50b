package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/fmtscan/definition"
)

func newWatchCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "watch [-f FILE]",
		Short: "Reload a definition file on change until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.definitionsPath(file)
			if err != nil {
				return err
			}

			out := a.printer(cmd)
			for u := range definition.Watch(cmd.Context(), path) {
				if u.Err != nil {
					a.logger.Error("reload failed", slog.String("path", path), slog.String("error", u.Err.Error()))
					continue
				}
				names := u.Set.Names()
				a.logger.Info("definitions ready", slog.Int("count", len(names)), slog.String("names", strings.Join(names, ",")))
				if err := out.print(names); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Definition file (overrides --definitions)")
	return cmd
}

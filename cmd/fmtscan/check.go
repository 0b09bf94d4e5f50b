package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/fmtscan/template"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check TEMPLATE",
		Short: "Compile a template and list its placeholders",
		Example: `  fmtscan check "temp={%f}C id={%u}"
  fmtscan check -o json "{}, {}"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := template.Compile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("template compiled", slog.Int("placeholders", t.NumPlaceholders()))
			return a.printer(cmd).print(newCheckReport(t))
		},
	}
}

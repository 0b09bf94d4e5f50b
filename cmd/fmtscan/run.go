package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/fmtscan/definition"
)

func newRunCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run [-f FILE] NAME [SOURCE]",
		Short: "Scan SOURCE, or stdin, with a named definition",
		Example: `  fmtscan run -f scans.yaml reading "sensor north temp=21.5C seq=7"
  tail -n1 app.log | fmtscan run request`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.definitionsPath(file)
			if err != nil {
				return err
			}

			set, err := definition.LoadSet(path)
			if err != nil {
				return err
			}

			src, err := readSource(cmd, args, 1)
			if err != nil {
				return err
			}

			res, err := set.Scan(args[0], src)
			if err != nil {
				return err
			}
			return a.printer(cmd).print(newScanReport(args[0], src, res))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Definition file (overrides --definitions)")
	return cmd
}

// definitionsPath picks the command's -f value, falling back to the
// configured definition file.
func (a *app) definitionsPath(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	if a.cfg.Definitions != "" {
		return a.cfg.Definitions, nil
	}
	return "", usageErr(errors.New("no definition file: pass -f, --definitions or set FMTSCAN_DEFINITIONS"))
}

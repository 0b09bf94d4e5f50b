package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/fmtscan/decode"
	"github.com/randalmurphal/fmtscan/scan"
	"github.com/randalmurphal/fmtscan/template"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		tmplText string
		kinds    string
	)

	cmd := &cobra.Command{
		Use:   "scan -t TEMPLATE [-k KINDS] [SOURCE]",
		Short: "Scan SOURCE, or stdin, with a template",
		Long: `Scan SOURCE, or stdin when SOURCE is omitted, with a template.

KINDS is a comma-separated list with one kind per placeholder. Without it,
kinds default from the specifiers: %d int, %u uint, %f float64, and %s or no
specifier string.`,
		Example: `  fmtscan scan -t "temp={%f}C id={%u}" "temp=21.5C id=7"
  echo "3, three" | fmtscan scan -t "{}, {}" -k int8,string`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := template.Compile(tmplText)
			if err != nil {
				return err
			}

			ks := scan.DefaultKinds(t)
			if kinds != "" {
				if ks, err = parseKinds(kinds); err != nil {
					return err
				}
			}

			src, err := readSource(cmd, args, 0)
			if err != nil {
				return err
			}

			res, err := scan.New(t, scan.WithLogger(a.logger)).Scan(src, ks...)
			if err != nil {
				return err
			}
			return a.printer(cmd).print(newScanReport("", src, res))
		},
	}

	cmd.Flags().StringVarP(&tmplText, "template", "t", "", "Format template (required)")
	cmd.Flags().StringVarP(&kinds, "kinds", "k", "", "Comma-separated kinds, e.g. int,string,float64")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

// parseKinds parses a comma-separated kind list.
func parseKinds(s string) ([]decode.Kind, error) {
	parts := strings.Split(s, ",")
	kinds := make([]decode.Kind, len(parts))
	for i, part := range parts {
		k, err := decode.ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("kind %d: %w (supported: %s)", i, err, strings.Join(decode.KindNames(), ", "))
		}
		kinds[i] = k
	}
	return kinds, nil
}

// readSource returns args[i] when present, otherwise stdin with one
// trailing newline removed.
func readSource(cmd *cobra.Command, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}

	src := string(data)
	if strings.HasSuffix(src, "\r\n") {
		return src[:len(src)-2], nil
	}
	return strings.TrimSuffix(src, "\n"), nil
}

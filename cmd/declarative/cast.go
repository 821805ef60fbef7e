package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/declarative/pkg/interval"
)

func castCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cast <value>...",
		Short: "Convert interval values such as 10s, 5m or 3600 to seconds",
		Long: "Convert interval values to seconds. Each line of output is the input, the number of\n" +
			"seconds and the compact form, separated by tabs. Digit-only values are seconds.",
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				var d interval.Duration
				if err := d.UnmarshalText([]byte(arg)); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", arg, d.Duration/time.Second, interval.Format(d.Duration))
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/declarative/pkg/declarative"
	"github.com/dmitrymomot/declarative/pkg/logger"
	"github.com/dmitrymomot/declarative/pkg/validator"
)

func checkCmd(a *app) *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check documents without resolving references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = a.settings.Strict
			}

			l := declarative.New(
				declarative.WithoutResolution(),
				declarative.WithStrict(strict),
				declarative.WithLogger(a.log),
			)

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				_, err := l.LoadFile(path)
				if err == nil {
					fmt.Fprintf(out, "%s: OK\n", path)
					continue
				}
				failed++
				printFailure(out, path, err)
			}

			a.log.Debug("check finished", logger.Count("files", len(args)), logger.Count("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "reject unknown keys (default from DECLARATIVE_STRICT)")
	return c
}

func printFailure(w io.Writer, path string, err error) {
	report := validator.ExtractValidationErrors(err)
	if report == nil {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "%s:\n", path)
	for _, e := range report {
		fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
	}
}

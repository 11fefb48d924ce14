package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mxfkit/internal/preflight"
)

var errCheckFailed = errors.New("one or more checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run registry and catalog self-checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := preflight.RunAll(cmd.Context(), ctx.configValue())

			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			if format == "json" {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				printCheckResults(cmd, results, ctx.colorize(cmd.OutOrStdout()))
			}

			if preflight.Failed(results) {
				return errCheckFailed
			}
			return nil
		},
	}
}

func printCheckResults(cmd *cobra.Command, results []preflight.Result, colorize bool) {
	out := cmd.OutOrStdout()
	section := ""
	for _, r := range results {
		if s := sectionOf(r.Name); s != section {
			if section != "" {
				fmt.Fprintln(out)
			}
			section = s
			for _, line := range renderSectionHeader(section, colorize) {
				fmt.Fprintln(out, line)
			}
		}
		fmt.Fprintln(out, resultLine(r).render(colorize))
	}
}

func sectionOf(name string) string {
	if head, _, ok := strings.Cut(name, " "); ok {
		return head
	}
	return name
}

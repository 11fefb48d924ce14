package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

type listing struct {
	headers []string
	rows    [][]string
	aligns  []columnAlignment
}

// writeListing renders l in the resolved output format. JSON output encodes
// jsonValue instead of the string rows so numeric fields keep their type.
func (c *commandContext) writeListing(cmd *cobra.Command, l listing, jsonValue any) error {
	format, err := c.outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeJSON(cmd, jsonValue)
	case "plain":
		for _, row := range l.rows {
			fmt.Fprintln(out, strings.Join(row, "\t"))
		}
		return nil
	default:
		fmt.Fprintln(out, renderTable(l.headers, l.rows, l.aligns, c.tableStyle()))
		return nil
	}
}

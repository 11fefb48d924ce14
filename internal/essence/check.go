package essence

import (
	"errors"
	"fmt"
	"strings"
)

// GroupResult is the outcome of one group of table checks.
type GroupResult struct {
	Group string
	Err   error
}

type checkGroup struct {
	name string
	run  func(table []entry, count Kind) []error
}

var checkGroups = []checkGroup{
	{name: "alignment", run: checkAlignment},
	{name: "partition", run: checkPartition},
	{name: "labels", run: checkLabels},
	{name: "names", run: checkNames},
}

// Check verifies the compiled table: one row per declared kind in
// declaration order, concrete kinds grouped under Picture, Sound or Data,
// generic kinds grouped under themselves, and non-empty unique names and
// labels. Every violation found is reported in the joined error.
func Check() error {
	return checkTable(registry[:], kindCount)
}

// CheckGroups runs the same checks as Check and reports each group
// separately, in a fixed order.
func CheckGroups() []GroupResult {
	return runGroups(registry[:], kindCount)
}

func runGroups(table []entry, count Kind) []GroupResult {
	results := make([]GroupResult, 0, len(checkGroups))
	for _, g := range checkGroups {
		result := GroupResult{Group: g.name}
		if errs := g.run(table, count); len(errs) > 0 {
			result.Err = errors.Join(errs...)
		}
		results = append(results, result)
	}
	return results
}

func checkTable(table []entry, count Kind) error {
	var errs []error
	for _, g := range checkGroups {
		errs = append(errs, g.run(table, count)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("essence table: %w", errors.Join(errs...))
}

func checkAlignment(table []entry, count Kind) []error {
	var errs []error
	if len(table) != int(count) {
		errs = append(errs, fmt.Errorf("table has %d rows for %d declared kinds", len(table), int(count)))
	}
	for i, e := range table {
		if e.kind != Kind(i) {
			errs = append(errs, fmt.Errorf("row %d holds kind %d", i, int(e.kind)))
		}
	}
	return errs
}

func checkPartition(table []entry, _ Kind) []error {
	var errs []error
	for i, e := range table {
		switch {
		case e.kind.IsGeneric():
			if e.generic != e.kind {
				errs = append(errs, fmt.Errorf("row %d: generic kind %d maps to %d, want itself", i, int(e.kind), int(e.generic)))
			}
		case e.generic != Picture && e.generic != Sound && e.generic != Data:
			errs = append(errs, fmt.Errorf("row %d: concrete kind %q maps to generic %d", i, e.name, int(e.generic)))
		}
	}
	return errs
}

func checkLabels(table []entry, _ Kind) []error {
	return checkUnique(table, "label", func(e entry) string { return e.label })
}

func checkNames(table []entry, _ Kind) []error {
	return checkUnique(table, "name", func(e entry) string { return e.name })
}

// checkUnique reports empty values and values that repeat ignoring case, as
// Parse matches names and labels case-insensitively.
func checkUnique(table []entry, field string, value func(entry) string) []error {
	var errs []error
	seen := make(map[string]int, len(table))
	for i, e := range table {
		v := value(e)
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("row %d: empty %s", i, field))
			continue
		}
		k := strings.ToLower(v)
		if prev, dup := seen[k]; dup {
			errs = append(errs, fmt.Errorf("row %d: %s %q already used by row %d (%q)", i, field, v, prev, value(table[prev])))
			continue
		}
		seen[k] = i
	}
	return errs
}

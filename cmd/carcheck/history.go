package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/carcheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := carcheck.RecordFilter{Query: c.Query}
	// The free-text match runs in memory, so the limit must follow it.
	if c.Match == "" {
		filter.Limit = c.Limit
	}

	records, err := deps.Lookups.ListSaved(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carcheck.ErrorMessage(err))
		return err
	}

	if c.Match != "" {
		records = carcheck.PageRecords(carcheck.FilterRecords(records, c.Match), 0, c.Limit)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved lookups. Use 'carcheck lookup' to add one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", r.ID, r.Registration, summary(r.Details))
	}

	return nil
}

// summary returns the first non-blank line of details, the vehicle title.
func summary(details string) string {
	for _, line := range strings.Split(details, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

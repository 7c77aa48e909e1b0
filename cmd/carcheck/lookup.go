package main

import (
	"fmt"

	"github.com/fwojciec/carcheck"
	"github.com/fwojciec/carcheck/lookup"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	results := lookup.All(deps.Ctx, deps.Lookups, c.Registrations, c.Concurrency)

	var failed int
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.Registration, carcheck.ErrorText(r.Err))
			continue
		}
		if c.Share && r.Result.Status == carcheck.LookupFound {
			fmt.Fprintln(deps.Stdout, carcheck.LookupShareText(r.Registration, r.Result.Details))
			continue
		}
		fmt.Fprintln(deps.Stdout, r.Result.Message(r.Registration))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(results))
	}
	return nil
}

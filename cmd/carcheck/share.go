package main

import (
	"fmt"

	"github.com/fwojciec/carcheck"
)

// Run executes the share command.
func (c *ShareCmd) Run(deps *Dependencies) error {
	text, err := deps.Lookups.Share(deps.Ctx, c.ID)
	if err != nil {
		if carcheck.ErrorCode(err) == carcheck.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: lookup %d not found. Use 'carcheck history' to see saved lookups.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", carcheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}

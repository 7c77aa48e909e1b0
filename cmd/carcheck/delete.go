package main

import (
	"fmt"

	"github.com/fwojciec/carcheck"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return carcheck.Errorf(carcheck.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Lookups.Remove(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carcheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted lookup %d\n", c.ID)
	return nil
}

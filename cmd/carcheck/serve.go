package main

import (
	"fmt"

	carhttp "github.com/fwojciec/carcheck/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	var opts []carhttp.ServerOption
	if deps.Logger != nil {
		opts = append(opts, carhttp.WithLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		opts = append(opts, carhttp.WithMetrics(deps.Metrics))
	}
	srv := carhttp.NewServer(deps.Lookups, opts...)

	fmt.Fprintf(deps.Stderr, "Listening on %s\n", c.Addr)
	if err := srv.Run(deps.Ctx, c.Addr); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

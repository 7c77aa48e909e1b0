package lookup

import (
	"context"

	"github.com/fwojciec/carcheck"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one registration in a batch lookup.
type BatchResult struct {
	Registration string
	Result       *carcheck.LookupResult
	Err          error
}

// All looks up every registration with at most concurrency lookups in
// flight (unlimited if concurrency <= 0). Results are in input order; a
// failed lookup is reported in its BatchResult and does not stop the batch.
func All(ctx context.Context, svc carcheck.LookupService, registrations []string, concurrency int) []BatchResult {
	results := make([]BatchResult, len(registrations))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, reg := range registrations {
		g.Go(func() error {
			result, err := svc.Lookup(ctx, reg)
			results[i] = BatchResult{Registration: reg, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Async starts a lookup and returns a channel that delivers exactly one
// outcome and is then closed.
func Async(ctx context.Context, svc carcheck.LookupService, registration string) <-chan carcheck.LookupOutcome {
	ch := make(chan carcheck.LookupOutcome, 1)
	go func() {
		defer close(ch)
		result, err := svc.Lookup(ctx, registration)
		ch <- carcheck.LookupOutcome{Result: result, Err: err}
	}()
	return ch
}

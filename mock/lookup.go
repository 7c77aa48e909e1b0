package mock

import (
	"context"

	"github.com/fwojciec/carcheck"
)

var _ carcheck.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of carcheck.LookupService.
type LookupService struct {
	LookupFn    func(ctx context.Context, registration string) (*carcheck.LookupResult, error)
	ListSavedFn func(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error)
	RemoveFn    func(ctx context.Context, id int64) error
	ShareFn     func(ctx context.Context, id int64) (string, error)
}

func (s *LookupService) Lookup(ctx context.Context, registration string) (*carcheck.LookupResult, error) {
	return s.LookupFn(ctx, registration)
}

func (s *LookupService) ListSaved(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error) {
	return s.ListSavedFn(ctx, filter)
}

func (s *LookupService) Remove(ctx context.Context, id int64) error {
	return s.RemoveFn(ctx, id)
}

func (s *LookupService) Share(ctx context.Context, id int64) (string, error) {
	return s.ShareFn(ctx, id)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carcheck"
	"github.com/google/uuid"
)

// Ensure LoggingLookupService implements carcheck.LookupService.
var _ carcheck.LookupService = (*LoggingLookupService)(nil)

// LoggingLookupService wraps a LookupService with logging. Every lookup
// entry carries a generated lookup_id.
type LoggingLookupService struct {
	next   carcheck.LookupService
	logger *slog.Logger
}

// NewLoggingLookupService creates a new LoggingLookupService.
func NewLoggingLookupService(next carcheck.LookupService, logger *slog.Logger) *LoggingLookupService {
	return &LoggingLookupService{next: next, logger: logger}
}

// Lookup logs the lookup outcome and delegates to the wrapped service.
func (s *LoggingLookupService) Lookup(ctx context.Context, registration string) (result *carcheck.LookupResult, err error) {
	logger := s.logger.With("lookup_id", uuid.NewString())
	defer func(begin time.Time) {
		args := []any{
			"registration", registration,
			"duration", time.Since(begin),
		}
		if result != nil {
			args = append(args, "status", string(result.Status), "cached", result.Cached)
		}
		if err != nil {
			args = append(args, "code", carcheck.ErrorCode(err), "err", err)
		}
		logger.InfoContext(ctx, "lookup", args...)
	}(time.Now())
	return s.next.Lookup(ctx, registration)
}

// ListSaved logs the listing and delegates to the wrapped service.
func (s *LoggingLookupService) ListSaved(ctx context.Context, filter carcheck.RecordFilter) (records []*carcheck.Record, err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "list saved",
			"query", filter.Query,
			"limit", filter.Limit,
			"offset", filter.Offset,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListSaved(ctx, filter)
}

// Remove logs the removal and delegates to the wrapped service.
func (s *LoggingLookupService) Remove(ctx context.Context, id int64) (err error) {
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "remove",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Remove(ctx, id)
}

// Share delegates to the wrapped service.
func (s *LoggingLookupService) Share(ctx context.Context, id int64) (string, error) {
	return s.next.Share(ctx, id)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carcheck"
)

// Ensure LoggingRecordService implements carcheck.RecordService.
var _ carcheck.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
// Failed calls are logged at warn level.
type LoggingRecordService struct {
	next   carcheck.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next carcheck.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// FindRecordsByRegistration logs the cache read and delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordsByRegistration(ctx context.Context, registration string) (records []*carcheck.Record, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find records by registration",
			"registration", registration,
			"count", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindRecordsByRegistration(ctx, registration)
}

// FindRecordByID logs the read and delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id int64) (record *carcheck.Record, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find record by id",
			"id", id,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords logs the listing and delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter carcheck.RecordFilter) (records []*carcheck.Record, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find records",
			"query", filter.Query,
			"limit", filter.Limit,
			"offset", filter.Offset,
			"count", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// CreateRecord logs the insert and delegates to the wrapped service.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *carcheck.Record) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "create record",
			"registration", record.Registration,
			"id", record.ID,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// DeleteRecord logs the removal and delegates to the wrapped service.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id int64) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "delete record",
			"id", id,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}

func (s *LoggingRecordService) log(ctx context.Context, err error, msg string, args ...any) {
	if err != nil {
		s.logger.WarnContext(ctx, msg, append(args, "err", err)...)
		return
	}
	s.logger.DebugContext(ctx, msg, args...)
}

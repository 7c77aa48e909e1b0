package mock

import (
	"context"

	"github.com/fwojciec/carcheck"
)

var _ carcheck.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of carcheck.RecordService.
type RecordService struct {
	FindRecordsByRegistrationFn func(ctx context.Context, registration string) ([]*carcheck.Record, error)
	FindRecordByIDFn            func(ctx context.Context, id int64) (*carcheck.Record, error)
	FindRecordsFn               func(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error)
	CreateRecordFn              func(ctx context.Context, record *carcheck.Record) error
	DeleteRecordFn              func(ctx context.Context, id int64) error
}

func (s *RecordService) FindRecordsByRegistration(ctx context.Context, registration string) ([]*carcheck.Record, error) {
	return s.FindRecordsByRegistrationFn(ctx, registration)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*carcheck.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *carcheck.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id int64) error {
	return s.DeleteRecordFn(ctx, id)
}

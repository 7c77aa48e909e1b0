package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/carcheck"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ carcheck.RecordService = (*RecordService)(nil)

// RecordService implements carcheck.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// FindRecordsByRegistration retrieves records with exactly the given registration.
func (s *RecordService) FindRecordsByRegistration(ctx context.Context, registration string) ([]*carcheck.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, registration, details
		FROM cars
		WHERE registration = ?
	`, registration)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*carcheck.Record, error) {
	var record carcheck.Record

	err := s.db.QueryRowContext(ctx, `
		SELECT id, registration, details
		FROM cars
		WHERE id = ?
	`, id).Scan(&record.ID, &record.Registration, &record.Details)

	if err == sql.ErrNoRows {
		return nil, carcheck.Errorf(carcheck.ENOTFOUND, "record %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, registration, details FROM cars WHERE 1=1")

	if filter.Query != "" {
		query.WriteString(` AND registration LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(filter.Query))
	}

	query.WriteString(" ORDER BY id DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CreateRecord stores a new record and sets its ID.
func (s *RecordService) CreateRecord(ctx context.Context, record *carcheck.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO cars (registration, details)
		VALUES (?, ?)
	`, record.Registration, record.Details)
	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return carcheck.Errorf(carcheck.ECONFLICT, "registration %q already saved", record.Registration)
	}
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id

	return nil
}

// DeleteRecord removes a record. Deleting a missing record is a no-op.
func (s *RecordService) DeleteRecord(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	return err
}

// scanRecords reads all rows into records. Never returns a nil slice on success.
func scanRecords(rows *sql.Rows) ([]*carcheck.Record, error) {
	records := []*carcheck.Record{}
	for rows.Next() {
		var record carcheck.Record
		if err := rows.Scan(&record.ID, &record.Registration, &record.Details); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

package carcheck

import (
	"context"
	"strings"
)

// Record is one cached vehicle lookup.
type Record struct {
	ID           int64  `json:"id"`
	Registration string `json:"registration"`
	Details      string `json:"details"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Registration) == "" {
		return Errorf(EINVALID, "registration required")
	}
	return nil
}

// ShareText formats the record for sharing or copying to the clipboard.
func (r *Record) ShareText() string {
	return "Registration: " + r.Registration + "\nDetails: " + r.Details
}

// RecordService represents a service for managing cached lookups.
// Records are never updated; they are only created and deleted.
type RecordService interface {
	// FindRecordsByRegistration returns records whose registration equals
	// registration exactly (case-sensitive). Returns an empty slice if none match.
	FindRecordsByRegistration(ctx context.Context, registration string) ([]*Record, error)

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id int64) (*Record, error)

	// FindRecords retrieves records matching the filter, most recent first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// CreateRecord stores a new record and assigns its ID.
	// Returns ECONFLICT if the registration is already stored.
	CreateRecord(ctx context.Context, record *Record) error

	// DeleteRecord removes the record with the given ID.
	// Deleting a record that does not exist is not an error.
	DeleteRecord(ctx context.Context, id int64) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	// Query restricts results to registrations containing it as a substring.
	Query string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FilterRecords returns the records whose registration or details contain
// text, ignoring case. An empty text returns records unchanged.
func FilterRecords(records []*Record, text string) []*Record {
	if text == "" {
		return records
	}
	needle := strings.ToLower(text)
	var out []*Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Registration), needle) ||
			strings.Contains(strings.ToLower(r.Details), needle) {
			out = append(out, r)
		}
	}
	return out
}

// PageRecords skips offset records and keeps at most limit of the rest.
// Non-positive offset or limit is ignored.
func PageRecords(records []*Record, offset, limit int) []*Record {
	if offset > 0 {
		if offset >= len(records) {
			return []*Record{}
		}
		records = records[offset:]
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

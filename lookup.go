package carcheck

import (
	"context"
	"strings"
)

// LookupStatus is the outcome of a registration lookup.
type LookupStatus string

// LookupStatus constants.
const (
	LookupFound    LookupStatus = "found"
	LookupNotFound LookupStatus = "not_found"
)

// LookupResult is the result of looking up a registration.
// Transport and parse failures are returned as errors instead.
type LookupResult struct {
	Registration string       `json:"registration"`
	Status       LookupStatus `json:"status"`
	Details      string       `json:"details,omitempty"`

	// Cached is true when the details came from the local cache
	// and no remote fetch was made.
	Cached bool `json:"cached"`
}

// Message renders the result for display. input is the registration as the
// user typed it.
func (r *LookupResult) Message(input string) string {
	if r.Status == LookupFound {
		return r.Details
	}
	return "Unknown registration: " + input
}

// LookupOutcome pairs a lookup result with its error for asynchronous delivery.
type LookupOutcome struct {
	Result *LookupResult
	Err    error
}

// LookupService looks up registrations and manages the saved lookups.
type LookupService interface {
	// Lookup returns the details for a registration, consulting the cache
	// before the remote source. Found results from the remote source are
	// cached. Returns EINVALID for an empty registration or an unparsable
	// page and EUNAVAILABLE if the remote source could not be reached.
	Lookup(ctx context.Context, registration string) (*LookupResult, error)

	// ListSaved returns saved lookups, most recent first, restricted and
	// paginated by filter.
	ListSaved(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// Remove deletes a saved lookup. Removing a missing ID is a no-op.
	Remove(ctx context.Context, id int64) error

	// Share returns the share text for a saved lookup.
	// Returns ENOTFOUND if the record does not exist.
	Share(ctx context.Context, id int64) (string, error)
}

// ErrorText renders a lookup error for inline display.
func ErrorText(err error) string {
	return "Error: " + ErrorMessage(err)
}

// LookupShareText formats a fresh lookup for sharing, with the registration
// uppercased as it is shown on the search screen.
func LookupShareText(registration, details string) string {
	return "Reg Number:  " + strings.ToUpper(registration) + "\n" + details
}

// Package lookup implements cache-first registration lookups: the local
// cache is consulted first, and only on a miss is the vehicle-check site
// fetched, extracted and the result saved.
package lookup

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/carcheck"
	"golang.org/x/sync/singleflight"
)

// DefaultCheckURL is the vehicle-check page queried on a cache miss.
const DefaultCheckURL = "https://www.motorcheck.ie/free-car-check/"

// RegistrationParam is the query parameter carrying the registration.
const RegistrationParam = "vrm"

var _ carcheck.LookupService = (*Service)(nil)

// Service implements carcheck.LookupService.
//
// Concurrent lookups of the same registration share a single cache check,
// fetch and insert. The shared run is not canceled by any one caller, so the
// Fetcher must bound its own requests. A Service must not be copied after
// first use.
type Service struct {
	Records   carcheck.RecordService
	Fetcher   carcheck.Fetcher
	Extractor carcheck.DetailsExtractor

	// CheckURL overrides DefaultCheckURL.
	CheckURL string

	// Logger receives storage failures, which are never returned from Lookup.
	// Defaults to discarding.
	Logger *slog.Logger

	group singleflight.Group
}

// Lookup returns the details for a registration.
func (s *Service) Lookup(ctx context.Context, registration string) (*carcheck.LookupResult, error) {
	reg := strings.TrimSpace(registration)
	if reg == "" {
		return nil, carcheck.Errorf(carcheck.EINVALID, "registration required")
	}

	// The shared run outlives any single caller; each caller still stops
	// waiting when its own context is done.
	ch := s.group.DoChan(reg, func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), reg)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		// Callers sharing a flight each get their own copy.
		result := *res.Val.(*carcheck.LookupResult)
		return &result, nil
	}
}

func (s *Service) lookup(ctx context.Context, reg string) (*carcheck.LookupResult, error) {
	records, err := s.Records.FindRecordsByRegistration(ctx, reg)
	if err != nil {
		s.logger().Warn("cache lookup failed", "registration", reg, "err", err)
	} else if len(records) > 0 {
		return cachedResult(records[0]), nil
	}

	checkURL, err := BuildCheckURL(s.checkURL(), reg)
	if err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, checkURL)
	if err != nil {
		return nil, carcheck.Errorf(carcheck.EUNAVAILABLE, "%v", err)
	}

	extraction, err := s.Extractor.Extract([]byte(html))
	if err != nil {
		if carcheck.ErrorCode(err) != carcheck.EINVALID {
			err = carcheck.Errorf(carcheck.EINVALID, "document could not be parsed: %v", err)
		}
		return nil, err
	}
	if !extraction.Found {
		return &carcheck.LookupResult{Registration: reg, Status: carcheck.LookupNotFound}, nil
	}

	record := &carcheck.Record{Registration: reg, Details: extraction.Details}
	if err := s.Records.CreateRecord(ctx, record); err != nil {
		s.logger().Warn("saving lookup failed",
			"registration", reg,
			"code", carcheck.ErrorCode(err),
			"err", err,
		)
	}

	return &carcheck.LookupResult{
		Registration: reg,
		Status:       carcheck.LookupFound,
		Details:      extraction.Details,
	}, nil
}

// cachedResult converts a saved record into a result. Rows holding a raw
// vendor page were written for unknown registrations and report as not found.
func cachedResult(record *carcheck.Record) *carcheck.LookupResult {
	if carcheck.IsNotFoundText(record.Details) {
		return &carcheck.LookupResult{
			Registration: record.Registration,
			Status:       carcheck.LookupNotFound,
			Cached:       true,
		}
	}
	return &carcheck.LookupResult{
		Registration: record.Registration,
		Status:       carcheck.LookupFound,
		Details:      record.Details,
		Cached:       true,
	}
}

// ListSaved returns saved lookups, newest first.
func (s *Service) ListSaved(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error) {
	return s.Records.FindRecords(ctx, filter)
}

// Remove deletes a saved lookup.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.Records.DeleteRecord(ctx, id)
}

// Share returns the share text for a saved lookup.
func (s *Service) Share(ctx context.Context, id int64) (string, error) {
	record, err := s.Records.FindRecordByID(ctx, id)
	if err != nil {
		return "", err
	}
	return record.ShareText(), nil
}

func (s *Service) checkURL() string {
	if s.CheckURL != "" {
		return s.CheckURL
	}
	return DefaultCheckURL
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// BuildCheckURL returns base with the registration query parameter set.
// Other query parameters on base are kept.
func BuildCheckURL(base, registration string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", carcheck.Errorf(carcheck.EINVALID, "invalid check URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", carcheck.Errorf(carcheck.EINVALID, "invalid check URL %q", base)
	}
	q := u.Query()
	q.Set(RegistrationParam, registration)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

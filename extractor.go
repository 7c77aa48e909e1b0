package carcheck

import "strings"

// NotFoundMarker is present in the text returned for an unknown registration.
// The legacy contract returns the vendor page unmodified when no vehicle
// details could be found, and callers detect that by this substring.
const NotFoundMarker = "<!DOCTYPE html"

// Extraction is the result of extracting vehicle details from a vendor page.
type Extraction struct {
	// Found reports whether the page carried a vehicle details section.
	Found bool

	// Details is the normalized, line-oriented details text.
	// Set only when Found is true.
	Details string

	// Raw is the decoded page text. Set only when Found is false.
	Raw string
}

// Text returns the legacy string form of the extraction: the details when
// found, otherwise the original page text.
func (e *Extraction) Text() string {
	if e.Found {
		return e.Details
	}
	return e.Raw
}

// IsNotFoundText reports whether s is the legacy "no record" form, i.e. a raw
// vendor page rather than extracted details.
func IsNotFoundText(s string) bool {
	return strings.Contains(s, NotFoundMarker)
}

// DetailsExtractor extracts vehicle details from a vendor HTML page.
type DetailsExtractor interface {
	// Extract parses body and returns the extraction. A page without a
	// details section is not an error; it yields an Extraction with Found
	// set to false. Returns EINVALID only if the document cannot be parsed.
	Extract(body []byte) (*Extraction, error)
}

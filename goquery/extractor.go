// Package goquery implements vehicle details extraction from the vendor's
// car-check page using CSS selectors.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/carcheck"
	"golang.org/x/net/html"
)

// Default selectors for the vendor's vehicle-check page.
const (
	DefaultTitleSelector  = ".vehicle-details .vehicle-title"
	DefaultDetailSelector = ".d-flex.flex-wrap span"
)

// Ensure DetailsExtractor implements carcheck.DetailsExtractor at compile time.
var _ carcheck.DetailsExtractor = (*DetailsExtractor)(nil)

// DetailsExtractor converts a vehicle-check page into a line-oriented
// details string: the vehicle title followed by one "key: value" line per
// detail span.
type DetailsExtractor struct {
	titleSelector  string
	detailSelector string
}

// Option configures a DetailsExtractor.
type Option func(*DetailsExtractor)

// WithSelectors overrides the title and detail selectors.
func WithSelectors(title, detail string) Option {
	return func(e *DetailsExtractor) {
		e.titleSelector = title
		e.detailSelector = detail
	}
}

// NewDetailsExtractor creates a new DetailsExtractor.
func NewDetailsExtractor(opts ...Option) *DetailsExtractor {
	e := &DetailsExtractor{
		titleSelector:  DefaultTitleSelector,
		detailSelector: DefaultDetailSelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses body and extracts the vehicle details.
// A body that is not valid UTF-8 is treated as an empty page.
func (e *DetailsExtractor) Extract(body []byte) (*carcheck.Extraction, error) {
	var text string
	if utf8.Valid(body) {
		text = string(body)
	}

	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, carcheck.Errorf(carcheck.EINVALID, "document could not be parsed: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	title := doc.Find(e.titleSelector).First()
	if title.Length() == 0 {
		return &carcheck.Extraction{Raw: text}, nil
	}

	lines := []string{normalizeSpace(title.Text())}
	doc.Find(e.detailSelector).Each(func(_ int, sel *goquery.Selection) {
		if line, ok := formatDetail(normalizeSpace(sel.Text())); ok {
			lines = append(lines, line)
		}
	})

	return &carcheck.Extraction{
		Found:   true,
		Details: "\n" + strings.Join(lines, "\n"),
	}, nil
}

// formatDetail formats a "key: value" entry. Entries without exactly one
// colon are rejected.
func formatDetail(text string) (string, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return "", false
	}
	return strings.TrimSpace(parts[0]) + ": " + strings.TrimSpace(parts[1]), true
}

// normalizeSpace collapses whitespace runs the way rendered text reads.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

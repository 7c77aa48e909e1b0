package mock

import "github.com/fwojciec/carcheck"

var _ carcheck.DetailsExtractor = (*DetailsExtractor)(nil)

// DetailsExtractor is a mock implementation of carcheck.DetailsExtractor.
type DetailsExtractor struct {
	ExtractFn func(body []byte) (*carcheck.Extraction, error)
}

func (e *DetailsExtractor) Extract(body []byte) (*carcheck.Extraction, error) {
	return e.ExtractFn(body)
}

package mocks

import (
	"context"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// Walker returns a canned scan result
type Walker struct {
	Result *domain.ScanResult
	Err    error
	Roots  []string
}

// NewWalker creates a walker that yields records with no diagnostics
func NewWalker(records ...domain.FileRecord) *Walker {
	return &Walker{Result: &domain.ScanResult{Records: records}}
}

// Walk records the requested root and returns the canned result
func (m *Walker) Walk(ctx context.Context, root string) (*domain.ScanResult, error) {
	m.Roots = append(m.Roots, root)
	if m.Err != nil {
		return nil, m.Err
	}
	res := *m.Result
	res.Root = root
	return &res, nil
}

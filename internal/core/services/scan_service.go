package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// ScanService runs a single traversal of a directory tree
type ScanService struct {
	walker ports.Walker
}

// NewScanService creates a new scan service
func NewScanService(walker ports.Walker) *ScanService {
	return &ScanService{
		walker: walker,
	}
}

// ScanRequest represents a request to scan a directory
type ScanRequest struct {
	Root string
}

// ScanResponse represents the outcome of a scan
type ScanResponse struct {
	Result   *domain.ScanResult
	Duration time.Duration
}

// Execute walks the requested root. An unusable root is returned as an
// error; per-file problems are in the result's diagnostics.
func (s *ScanService) Execute(ctx context.Context, req ScanRequest) (*ScanResponse, error) {
	start := time.Now()

	result, err := s.walker.Walk(ctx, req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", req.Root, err)
	}

	return &ScanResponse{
		Result:   result,
		Duration: time.Since(start),
	}, nil
}

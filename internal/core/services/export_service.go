package services

import (
	"fmt"
	"io"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// ExportService flattens records into rows and writes them out
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// Serialize flattens records in order. The header is the field set of the
// first record; with no records there is no header to give, so it returns
// domain.ErrEmptyInput and no rows.
func (s *ExportService) Serialize(records []domain.FileRecord) ([]domain.Row, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyInput
	}

	rows := make([]domain.Row, len(records))
	for i, rec := range records {
		rows[i] = rec.Fields()
	}
	return rows, nil
}

// ExportRequest represents a request to export records
type ExportRequest struct {
	Records []domain.FileRecord
	Encoder ports.RecordEncoder
}

// ExportResponse represents the response from exporting
type ExportResponse struct {
	Rows   int
	Header []string
}

// Execute serializes the records and encodes them to w
func (s *ExportService) Execute(w io.Writer, req ExportRequest) (*ExportResponse, error) {
	if req.Encoder == nil {
		return nil, fmt.Errorf("no encoder given")
	}

	rows, err := s.Serialize(req.Records)
	if err != nil {
		return nil, err
	}

	if err := req.Encoder.Encode(w, rows); err != nil {
		return nil, fmt.Errorf("failed to export %d rows: %w", len(rows), err)
	}

	return &ExportResponse{
		Rows:   len(rows),
		Header: rows[0].Header(),
	}, nil
}

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// CSVEncoder writes a header line followed by one line per row
type CSVEncoder struct{}

// Extension returns "csv"
func (CSVEncoder) Extension() string { return "csv" }

// Encode writes rows as CSV. Nothing is written for an empty input.
func (CSVEncoder) Encode(w io.Writer, rows []domain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rows[0].Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file written by CSVEncoder back into records.
// Columns are matched by header name, so their order does not matter.
func ReadCSV(r io.Reader) ([]domain.FileRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	required := domain.FileRecord{}.Fields().Header()
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []domain.FileRecord
	for line := 2; ; line++ {
		values, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(values, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(values []string, col map[string]int) (domain.FileRecord, error) {
	get := func(name string) string { return values[col[name]] }

	size, err := strconv.ParseInt(get(domain.FieldSize), 10, 64)
	if err != nil {
		return domain.FileRecord{}, fmt.Errorf("invalid size: %w", err)
	}

	rec := domain.FileRecord{
		Name:      get(domain.FieldName),
		Extension: get(domain.FieldExtension),
		Path:      get(domain.FieldPath),
		SizeBytes: size,
		Owner:     get(domain.FieldOwner),
	}

	stamps := []struct {
		field string
		dst   *time.Time
	}{
		{domain.FieldModified, &rec.ModifiedAt},
		{domain.FieldAccessed, &rec.AccessedAt},
		{domain.FieldCreated, &rec.CreatedAt},
	}
	for _, s := range stamps {
		t, err := domain.ParseTimestamp(get(s.field))
		if err != nil {
			return domain.FileRecord{}, fmt.Errorf("invalid %s: %w", s.field, err)
		}
		*s.dst = t
	}

	return rec, nil
}

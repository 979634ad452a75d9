package domain

import (
	"strconv"
	"time"
)

// UnknownOwner is reported when an owner id cannot be mapped to an account
// and the extractor was told to tolerate it.
const UnknownOwner = "unknown"

// Field names used as the export header, in record order.
const (
	FieldName       = "Filename"
	FieldExtension  = "File Extension"
	FieldPath       = "Path"
	FieldSize       = "Size (bytes)"
	FieldModified   = "Last Modified"
	FieldAccessed   = "Last Accessed"
	FieldCreated    = "Created"
	FieldOwner      = "Owner"
	TimestampLayout = time.RFC3339Nano
)

// FileRecord is the metadata collected for one file during a scan.
// Records are built once by the extractor and never modified afterwards.
//
// CreatedAt carries the platform's notion of "created": birth time where the
// host exposes one, inode change time otherwise.
type FileRecord struct {
	Name       string    `json:"name" yaml:"name"`
	Extension  string    `json:"extension" yaml:"extension"`
	Path       string    `json:"path" yaml:"path"`
	SizeBytes  int64     `json:"size_bytes" yaml:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at" yaml:"modified_at"`
	AccessedAt time.Time `json:"accessed_at" yaml:"accessed_at"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Owner      string    `json:"owner" yaml:"owner"`
}

// Field is a single named value of a flattened record
type Field struct {
	Name  string
	Value string
}

// Row is a flattened record with a stable field order
type Row []Field

// Header returns the field names of the row
func (r Row) Header() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Values returns the field values of the row
func (r Row) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// Fields flattens the record into its complete, ordered field set.
// Timestamps are written in UTC with nanosecond precision.
func (r FileRecord) Fields() Row {
	return Row{
		{Name: FieldName, Value: r.Name},
		{Name: FieldExtension, Value: r.Extension},
		{Name: FieldPath, Value: r.Path},
		{Name: FieldSize, Value: strconv.FormatInt(r.SizeBytes, 10)},
		{Name: FieldModified, Value: formatTimestamp(r.ModifiedAt)},
		{Name: FieldAccessed, Value: formatTimestamp(r.AccessedAt)},
		{Name: FieldCreated, Value: formatTimestamp(r.CreatedAt)},
		{Name: FieldOwner, Value: r.Owner},
	}
}

// Timestamp returns the timestamp selected by field
func (r FileRecord) Timestamp(field TimeField) time.Time {
	switch field {
	case TimeAccessed:
		return r.AccessedAt
	case TimeCreated:
		return r.CreatedAt
	default:
		return r.ModifiedAt
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp written by Fields
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []domain.FileRecord {
	base := time.Date(2023, 12, 11, 9, 15, 30, 987654321, time.UTC)
	return []domain.FileRecord{
		{
			Name: "report.docx", Extension: ".docx", Path: "/data/report.docx", SizeBytes: 500,
			ModifiedAt: base, AccessedAt: base.Add(time.Minute), CreatedAt: base.Add(-time.Hour), Owner: "kyle",
		},
		{
			Name: "photo, final.JPG", Extension: ".jpeg", Path: "/data/photo, final.JPG", SizeBytes: 2000,
			ModifiedAt: base.AddDate(0, -1, 0), AccessedAt: base, CreatedAt: base.AddDate(-1, 0, 0), Owner: "kyle",
		},
		{
			Name: "notes \"v2\".txt", Extension: ".txt", Path: "/data/notes \"v2\".txt", SizeBytes: 0,
			ModifiedAt: base, AccessedAt: base, CreatedAt: base, Owner: domain.UnknownOwner,
		},
	}
}

func toRows(records []domain.FileRecord) []domain.Row {
	rows := make([]domain.Row, len(records))
	for i, r := range records {
		rows[i] = r.Fields()
	}
	return rows
}

func TestCSV_RoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := (CSVEncoder{}).Encode(&buf, toRows(records)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Filename,File Extension,Path,Size (bytes),Last Modified,Last Accessed,Created,Owner\n") {
		t.Errorf("unexpected header line: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(parsed) != len(records) {
		t.Fatalf("got %d rows, want %d", len(parsed), len(records))
	}

	for i := range records {
		want, got := records[i], parsed[i]
		if got.Name != want.Name || got.Extension != want.Extension || got.Path != want.Path ||
			got.SizeBytes != want.SizeBytes || got.Owner != want.Owner {
			t.Errorf("row %d = %+v, want %+v", i, got, want)
		}
		if !got.ModifiedAt.Equal(want.ModifiedAt) || !got.AccessedAt.Equal(want.AccessedAt) || !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("row %d timestamps did not round trip", i)
		}
	}
}

func TestCSV_EmptyInputWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSVEncoder{}).Encode(&buf, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	records, err := ReadCSV(&buf)
	if err != nil || records != nil {
		t.Errorf("ReadCSV(empty) = %v, %v", records, err)
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Filename,Path\na.txt,/a.txt\n"))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestReadCSV_BadSize(t *testing.T) {
	var buf bytes.Buffer
	row := sampleRecords()[0].Fields()
	row[3].Value = "lots"
	if err := (CSVEncoder{}).Encode(&buf, []domain.Row{row}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if _, err := ReadCSV(&buf); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected line 2 error, got %v", err)
	}
}

func TestJSON_KeepsFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONEncoder{}).Encode(&buf, toRows(sampleRecords()[:1])); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.String()
	prev := -1
	for _, name := range sampleRecords()[0].Fields().Header() {
		idx := strings.Index(out, `"`+name+`"`)
		if idx < 0 {
			t.Fatalf("field %q missing from %s", name, out)
		}
		if idx < prev {
			t.Errorf("field %q out of order", name)
		}
		prev = idx
	}

	var decoded []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded[0][domain.FieldSize] != "500" {
		t.Errorf("size = %q, want 500", decoded[0][domain.FieldSize])
	}
}

func TestJSON_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONEncoder{}).Encode(&buf, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("got %q, want []", buf.String())
	}
}

func TestYAML_Encode(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := (YAMLEncoder{}).Encode(&buf, toRows(records)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("got %d documents, want %d", len(decoded), len(records))
	}
	if decoded[1][domain.FieldName] != "photo, final.JPG" {
		t.Errorf("name = %q", decoded[1][domain.FieldName])
	}
	if decoded[0][domain.FieldSize] != "500" {
		t.Errorf("size = %q", decoded[0][domain.FieldSize])
	}
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{"csv", "json", "yaml"} {
		enc, err := ForFormat(name)
		if err != nil {
			t.Errorf("ForFormat(%q) error = %v", name, err)
			continue
		}
		if enc.Extension() != name {
			t.Errorf("Extension() = %q, want %q", enc.Extension(), name)
		}
	}
	if _, err := ForFormat("xlsx"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestFileRecord_Fields(t *testing.T) {
	mod := time.Date(2023, 12, 11, 10, 30, 0, 123456789, time.UTC)
	rec := FileRecord{
		Name:       "photo.JPG",
		Extension:  ".jpeg",
		Path:       "/data/photo.JPG",
		SizeBytes:  2000,
		ModifiedAt: mod,
		AccessedAt: mod.Add(time.Hour),
		CreatedAt:  mod.Add(-time.Hour),
		Owner:      "kyle",
	}

	row := rec.Fields()

	wantHeader := []string{FieldName, FieldExtension, FieldPath, FieldSize, FieldModified, FieldAccessed, FieldCreated, FieldOwner}
	header := row.Header()
	if len(header) != len(wantHeader) {
		t.Fatalf("header length = %d, want %d", len(header), len(wantHeader))
	}
	for i := range wantHeader {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], wantHeader[i])
		}
	}

	values := row.Values()
	if values[3] != "2000" {
		t.Errorf("size = %q, want %q", values[3], "2000")
	}
	if values[4] != "2023-12-11T10:30:00.123456789Z" {
		t.Errorf("modified = %q", values[4])
	}

	parsed, err := ParseTimestamp(values[4])
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if !parsed.Equal(mod) {
		t.Errorf("round trip = %v, want %v", parsed, mod)
	}
}

func TestFileRecord_Timestamp(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := FileRecord{
		ModifiedAt: base,
		AccessedAt: base.AddDate(0, 1, 0),
		CreatedAt:  base.AddDate(0, 2, 0),
	}

	if !rec.Timestamp(TimeModified).Equal(rec.ModifiedAt) {
		t.Error("modified mismatch")
	}
	if !rec.Timestamp(TimeAccessed).Equal(rec.AccessedAt) {
		t.Error("accessed mismatch")
	}
	if !rec.Timestamp(TimeCreated).Equal(rec.CreatedAt) {
		t.Error("created mismatch")
	}
}

func TestErrors_Unwrap(t *testing.T) {
	inputErr := fmt.Errorf("scan: %w", &InputError{Path: "/nope", Reason: "does not exist", Err: os.ErrNotExist})
	if !IsInputError(inputErr) {
		t.Error("expected wrapped InputError to be detected")
	}
	if !errors.Is(inputErr, os.ErrNotExist) {
		t.Error("expected InputError to unwrap to its cause")
	}

	extErr := &ExtractionError{Path: "/a", Op: "stat", Err: os.ErrPermission}
	if IsInputError(extErr) {
		t.Error("ExtractionError is not an InputError")
	}
	if !errors.Is(extErr, os.ErrPermission) {
		t.Error("expected ExtractionError to unwrap")
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	d.Add(nil)
	d.Add(&ExtractionError{Path: "/a/file", Op: "stat", Err: os.ErrNotExist})
	d.Add(&TraversalError{Path: "/a/locked", Err: os.ErrPermission})
	d.Add(&ExtractionError{Path: "/a/other", Op: "owner", Err: errors.New("unknown uid")})

	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if files := d.SkippedFiles(); len(files) != 2 || files[0] != "/a/file" || files[1] != "/a/other" {
		t.Errorf("SkippedFiles() = %v", files)
	}
	if dirs := d.SkippedDirs(); len(dirs) != 1 || dirs[0] != "/a/locked" {
		t.Errorf("SkippedDirs() = %v", dirs)
	}
}

func TestScanResult_ExtensionsSeen(t *testing.T) {
	r := &ScanResult{Records: []FileRecord{
		{Extension: ".txt", SizeBytes: 1},
		{Extension: "", SizeBytes: 2},
		{Extension: ".png", SizeBytes: 3},
		{Extension: ".txt", SizeBytes: 4},
	}}

	exts := r.ExtensionsSeen()
	if len(exts) != 2 || exts[0] != ".txt" || exts[1] != ".png" {
		t.Errorf("ExtensionsSeen() = %v", exts)
	}
	if r.TotalSize() != 10 {
		t.Errorf("TotalSize() = %d, want 10", r.TotalSize())
	}
}

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/fsviz/internal/adapters/filesystem"
	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports/mocks"
)

func TestScanService_Execute(t *testing.T) {
	walker := mocks.NewWalker(
		domain.FileRecord{Name: "a.txt", Extension: ".txt", Path: "/r/a.txt"},
		domain.FileRecord{Name: "b.png", Extension: ".png", Path: "/r/b.png"},
	)
	svc := NewScanService(walker)

	resp, err := svc.Execute(context.Background(), ScanRequest{Root: "/r"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if resp.Result.Count() != 2 {
		t.Errorf("Count() = %d, want 2", resp.Result.Count())
	}
	if len(walker.Roots) != 1 || walker.Roots[0] != "/r" {
		t.Errorf("walker roots = %v", walker.Roots)
	}
}

func TestScanService_InputErrorPropagates(t *testing.T) {
	walker := &mocks.Walker{Err: &domain.InputError{Path: "/missing", Reason: "does not exist"}}
	svc := NewScanService(walker)

	resp, err := svc.Execute(context.Background(), ScanRequest{Root: "/missing"})
	if resp != nil {
		t.Error("expected no response")
	}
	if !domain.IsInputError(err) {
		t.Errorf("expected InputError, got %v", err)
	}
}

// End to end: a real directory through the walker and the type aggregator
func TestScanService_EndToEndTypeCounts(t *testing.T) {
	root := t.TempDir()
	files := map[string]int{
		"report.docx": 500,
		"photo.JPG":   2000,
		"photo2.jpeg": 3000,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(root, name), make([]byte, size), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	owners := mocks.NewOwnerResolver(map[uint32]string{uint32(os.Getuid()): "tester"})
	svc := NewScanService(filesystem.NewWalker(filesystem.NewExtractor(owners, true)))

	resp, err := svc.Execute(context.Background(), ScanRequest{Root: root})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	table := analysis.AggregateTypes(resp.Result.Records, domain.NewExtensionFilter())
	want := []domain.TypeCount{{Extension: ".jpeg", Count: 2}, {Extension: ".docx", Count: 1}}
	if len(table.Entries) != len(want) {
		t.Fatalf("table = %+v, want %+v", table.Entries, want)
	}
	for i := range want {
		if table.Entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, table.Entries[i], want[i])
		}
	}

	var total int64
	for _, r := range resp.Result.Records {
		total += r.SizeBytes
	}
	if total != 5500 {
		t.Errorf("total size = %d, want 5500", total)
	}
}

func TestScanService_MissingRootIsFatal(t *testing.T) {
	owners := mocks.NewOwnerResolver(nil)
	svc := NewScanService(filesystem.NewWalker(filesystem.NewExtractor(owners, true)))

	_, err := svc.Execute(context.Background(), ScanRequest{Root: filepath.Join(t.TempDir(), "nope")})

	var inputErr *domain.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if inputErr.Reason != "does not exist" {
		t.Errorf("Reason = %q", inputErr.Reason)
	}
}

package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// Walker enumerates a directory tree depth-first and extracts every file.
// Directory symlinks are not followed; there is no cycle guard beyond that.
type Walker struct {
	extractor ports.MetadataExtractor
}

// NewWalker creates a walker using extractor for each file
func NewWalker(extractor ports.MetadataExtractor) *Walker {
	return &Walker{
		extractor: extractor,
	}
}

var _ ports.Walker = (*Walker)(nil)

// Walk scans root. Unreadable directories and files that fail extraction
// are recorded in the diagnostics and skipped.
func (w *Walker) Walk(ctx context.Context, root string) (*domain.ScanResult, error) {
	absRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{Root: absRoot}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if d == nil {
				return err
			}
			result.Diagnostics.Add(&domain.TraversalError{Path: path, Err: err})
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !w.shouldExtract(path, d) {
			return nil
		}

		record, err := w.extractor.Extract(path)
		if err != nil {
			result.Diagnostics.Add(asExtractionError(path, err))
			return nil
		}
		result.Records = append(result.Records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan of %s interrupted: %w", absRoot, err)
	}

	return result, nil
}

// shouldExtract keeps regular files and symlinks that do not point at a
// directory or special file. Broken symlinks are kept so the failure is
// reported by the extractor.
func (w *Walker) shouldExtract(path string, d fs.DirEntry) bool {
	mode := d.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}

	target, err := os.Stat(path)
	if err != nil {
		return true
	}
	return target.Mode().IsRegular()
}

// validateRoot resolves root to an absolute path and checks that it is a
// readable directory
func validateRoot(root string) (string, error) {
	if root == "" {
		return "", &domain.InputError{Path: root, Reason: "no directory given"}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.InputError{Path: root, Reason: "cannot resolve path", Err: err}
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &domain.InputError{Path: absRoot, Reason: "does not exist", Err: err}
		}
		return "", &domain.InputError{Path: absRoot, Reason: "cannot stat", Err: err}
	}
	if !info.IsDir() {
		return "", &domain.InputError{Path: absRoot, Reason: "not a directory"}
	}

	dir, err := os.Open(absRoot)
	if err != nil {
		return "", &domain.InputError{Path: absRoot, Reason: "not readable", Err: err}
	}
	defer dir.Close()

	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return "", &domain.InputError{Path: absRoot, Reason: "not readable", Err: err}
	}

	return absRoot, nil
}

func asExtractionError(path string, err error) error {
	var extErr *domain.ExtractionError
	if errors.As(err, &extErr) {
		return err
	}
	return &domain.ExtractionError{Path: path, Op: "extract", Err: err}
}

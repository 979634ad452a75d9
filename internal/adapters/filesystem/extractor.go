package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// Extractor reads the metadata of a single file with one stat call
type Extractor struct {
	owners            ports.OwnerResolver
	allowUnknownOwner bool
}

// NewExtractor creates an extractor resolving owners through owners.
// With allowUnknownOwner, an unmapped owner id yields domain.UnknownOwner
// instead of failing the file.
func NewExtractor(owners ports.OwnerResolver, allowUnknownOwner bool) *Extractor {
	return &Extractor{
		owners:            owners,
		allowUnknownOwner: allowUnknownOwner,
	}
}

// Ensure it implements the interface
var _ ports.MetadataExtractor = (*Extractor)(nil)

// Extract stats path (following symlinks) and builds its record
func (e *Extractor) Extract(path string) (domain.FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileRecord{}, &domain.ExtractionError{Path: path, Op: "stat", Err: err}
	}
	if !info.Mode().IsRegular() {
		return domain.FileRecord{}, &domain.ExtractionError{
			Path: path,
			Op:   "stat",
			Err:  fmt.Errorf("not a regular file (%s)", info.Mode().Type()),
		}
	}

	owner, err := e.ownerOf(info)
	if err != nil {
		return domain.FileRecord{}, &domain.ExtractionError{Path: path, Op: "owner", Err: err}
	}

	accessed, created := statTimes(info)
	name := filepath.Base(path)

	return domain.FileRecord{
		Name:       name,
		Extension:  domain.ExtensionOf(name),
		Path:       path,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
		AccessedAt: accessed,
		CreatedAt:  created,
		Owner:      owner,
	}, nil
}

func (e *Extractor) ownerOf(info os.FileInfo) (string, error) {
	uid, ok := ownerID(info)
	if !ok {
		// Host does not expose numeric owners
		return domain.UnknownOwner, nil
	}

	name, err := e.owners.Resolve(uid)
	if err != nil {
		if e.allowUnknownOwner {
			return domain.UnknownOwner, nil
		}
		return "", err
	}
	return name, nil
}

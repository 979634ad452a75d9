// Package export writes flattened file records in the supported formats
package export

import (
	"fmt"
	"sort"

	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// Registry of supported formats
var encoders = map[string]ports.RecordEncoder{
	"csv":  CSVEncoder{},
	"json": JSONEncoder{Indent: "  "},
	"yaml": YAMLEncoder{},
}

// ForFormat returns the encoder registered for format
func ForFormat(format string) (ports.RecordEncoder, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (valid: %v)", format, Formats())
	}
	return enc, nil
}

// Formats lists the registered format names
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

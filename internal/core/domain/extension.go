package domain

import (
	"path/filepath"
	"strings"
)

// jpegAlias is the only extension folded into another spelling
const (
	jpegAlias     = ".jpg"
	jpegCanonical = ".jpeg"
)

// NormalizeExtension canonicalizes a raw extension.
// The result is lower-cased and ".jpg" becomes ".jpeg"; nothing else is aliased.
//   - ".JPG"  -> ".jpeg"
//   - ".Tex"  -> ".tex"
//   - ""      -> ""
func NormalizeExtension(ext string) string {
	lower := strings.ToLower(ext)
	if lower == jpegAlias {
		return jpegCanonical
	}
	return lower
}

// ExtensionOf returns the normalized extension of a file name
func ExtensionOf(name string) string {
	return NormalizeExtension(filepath.Ext(name))
}

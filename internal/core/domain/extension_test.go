package domain

import "testing"

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"upper-case alias", ".JPG", ".jpeg"},
		{"lower-case alias", ".jpg", ".jpeg"},
		{"canonical form", ".jpeg", ".jpeg"},
		{"mixed-case canonical", ".JpEg", ".jpeg"},
		{"unrelated extension", ".TXT", ".txt"},
		{"empty", "", ""},
		{"alias without dot is not folded", "jpg", "jpg"},
		{"similar extension untouched", ".jpgx", ".jpgx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExtension(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeExtension_AliasesShareBucket(t *testing.T) {
	a := NormalizeExtension(".JPG")
	b := NormalizeExtension(".jpg")
	c := NormalizeExtension(".jpeg")
	if a != b || b != c {
		t.Errorf("expected one bucket, got %q, %q, %q", a, b, c)
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"photo", "photo.JPG", ".jpeg"},
		{"document", "report.docx", ".docx"},
		{"no extension", "Makefile", ""},
		{"dotfile", ".bashrc", ".bashrc"},
		{"double extension keeps last", "archive.tar.GZ", ".gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtensionOf(tt.filename); got != tt.expected {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}

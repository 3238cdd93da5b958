package mimetypes

import "testing"

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	if reg.Default() != "application/octet-stream" {
		t.Errorf("Default() = %q", reg.Default())
	}
}

func TestForFilename(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"notes.txt", "text/plain"},
		{"README.md", "text/markdown"},
		{"photo.png", "image/png"},
		{"photo.JPG", "image/jpeg"},
		{"archive.tar", "application/x-tar"},
		{"report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"binary.bin", "application/octet-stream"},
		{"no-extension", "application/octet-stream"},
		{".gitignore", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := reg.ForFilename(tt.name); got != tt.want {
			t.Errorf("ForFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

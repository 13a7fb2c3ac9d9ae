package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---- TestSEPNumber - Numeric suffix extraction ----

func TestSEPNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{name: "plain", path: "sep-0042.txt", want: 42},
		{name: "markdown", path: "sep-0042.md", want: 42},
		{name: "with directory", path: "/tmp/seps/sep-0001.txt", want: 1},
		{name: "index", path: "sep-0000.txt", want: 0},
		{name: "no dash", path: "readme.txt", wantErr: true},
		{name: "non numeric", path: "sep-abc.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SEPNumber(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrNotSEPFile) {
					t.Fatalf("SEPNumber(%q) error = %v, want %v", tt.path, err, ErrNotSEPFile)
				}
				return
			}
			if err != nil {
				t.Fatalf("SEPNumber(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("SEPNumber(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

// ---- TestHTMLPath - Output path derivation ----

func TestHTMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "txt", in: "sep-0042.txt", want: "sep-0042.html"},
		{name: "md", in: "sep-0042.md", want: "sep-0042.html"},
		{name: "with directory", in: "/srv/seps/sep-0001.txt", want: "/srv/seps/sep-0001.html"},
		{name: "no extension", in: "sep-0001", want: "sep-0001.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HTMLPath(tt.in); got != tt.want {
				t.Errorf("HTMLPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---- TestFileExists - Regular files only ----

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists(absent) = true, want false")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true, want false")
	}
}

// ---- TestWriteFileReadable - Permissions survive the umask ----

func TestWriteFileReadable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	if err := WriteFileReadable(path, []byte("<html></html>"), 0o664); err != nil {
		t.Fatalf("WriteFileReadable() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if got := info.Mode().Perm(); got != 0o664 {
		t.Errorf("WriteFileReadable() mode = %v, want %v", got, os.FileMode(0o664))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("WriteFileReadable() content = %q", data)
	}
}

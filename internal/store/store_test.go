package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"simple", "internal/tui/badge/badge.go", "internal/tui/badge/badge.go", false},
		{"dot segments", "internal/./tui/../tui/badge.go", "internal/tui/badge.go", false},
		{"root", ".", ".", false},
		{"empty", "", "", true},
		{"absolute", "/etc/passwd", "", true},
		{"escapes", "../outside.go", "", true},
		{"escapes after clean", "a/../../outside.go", "", true},
		{"backslash", `a\b.go`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Clean(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// storeContract runs the behavior every FS implementation must share.
func storeContract(t *testing.T, s FS) {
	t.Helper()

	if _, err := s.ReadFile("ui/badge/badge.go"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}

	files, err := s.ListFiles("ui/badge")
	if err != nil {
		t.Fatalf("ListFiles(missing) error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("ListFiles(missing) = %v, want empty", files)
	}

	writes := map[string]string{
		"ui/badge/badge.go":        "package badge\n",
		"ui/badge/styles/theme.go": "package styles\n",
		"ui/spinner/spinner.go":    "package spinner\n",
	}
	for name, content := range writes {
		if err := s.WriteFile(name, []byte(content)); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", name, err)
		}
	}

	data, err := s.ReadFile("ui/badge/badge.go")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "package badge\n" {
		t.Errorf("ReadFile = %q", data)
	}

	files, err = s.ListFiles("ui/badge")
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}
	want := []string{"badge.go", "styles/theme.go"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListFiles = %v, want %v", files, want)
	}

	if err := s.WriteFile("ui/badge/badge.go", []byte("package badge // edited\n")); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	data, _ = s.ReadFile("ui/badge/badge.go")
	if string(data) != "package badge // edited\n" {
		t.Errorf("overwrite not visible: %q", data)
	}

	if err := s.WriteFile("../escape.go", []byte("x")); err == nil {
		t.Error("WriteFile outside the root should fail")
	}
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)
	storeContract(t, d)

	if _, err := os.Stat(filepath.Join(root, "ui", "spinner", "spinner.go")); err != nil {
		t.Errorf("file not written to disk: %v", err)
	}
	if d.Root() != root {
		t.Errorf("Root() = %q, want %q", d.Root(), root)
	}
}

func TestDir_NoTempFilesLeft(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)

	if err := d.WriteFile("a/b.go", []byte("x")); err != nil {
		t.Fatal(err)
	}
	files, err := d.ListFiles("a")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(files, []string{"b.go"}) {
		t.Errorf("ListFiles = %v, want [b.go]", files)
	}
}

func TestMemory(t *testing.T) {
	storeContract(t, NewMemory())
}

func TestMemory_FailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = map[string]error{"ui/badge/badge.go": errors.New("disk full")}

	err := m.WriteFile("ui/badge/badge.go", []byte("x"))
	if err == nil {
		t.Fatal("expected write failure")
	}
	if _, err := m.ReadFile("ui/badge/badge.go"); !errors.Is(err, fs.ErrNotExist) {
		t.Error("failed write should not create the file")
	}
}

func TestMemory_SnapshotIsCopy(t *testing.T) {
	m := NewMemory()
	m.WriteFile("a.go", []byte("one"))

	snap := m.Snapshot()
	m.WriteFile("a.go", []byte("two"))

	if snap["a.go"] != "one" {
		t.Errorf("snapshot changed after write: %q", snap["a.go"])
	}

	m.Remove("a.go")
	if _, err := m.ReadFile("a.go"); !errors.Is(err, fs.ErrNotExist) {
		t.Error("Remove should delete the file")
	}
}

package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func createTestZip(t *testing.T, names ...string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create entry %s: %v", name, err)
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			t.Fatalf("Failed to write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createTestZip(t,
		"docs/readme.txt",
		"docs/guide.txt",
		"src/main.go",
		"src/test.go",
		"config.yml",
	)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"docs prefix", "docs/", []string{"docs/guide.txt", "docs/readme.txt"}},
		{"src prefix", "src/", []string{"src/main.go", "src/test.go"}},
		{"no match", "nonexistent/", nil},
		{"everything", "", []string{"config.yml", "docs/guide.txt", "docs/readme.txt", "src/main.go", "src/test.go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.pattern, nil, func(archive, name string, f *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				if f == nil || f.Name != name {
					t.Errorf("entry name mismatch for %q", name)
				}
				visited = append(visited, name)
				return nil
			})
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if len(visited) != len(tt.want) {
				t.Fatalf("visited %d entries, want %d: %v", len(visited), len(tt.want), visited)
			}
			for i, name := range tt.want {
				if visited[i] != name {
					t.Errorf("visited[%d] = %s, want %s", i, visited[i], name)
				}
			}
		})
	}
}

func TestWalk_NaturalOrder(t *testing.T) {
	// archive order is deliberately shuffled and lexical order would put
	// page10 before page2
	zipPath := createTestZip(t, "page10.yml", "page1.yml", "page2.yml")

	var visited []string
	err := Walk(zipPath, "", nil, func(archive, name string, f *zip.File) error {
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"page1.yml", "page2.yml", "page10.yml"}
	if len(visited) != len(want) {
		t.Fatalf("visited %d entries, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestWalk_SkipsDirectories(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	dirHeader := &zip.FileHeader{Name: "mydir/"}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("Failed to create directory entry: %v", err)
	}
	fw, err := w.Create("mydir/file.txt")
	if err != nil {
		t.Fatalf("Failed to create file entry: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()
	zipFile.Close()

	var visited []string
	err = Walk(zipPath, "mydir/", nil, func(archive, name string, f *zip.File) error {
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "mydir/file.txt" {
		t.Errorf("visited = %v, want [mydir/file.txt]", visited)
	}
}

func TestWalk_PropagatesWalkFnError(t *testing.T) {
	zipPath := createTestZip(t, "a.txt", "b.txt", "c.txt")

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, "", nil, func(archive, name string, f *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})

	if err != stopErr {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d entries, want 2 (early termination)", visited)
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.zip", "", nil, func(archive, name string, f *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		err := Walk(invalidZip, "", nil, func(archive, name string, f *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestWalk_UnsafeEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"path traversal", "../evil.txt"},
		{"nested traversal", "good/../../evil.txt"},
		{"absolute path", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zipPath := createTestZip(t, "good.txt", tt.entry)

			err := Walk(zipPath, "", nil, func(archive, name string, f *zip.File) error {
				return nil
			})
			if err == nil {
				t.Errorf("Walk() accepted unsafe entry %q", tt.entry)
			}
		})
	}
}

func TestDecodeName(t *testing.T) {
	// entry name stored in CP1251, the archive cannot mark it as UTF-8
	raw, err := charmap.Windows1251.NewEncoder().String("привет.yml")
	if err != nil {
		t.Fatalf("Failed to encode test name: %v", err)
	}

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	fw, err := w.CreateHeader(&zip.FileHeader{Name: raw, NonUTF8: true})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()
	zipFile.Close()

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to reopen zip: %v", err)
	}
	defer r.Close()
	if len(r.File) != 1 {
		t.Fatalf("got %d entries, want 1", len(r.File))
	}
	f := r.File[0]

	t.Run("with codepage", func(t *testing.T) {
		if got := DecodeName(f, charmap.Windows1251); got != "привет.yml" {
			t.Errorf("DecodeName() = %q, want %q", got, "привет.yml")
		}
	})

	t.Run("without codepage", func(t *testing.T) {
		if got := DecodeName(f, nil); got != raw {
			t.Errorf("DecodeName() = %q, want raw name %q", got, raw)
		}
	})
}

func TestWalk_DecodedNames(t *testing.T) {
	raw, err := charmap.Windows1251.NewEncoder().String("страница.yml")
	if err != nil {
		t.Fatalf("Failed to encode test name: %v", err)
	}

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	fw, err := w.CreateHeader(&zip.FileHeader{Name: raw, NonUTF8: true})
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()
	zipFile.Close()

	var visited []string
	err = Walk(zipPath, "", charmap.Windows1251, func(archive, name string, f *zip.File) error {
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "страница.yml" {
		t.Errorf("visited = %v, want [страница.yml]", visited)
	}
}

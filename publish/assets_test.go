package publish

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestZipAssets(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "site.zip")
	writeTestArchive(t, zipPath, map[string][]byte{
		"pages/pic.yml":      []byte("doc"),
		"pages/img/logo.png": []byte("image-bytes"),
		"shared/common.png":  []byte("shared-bytes"),
	})

	open := zipAssets(zipPath, "pages/pic.yml", nil)

	data, err := open("img/logo.png")
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("open() = %q, want %q", data, "image-bytes")
	}

	// backslash separators show up in documents written on Windows
	data, err = open(`img\logo.png`)
	if err != nil {
		t.Fatalf("open() with backslashes error = %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("open() with backslashes = %q, want %q", data, "image-bytes")
	}

	for _, ref := range []string{"../shared/common.png", "/etc/passwd", "img/../../escape.png", ".."} {
		if _, err := open(ref); err == nil {
			t.Errorf("Unsafe reference %q was resolved", ref)
		} else if !strings.Contains(err.Error(), "unsafe image reference") {
			t.Errorf("Unexpected error for %q: %v", ref, err)
		}
	}

	if _, err := open("img/missing.png"); err == nil {
		t.Error("Missing entry did not fail")
	} else if !strings.Contains(err.Error(), "no entry") {
		t.Errorf("Unexpected error for missing entry: %v", err)
	}
}

func TestZipAssets_DocumentAtArchiveRoot(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "site.zip")
	writeTestArchive(t, zipPath, map[string][]byte{
		"pic.yml":      []byte("doc"),
		"img/logo.png": []byte("image-bytes"),
	})

	open := zipAssets(zipPath, "pic.yml", nil)
	data, err := open("img/logo.png")
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("open() = %q, want %q", data, "image-bytes")
	}
}

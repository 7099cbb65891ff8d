// Package archive provides zip traversal for input walking.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/encoding"
)

// WalkFunc is called for every matched archive entry. The name is the entry
// name after codepage decoding, always slash separated.
type WalkFunc func(archive, name string, f *zip.File) error

// Walk calls walkFn for every file entry whose decoded name starts with
// pattern (empty matches everything), in natural name order. Directory
// entries are skipped, duplicate names keep the first occurrence. Any entry
// with an absolute or directory-escaping name fails the walk - such archives
// are crafted, not broken.
func Walk(archive, pattern string, cp encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		// on ErrInsecurePath a usable reader still comes back
		if r != nil {
			r.Close()
		}
		return fmt.Errorf("unable to open archive %s: %w", archive, err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		name := DecodeName(f, cp)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, pattern) {
			continue
		}
		if _, ok := files[name]; ok {
			continue
		}
		names = append(names, name)
		files[name] = f
	}
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		if err := walkFn(archive, name, files[name]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName returns the entry name, decoded with cp when the archive did
// not mark the name as UTF-8. Without a codepage, or when decoding fails,
// the raw name is returned.
func DecodeName(f *zip.File, cp encoding.Encoding) string {
	if cp == nil || !f.NonUTF8 {
		return f.Name
	}
	decoded, err := cp.NewDecoder().String(f.Name)
	if err != nil {
		return f.Name
	}
	return decoded
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

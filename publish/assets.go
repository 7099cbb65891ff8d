package publish

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"

	"weft/archive"
	"weft/doc"
)

// zipAssets resolves image references against sibling entries of a document
// inside a zip archive. docEntry is the decoded name of the document entry;
// references are taken relative to its directory, mirroring what
// doc.DirAssets does on disk. The archive is reopened per reference - image
// lookups are rare enough that holding the reader open is not worth tying
// the opener to the walk lifetime.
func zipAssets(fname, docEntry string, cp encoding.Encoding) doc.AssetOpener {
	dir := path.Dir(docEntry)
	return func(ref string) ([]byte, error) {
		clean := path.Clean(strings.ReplaceAll(ref, `\`, "/"))
		if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return nil, fmt.Errorf("unsafe image reference %q", ref)
		}
		name := path.Join(dir, clean)

		r, err := zip.OpenReader(fname)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		for _, f := range r.File {
			if archive.DecodeName(f, cp) != name {
				continue
			}
			return readArchiveFile(f)
		}
		return nil, fmt.Errorf("no entry %q in %s", name, filepath.Base(fname))
	}
}

func readArchiveFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

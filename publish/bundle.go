package publish

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	fixzip "github.com/hidez8891/zip"

	"weft/misc"
)

// bundle collects rendered pages into a single zip archive instead of a
// destination tree. Pages are staged in a temporary archive and the final
// file is rewritten without data descriptors on close, so primitive
// consumers (static site uploaders, embedded unzippers) can stream it.
type bundle struct {
	path  string
	tmp   *os.File
	zw    *zip.Writer
	names map[string]bool
}

// createBundle prepares the staging archive and verifies the destination is
// writable under the overwrite policy before any rendering starts.
func createBundle(path string, overwrite bool) (*bundle, error) {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return nil, fmt.Errorf("bundle file already exists: %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create bundle directory: %w", err)
	}

	tmp, err := os.CreateTemp("", misc.GetAppName()+"-bundle-*.zip")
	if err != nil {
		return nil, fmt.Errorf("unable to create staging archive: %w", err)
	}

	return &bundle{
		path:  path,
		tmp:   tmp,
		zw:    zip.NewWriter(tmp),
		names: make(map[string]bool),
	}, nil
}

func (b *bundle) contains(name string) bool {
	return b.names[name]
}

// add stores one page under a slash-separated archive name.
func (b *bundle) add(name string, data []byte) error {
	if b.names[name] {
		return fmt.Errorf("bundle entry already exists: %s", name)
	}
	w, err := b.zw.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create bundle entry (%s): %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("unable to write bundle entry (%s): %w", name, err)
	}
	b.names[name] = true
	return nil
}

// close finalizes the destination archive. An empty bundle is discarded
// rather than written - a fully failed run should not clobber previous
// output.
func (b *bundle) close() error {
	defer os.Remove(b.tmp.Name())

	// make sure buffers are flushed before continuing
	if err := b.zw.Close(); err != nil {
		b.tmp.Close()
		return fmt.Errorf("unable to close staging archive: %w", err)
	}
	if err := b.tmp.Close(); err != nil {
		return fmt.Errorf("unable to finalize staging archive: %w", err)
	}

	if len(b.names) == 0 {
		return nil
	}

	if _, err := os.Stat(b.path); err == nil {
		if err := os.Remove(b.path); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return copyZipWithoutDataDescriptors(b.tmp.Name(), b.path)
}

func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

// Package dumputil provides shared output helpers for the weft debug tools.
// It turns rendered pages into inspection text: DOM trees, extracted
// stylesheets and file placement under the common <stem><suffix> naming.
package dumputil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Page is one rendered document under inspection, either a file from disk or
// an entry pulled out of a result bundle.
type Page struct {
	Name string
	Data []byte
}

// WriteOutput writes data to <stem><suffix> in either the input file's directory or outDir.
func WriteOutput(inPath, outDir, suffix string, data []byte, overwrite bool) error {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(inPath)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, stem+suffix)

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}

// pagedump inspects rendered weft pages. It prints DOM trees and extracted
// stylesheets for a single page or for every page inside a result bundle,
// and can run the embedded CSS through the stylesheet checker.
//
// Input is either a .html file or a zip archive; archives are recognized by
// content, so renamed bundles work too.
package main

import (
	"archive/zip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"weft/archive"
	"weft/cmd/debug/internal/dumputil"
	"weft/csscheck"
)

func main() {
	all := flag.Bool("all", false, "enable all dump flags (-tree, -styles, -check)")
	tree := flag.Bool("tree", false, "dump DOM trees into <file>-tree.txt")
	styles := flag.Bool("styles", false, "dump embedded stylesheets into <file>-styles.txt")
	check := flag.Bool("check", false, "verify embedded stylesheets with the CSS checker")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: pagedump [-all] [-tree] [-styles] [-check] [-overwrite] <file.html|bundle.zip> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects rendered pages. Bundles are processed page by page.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *all {
		*tree = true
		*styles = true
		*check = true
	}
	if !*tree && !*styles && !*check {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := ""
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	pages, err := loadPages(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", inPath, err)
		os.Exit(1)
	}
	if len(pages) == 0 {
		fmt.Fprintf(os.Stderr, "no pages found in %s\n", inPath)
		os.Exit(1)
	}

	if *tree {
		dump, err := dumputil.DumpTree(pages)
		if err == nil {
			err = dumputil.WriteOutput(inPath, outDir, "-tree.txt", dump, *overwrite)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "tree: %v\n", err)
			os.Exit(1)
		}
	}

	if *styles {
		dump, err := dumputil.DumpStyles(pages)
		if err == nil {
			err = dumputil.WriteOutput(inPath, outDir, "-styles.txt", dump, *overwrite)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "styles: %v\n", err)
			os.Exit(1)
		}
	}

	if *check {
		if err := checkPages(pages); err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadPages reads the input as a single page or as a bundle of pages.
func loadPages(fname string) ([]dumputil.Page, error) {
	bundle, err := isZipFile(fname)
	if err != nil {
		return nil, err
	}

	if !bundle {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		return []dumputil.Page{{Name: filepath.Base(fname), Data: data}}, nil
	}

	var pages []dumputil.Page
	err = archive.Walk(fname, "", nil, func(_, name string, f *zip.File) error {
		if !strings.EqualFold(path.Ext(name), ".html") {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		pages = append(pages, dumputil.Page{Name: name, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func isZipFile(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, 262)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(buf[:n], "zip"), nil
}

func checkPages(pages []dumputil.Page) error {
	checker := csscheck.NewChecker(nil)
	for _, page := range pages {
		sheets, err := dumputil.CollectSheets(page.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", page.Name, err)
		}
		var rules, decls int
		for _, sheet := range sheets {
			if sheet.Encoded {
				// weft-rules payloads are not CSS
				continue
			}
			stats, err := checker.CheckString(sheet.Text, page.Name)
			if err != nil {
				return err
			}
			rules += stats.Rules
			decls += stats.Declarations
		}
		fmt.Printf("%s: %d stylesheet(s), %d rule(s), %d declaration(s)\n", page.Name, len(sheets), rules, decls)
	}
	return nil
}

// cachedump inspects weft render cache databases. The cache is a plain
// SQLite file with one row per rendered page, keyed by content hash.
// cachedump lists what is stored and can extract every cached page into a
// zip archive for diffing against fresh renders.
package main

import (
	"archive/zip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func main() {
	list := flag.Bool("list", false, "list cached pages (hash, size, creation time)")
	extract := flag.Bool("extract", false, "extract cached pages into <file>-pages.zip")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cachedump [-list] [-extract] [-overwrite] <render-cache.db> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects weft render cache databases. Without flags the content is listed.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if !*list && !*extract {
		*list = true
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := ""
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	conn, err := sqlite.OpenConn(inPath, sqlite.OpenReadOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", inPath, err)
		os.Exit(1)
	}
	defer conn.Close()

	if *list {
		if err := listPages(conn); err != nil {
			fmt.Fprintf(os.Stderr, "list: %v\n", err)
			os.Exit(1)
		}
	}

	if *extract {
		if err := extractPages(conn, inPath, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "extract: %v\n", err)
			os.Exit(1)
		}
	}
}

func listPages(conn *sqlite.Conn) error {
	count := 0
	var total int64
	err := sqlitex.Execute(conn, `SELECT hash, length(html), created FROM pages ORDER BY created`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			size := stmt.ColumnInt64(1)
			fmt.Printf("%s  %8d  %s\n",
				stmt.ColumnText(0), size, time.Unix(stmt.ColumnInt64(2), 0).Format(time.RFC3339))
			count++
			total += size
			return nil
		},
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d page(s), %d byte(s)\n", count, total)
	return nil
}

func extractPages(conn *sqlite.Conn, inPath, outDir string, overwrite bool) (retErr error) {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(inPath)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, stem+"-pages.zip")

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
		if err := os.Remove(outPath); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { retErr = errors.Join(retErr, f.Close()) }()

	zw := zip.NewWriter(f)
	defer func() { retErr = errors.Join(retErr, zw.Close()) }()

	written := 0
	err = sqlitex.Execute(conn, `SELECT hash, html FROM pages ORDER BY created`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			data, err := io.ReadAll(stmt.ColumnReader(1))
			if err != nil {
				return err
			}
			w, err := zw.Create(stmt.ColumnText(0) + ".html")
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			written++
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "extract: wrote %d page(s) into %s\n", written, outPath)
	return nil
}

package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"weft/config"
)

// renderCache keeps rendered pages keyed by content hash so unchanged
// documents are served without a rebuild. A single connection is enough,
// rendering is sequential.
type renderCache struct {
	conn *sqlite.Conn
}

func openCache(path string) (*renderCache, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("unable to open render cache: %w", err)
	}
	err = sqlitex.Execute(conn, `CREATE TABLE IF NOT EXISTS pages (
		hash    TEXT PRIMARY KEY,
		html    BLOB NOT NULL,
		created INTEGER NOT NULL
	)`, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare render cache schema: %w", err)
	}
	return &renderCache{conn: conn}, nil
}

func (c *renderCache) get(hash string) ([]byte, bool, error) {
	var html []byte
	found := false
	err := sqlitex.Execute(c.conn, `SELECT html FROM pages WHERE hash = ?`, &sqlitex.ExecOptions{
		Args: []any{hash},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			var err error
			html, err = io.ReadAll(stmt.ColumnReader(0))
			return err
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("unable to read render cache: %w", err)
	}
	return html, found, nil
}

func (c *renderCache) put(hash string, html []byte) error {
	err := sqlitex.Execute(c.conn, `INSERT OR REPLACE INTO pages (hash, html, created) VALUES (?, ?, ?)`, &sqlitex.ExecOptions{
		Args: []any{hash, html, time.Now().Unix()},
	})
	if err != nil {
		return fmt.Errorf("unable to store page in render cache: %w", err)
	}
	return nil
}

func (c *renderCache) close() error {
	return c.conn.Close()
}

// pageHash fingerprints everything that determines rendered output for a
// document: source bytes, image policy, theme defaults and program version.
// Edits to referenced assets alone are not detected - those need the cache
// dropped or the document touched.
func pageHash(raw []byte, cfg *config.DocumentConfig, version string) string {
	h := sha256.New()
	h.Write(raw)
	fmt.Fprintf(h, "|%d|%d|%t|%t|%s|%s|%s",
		cfg.Images.ScaleBound, cfg.Images.JPEGQuality, cfg.Images.RasterizeSVG, cfg.Images.UseBroken,
		cfg.Theme.Hover, cfg.Theme.Mode, version)
	return hex.EncodeToString(h.Sum(nil))
}

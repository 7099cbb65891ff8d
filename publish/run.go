// Package publish renders declarative layout documents into standalone HTML
// pages. It owns everything around the element pipeline: input walking over
// files, directory trees and zip archives, output naming, overwrite policy,
// bundling, render caching and page verification.
package publish

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"weft/archive"
	"weft/doc"
	"weft/misc"
	"weft/state"
)

// Run renders SOURCE (a layout document, a directory tree or a zip archive)
// into DESTINATION. It is the action behind the render command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs = cmd.Bool("nodirs") || env.Cfg.Document.FlattenDirs
	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Document.Overwrite
	env.Check = cmd.Bool("check")
	if env.BundlePath = cmd.String("bundle"); len(env.BundlePath) > 0 {
		if env.BundlePath, err = filepath.Abs(env.BundlePath); err != nil {
			return err
		}
	}

	// Since zip "standard" does not specify file name encoding we may need to
	// force archaic code pages for old archives.
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			name, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully decoding all non UTF-8 file names in archives", zap.String("charset", name))
		}
	}

	r, err := newRenderer(env, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())
	defer func() {
		err = multierr.Append(err, r.close())
	}()

	return r.process(ctx, src, dst)
}

// renderer carries per-run rendering state.
type renderer struct {
	env      *state.LocalEnv
	log      *zap.Logger
	session  string
	cache    *renderCache
	bundle   *bundle
	reported map[string]bool
}

func newRenderer(env *state.LocalEnv, log *zap.Logger) (*renderer, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate session id: %w", err)
	}
	r := &renderer{env: env, log: log, session: id.String(), reported: make(map[string]bool)}

	if env.Cfg.Document.Cache.Enable {
		cache, err := openCache(env.Cfg.Document.Cache.Path)
		if err != nil {
			// the cache is an optimization, a run without one is still correct
			log.Warn("Unable to open render cache, continuing without it", zap.Error(err))
		} else {
			log.Debug("Render cache ready", zap.String("path", env.Cfg.Document.Cache.Path))
			r.cache = cache
		}
	}

	if len(env.BundlePath) > 0 {
		b, err := createBundle(env.BundlePath, env.Overwrite)
		if err != nil {
			if r.cache != nil {
				r.cache.close()
			}
			return nil, err
		}
		r.bundle = b
	}
	return r, nil
}

func (r *renderer) close() error {
	var errs error
	if r.bundle != nil {
		if err := r.bundle.close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to finalize bundle: %w", err))
		} else if r.env.Rpt != nil {
			// an empty bundle is discarded, nothing to report then
			if _, err := os.Stat(r.env.BundlePath); err == nil {
				r.env.Rpt.Store("result-"+filepath.Base(r.env.BundlePath), r.env.BundlePath)
			}
		}
		r.bundle = nil
	}
	if r.cache != nil {
		if err := r.cache.close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to close render cache: %w", err))
		}
		r.cache = nil
	}
	return errs
}

// process dispatches the source path. Directories are walked, archives are
// searched for documents, single files are rendered directly. The loop peels
// path elements off the end so that a path pointing inside an archive
// (pages.zip/chapter1/page.yml) finds the archive on disk.
func (r *renderer) process(ctx context.Context, src, dst string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably a path inside an archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// a directory cannot have a tail, that would be a simple file
				break
			}
			return r.processDir(ctx, head, dst)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected source mode (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to detect source type: %w", err)
		}
		if arc {
			// we need to look inside to see if the rest of the path makes sense
			pattern := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			return r.processArchive(ctx, head, pattern, "", dst)
		}

		if isDocumentFile(head) && len(tail) == 0 {
			return r.renderFile(ctx, head, filepath.Base(head), dst)
		}
		return fmt.Errorf("input was not recognized as a layout document (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir renders every layout document under dir and then every archive,
// each group in natural name order. Per-file failures are collected but do
// not stop the batch.
func (r *renderer) processDir(ctx context.Context, dir, dst string) error {
	var docs, archives []string

	err := filepath.Walk(dir, func(fname string, info os.FileInfo, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			r.log.Warn("Skipping path", zap.String("path", fname), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if isDocumentFile(fname) {
			docs = append(docs, fname)
			return nil
		}
		arc, err := isArchiveFile(fname)
		if err != nil {
			r.log.Warn("Skipping file", zap.String("file", fname), zap.Error(err))
			return nil
		}
		if arc {
			archives = append(archives, fname)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(docs) == 0 && len(archives) == 0 {
		r.log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	sort.Sort(natural.StringSlice(docs))
	sort.Sort(natural.StringSlice(archives))

	var errs error
	for _, fname := range docs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		src := strings.TrimPrefix(strings.TrimPrefix(fname, dir), string(filepath.Separator))
		if err := r.renderFile(ctx, fname, src, dst); err != nil {
			r.log.Error("Unable to process document", zap.String("file", fname), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
		}
	}
	for _, fname := range archives {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		src := strings.TrimPrefix(strings.TrimPrefix(fname, dir), string(filepath.Separator))
		if err := r.processArchive(ctx, fname, "", filepath.Dir(src), dst); err != nil {
			r.log.Error("Unable to process archive", zap.String("file", fname), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
		}
	}
	return errs
}

// processArchive renders every layout document in the archive under the
// pattern prefix. relDir prefixes output paths when the archive itself was
// found by a directory walk.
func (r *renderer) processArchive(ctx context.Context, fname, pattern, relDir, dst string) error {
	var errs error
	err := archive.Walk(fname, pattern, r.env.CodePage, func(arc, name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isDocumentFile(name) {
			return nil
		}
		src := filepath.Join(relDir, filepath.FromSlash(name))
		data, err := readArchiveFile(f)
		if err != nil {
			r.log.Error("Unable to read archive entry", zap.String("archive", arc), zap.String("entry", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			return nil
		}
		if err := r.renderDoc(ctx, data, src, zipAssets(arc, name, r.env.CodePage), dst); err != nil {
			r.log.Error("Unable to process archive entry", zap.String("archive", arc), zap.String("entry", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return nil
	})
	if err != nil {
		return multierr.Append(errs, err)
	}
	return errs
}

func (r *renderer) renderFile(ctx context.Context, fname, src, dst string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}
	return r.renderDoc(ctx, data, src, doc.DirAssets(filepath.Dir(fname)), dst)
}

// renderDoc turns one document source into an emitted page. src is the
// document path relative to the walk root and determines the output
// location under dst.
func (r *renderer) renderDoc(ctx context.Context, data []byte, src string, assets doc.AssetOpener, dst string) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := r.env
	log := r.log

	var outputName string

	log.Info("Rendering", zap.String("from", src))
	defer func(start time.Time) {
		if rec := recover(); rec != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", rec),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("to", outputName),
				zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", rec)
		} else if rerr == nil {
			log.Info("Rendered", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	if env.Rpt != nil {
		// the same relative path may come from both a directory and an
		// archive, the report keeps the first source seen
		if name := "source/" + filepath.ToSlash(src); !r.reported[name] {
			r.reported[name] = true
			env.Rpt.StoreData(name, data)
		}
	}

	d, err := doc.Load(bytes.NewReader(data))
	if err != nil {
		return err
	}

	// the configuration supplies theme defaults for what the document leaves
	// unset
	if d.Theme.Hover == "" {
		d.Theme.Hover = env.Cfg.Document.Theme.Hover
	}
	if d.Theme.Mode == "" {
		d.Theme.Mode = env.Cfg.Document.Theme.Mode
	}

	relName := r.buildOutputName(d, src)

	if r.bundle != nil {
		entry := filepath.ToSlash(relName)
		outputName = env.BundlePath + ":" + entry
		if r.bundle.contains(entry) {
			return fmt.Errorf("bundle entry already exists: %s", entry)
		}
	} else {
		outputName = filepath.Join(dst, relName)
		if _, err := os.Stat(outputName); err == nil {
			if !env.Overwrite {
				return fmt.Errorf("output file already exists: %s", outputName)
			}
			log.Warn("Overwriting existing file", zap.String("file", outputName))
			if err := os.Remove(outputName); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return err
		} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	page, err := r.renderHTML(d, data, assets, src)
	if err != nil {
		return err
	}

	if env.Check {
		if err := verifyPage(log, page, src); err != nil {
			return fmt.Errorf("page verification failed: %w", err)
		}
	}

	if r.bundle != nil {
		if err := r.bundle.add(filepath.ToSlash(relName), page); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(outputName, page, 0644); err != nil {
			return fmt.Errorf("unable to write page: %w", err)
		}
		if env.Rpt != nil {
			env.Rpt.Store("result/"+filepath.ToSlash(relName), outputName)
		}
	}
	return nil
}

// renderHTML produces page bytes for a document, serving unchanged sources
// from the render cache when one is open.
func (r *renderer) renderHTML(d *doc.Document, raw []byte, assets doc.AssetOpener, src string) ([]byte, error) {
	var key string
	if r.cache != nil {
		key = pageHash(raw, &r.env.Cfg.Document, misc.GetVersion())
		if page, ok, err := r.cache.get(key); err != nil {
			r.log.Warn("Render cache lookup failed", zap.Error(err))
		} else if ok {
			r.log.Debug("Serving page from render cache", zap.String("from", src))
			return page, nil
		}
	}

	builder := doc.NewBuilder(assets, doc.ImagePolicy{
		ScaleBound:   r.env.Cfg.Document.Images.ScaleBound,
		JPEGQuality:  r.env.Cfg.Document.Images.JPEGQuality,
		RasterizeSVG: r.env.Cfg.Document.Images.RasterizeSVG,
		UseBroken:    r.env.Cfg.Document.Images.UseBroken,
	}, r.log)

	page, err := builder.Build(d)
	if err != nil {
		return nil, err
	}

	var rendered bytes.Buffer
	if err := page.Render(&rendered); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.put(key, rendered.Bytes()); err != nil {
			r.log.Warn("Render cache store failed", zap.Error(err))
		}
	}
	return rendered.Bytes(), nil
}

package publish

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"weft/config"
	"weft/doc"
)

// outExt: pages are always HTML, the extension is never template-controlled.
const outExt = ".html"

// Values holds the variables available to the output name template.
type Values struct {
	// SourceName is the document file name without directories or extension.
	SourceName string
	// Title and Language come from the document header and may be empty.
	Title    string
	Language string
	// Session identifies the program run.
	Session string
}

// buildOutputName returns the output path for a document relative to the
// destination. src is the document path relative to the walk root; its
// directories are preserved unless flattening was requested. The file name
// comes from the configured template, falling back to the source name when
// the template is empty or its expansion fails. The ".html" extension is
// always appended.
func (r *renderer) buildOutputName(d *doc.Document, src string) string {
	dir := ""
	if !r.env.NoDirs {
		if dir = filepath.Dir(src); dir == "." {
			dir = ""
		}
	}
	defaultFile := r.defaultFileName(src)

	if r.env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(dir, defaultFile)
	}

	expandedName := r.expandNameTemplate(d, src)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dir, defaultFile)
	}

	return r.assemblePathWithSubdirs(dir, expandedName, defaultFile)
}

func (r *renderer) defaultFileName(src string) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if r.env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + outExt
}

func (r *renderer) expandNameTemplate(d *doc.Document, src string) string {
	expandedName, err := expandTemplate(string(config.OutputNameTemplateFieldName), r.env.Cfg.Document.OutputNameTemplate, Values{
		SourceName: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Title:      d.Title,
		Language:   d.Language,
		Session:    r.session,
	})
	if err != nil {
		r.log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into an output path,
// cleaning and transliterating segments as needed.
func (r *renderer) assemblePathWithSubdirs(dir, expandedName, defaultFile string) string {
	pathSegments := splitPathSegments(expandedName)

	if len(pathSegments) == 0 {
		return filepath.Join(dir, defaultFile)
	}

	fileName := r.cleanPathSegment(pathSegments[len(pathSegments)-1]) + outExt
	parts := make([]string, 0, len(pathSegments)+1)
	if dir != "" {
		parts = append(parts, dir)
	}
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		parts = append(parts, r.cleanPathSegment(segment))
	}
	parts = append(parts, fileName)
	return filepath.Join(parts...)
}

func splitPathSegments(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		if head = strings.TrimSuffix(head, string(os.PathSeparator)); head == "" {
			break
		}
	}

	return segments
}

func (r *renderer) cleanPathSegment(segment string) string {
	if r.env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// expandTemplate executes a single configuration template field with sprig
// functions available.
func expandTemplate(name, field string, values Values) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	var expanded bytes.Buffer
	if err := tmpl.Execute(&expanded, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return expanded.String(), nil
}

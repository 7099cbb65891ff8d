package publish

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"weft/config"
	"weft/doc"
	"weft/state"
)

func namingRenderer(template string, transliterate, nodirs bool) *renderer {
	cfg := &config.Config{}
	cfg.Document.OutputNameTemplate = template
	cfg.Document.FileNameTransliterate = transliterate
	return &renderer{
		env:     &state.LocalEnv{Cfg: cfg, NoDirs: nodirs, Log: zap.NewNop()},
		log:     zap.NewNop(),
		session: "0190536d-8452-7000-8000-0123456789ab",
	}
}

func TestBuildOutputName(t *testing.T) {
	d := &doc.Document{Title: "Getting Started", Language: "en"}

	tests := []struct {
		name          string
		template      string
		transliterate bool
		nodirs        bool
		src           string
		want          string
	}{
		{"default template", "{{ .SourceName }}", false, false, filepath.Join("guides", "intro.yml"), filepath.Join("guides", "intro.html")},
		{"empty template falls back", "", false, false, filepath.Join("guides", "intro.yml"), filepath.Join("guides", "intro.html")},
		{"flatten directories", "{{ .SourceName }}", false, true, filepath.Join("guides", "intro.yml"), "intro.html"},
		{"title", "{{ .Title }}", false, false, "intro.yml", "Getting Started.html"},
		{"title transliterated", "{{ .Title }}", true, false, "intro.yml", "getting-started.html"},
		{"subdirectories", "{{ .Language }}/{{ .SourceName }}", false, false, "intro.yml", filepath.Join("en", "intro.html")},
		{"subdirectories under source dir", "{{ .Language }}/{{ .SourceName }}", false, false, filepath.Join("guides", "intro.yml"), filepath.Join("guides", "en", "intro.html")},
		{"sprig function", "{{ .SourceName | upper }}", false, false, "intro.yml", "INTRO.html"},
		{"bad template falls back", "{{ .Missing }}", false, false, "intro.yml", "intro.html"},
		{"empty expansion falls back", "{{ if false }}x{{ end }}", false, false, "intro.yml", "intro.html"},
		{"absolute template becomes relative", "/{{ .SourceName }}", false, false, "intro.yml", "intro.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := namingRenderer(tt.template, tt.transliterate, tt.nodirs)
			if got := r.buildOutputName(d, tt.src); got != tt.want {
				t.Errorf("buildOutputName() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("session", func(t *testing.T) {
		r := namingRenderer("{{ .Session }}", false, false)
		want := r.session + ".html"
		if got := r.buildOutputName(d, "intro.yml"); got != want {
			t.Errorf("buildOutputName() = %q, want %q", got, want)
		}
	})
}

func TestSplitPathSegments(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"name", []string{"name"}},
		{filepath.Join("a", "b", "c"), []string{"a", "b", "c"}},
		{sep + filepath.Join("abs", "name"), []string{"abs", "name"}},
		{filepath.Join("a", "b") + sep, []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := splitPathSegments(tt.path)
		if len(got) != len(tt.want) {
			t.Errorf("splitPathSegments(%q) = %v, want %v", tt.path, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("splitPathSegments(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
			}
		}
	}
}

func TestExpandTemplate(t *testing.T) {
	got, err := expandTemplate("test", `{{ .Title | lower }}-{{ .Language }}`, Values{Title: "HOME", Language: "en"})
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "home-en" {
		t.Errorf("expandTemplate() = %q, want %q", got, "home-en")
	}

	if _, err := expandTemplate("test", `{{ .Title`, Values{}); err == nil {
		t.Error("Expected error for malformed template")
	}
}

package dumputil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.w == nil {
		t.Error("TreeWriter builder is nil")
	}
}

func TestTreeWriter_String(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}

	tw.w.WriteString("test content")
	if tw.String() != "test content" {
		t.Errorf("String() = %q, want %q", tw.String(), "test content")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			depth:  0,
			format: "test",
			args:   nil,
			want:   "test\n",
		},
		{
			name:   "depth 1",
			depth:  1,
			format: "indented",
			args:   nil,
			want:   "  indented\n",
		},
		{
			name:   "depth 2",
			depth:  2,
			format: "double indent",
			args:   nil,
			want:   "    double indent\n",
		},
		{
			name:   "with formatting",
			depth:  1,
			format: "value: %d",
			args:   []any{42},
			want:   "  value: 42\n",
		},
		{
			name:   "multiple args",
			depth:  0,
			format: "%s = %d",
			args:   []any{"count", 5},
			want:   "count = 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			got := tw.String()
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "no depth empty value",
			depth: 0,
			label: "field",
			value: "",
			want:  "field: \n",
		},
		{
			name:  "no depth with value",
			depth: 0,
			label: "text",
			value: "hello world",
			want:  "text: \"hello world\"\n",
		},
		{
			name:  "depth 1 with value",
			depth: 1,
			label: "content",
			value: "test",
			want:  "  content: \"test\"\n",
		},
		{
			name:  "value with quotes",
			depth: 0,
			label: "quoted",
			value: "he said \"hello\"",
			want:  "quoted: \"he said \\\"hello\\\"\"\n",
		},
		{
			name:  "value with newline",
			depth: 0,
			label: "multiline",
			value: "line1\nline2",
			want:  "multiline: \"line1\\nline2\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			got := tw.String()
			if got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "simple text",
			input: "hello",
			want:  `"hello"`,
		},
		{
			name:  "with quotes",
			input: `say "hi"`,
			want:  `"say \"hi\""`,
		},
		{
			name:  "with newline",
			input: "line1\nline2",
			want:  `"line1\nline2"`,
		},
		{
			name:  "with backslash",
			input: `path\to\file`,
			want:  `"path\\to\\file"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeText(tt.input)
			if got != tt.want {
				t.Errorf("encodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_MultipleOperations(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Root")
	tw.Line(1, "Child 1")
	tw.TextBlock(2, "field", "value")
	tw.Line(1, "Child 2")
	tw.TextBlock(1, "data", "test")

	got := tw.String()
	want := "Root\n  Child 1\n    field: \"value\"\n  Child 2\n  data: \"test\"\n"

	if got != want {
		t.Errorf("Multiple operations:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short text unchanged",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "exactly at the limit",
			input: strings.Repeat("a", snippetLen),
			want:  strings.Repeat("a", snippetLen),
		},
		{
			name:  "over the limit",
			input: strings.Repeat("a", snippetLen+1),
			want:  strings.Repeat("a", snippetLen) + "...",
		},
		{
			name:  "multibyte runes stay whole",
			input: strings.Repeat("ж", snippetLen+1),
			want:  strings.Repeat("ж", snippetLen) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snippet(tt.input)
			if got != tt.want {
				t.Errorf("snippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDumpTree(t *testing.T) {
	page := `<!DOCTYPE html><html lang="en"><head><title>Home</title></head><body><p>hello</p><!-- note --></body></html>`

	out, err := DumpTree([]Page{{Name: "home.html", Data: []byte(page)}})
	if err != nil {
		t.Fatalf("DumpTree() returned error: %v", err)
	}

	result := string(out)
	for _, want := range []string{
		"=== home.html ===\n",
		"doctype html\n",
		"<html> lang=\"en\"\n",
		"  <head>\n",
		"    <title>\n",
		"      text: \"Home\"\n",
		"  <body>\n",
		"    <p>\n",
		"      text: \"hello\"\n",
		"    comment: \" note \"\n",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("DumpTree() output missing %q:\n%s", want, result)
		}
	}
}

func TestDumpTree_MultiplePages(t *testing.T) {
	pages := []Page{
		{Name: "a.html", Data: []byte("<html><body>a</body></html>")},
		{Name: "b.html", Data: []byte("<html><body>b</body></html>")},
	}

	out, err := DumpTree(pages)
	if err != nil {
		t.Fatalf("DumpTree() returned error: %v", err)
	}

	result := string(out)
	if !strings.HasPrefix(result, "=== a.html ===\n") {
		t.Errorf("DumpTree() does not start with the first page header:\n%s", result)
	}
	if !strings.Contains(result, "\n\n=== b.html ===\n") {
		t.Errorf("DumpTree() pages are not separated by a blank line:\n%s", result)
	}
}

func TestCollectSheets(t *testing.T) {
	page := `<html><head><style>.a{color:red}</style><style></style></head><body>` +
		`<weft-static-rules rules=".s .b{padding:4px}"></weft-static-rules>` +
		`<weft-rules rules="row-c{c}"></weft-rules>` +
		`<weft-rules rules=""></weft-rules>` +
		`</body></html>`

	sheets, err := CollectSheets([]byte(page))
	if err != nil {
		t.Fatalf("CollectSheets() returned error: %v", err)
	}

	want := []Sheet{
		{Label: "style", Text: ".a{color:red}"},
		{Label: "weft-static-rules", Text: ".s .b{padding:4px}"},
		{Label: "weft-rules", Text: "row-c{c}", Encoded: true},
	}
	if len(sheets) != len(want) {
		t.Fatalf("CollectSheets() returned %d sheets, want %d: %+v", len(sheets), len(want), sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d = %+v, want %+v", i, sheets[i], want[i])
		}
	}
}

func TestDumpStyles(t *testing.T) {
	page := `<html><head><style>.a{color:red}</style></head><body>` +
		`<weft-rules rules="row-c{c}"></weft-rules>` +
		`</body></html>`

	out, err := DumpStyles([]Page{{Name: "home.html", Data: []byte(page)}})
	if err != nil {
		t.Fatalf("DumpStyles() returned error: %v", err)
	}

	result := string(out)
	for _, want := range []string{
		"=== home.html: 2 stylesheet(s) ===\n",
		"--- style ---\n.a{color:red}\n",
		"--- weft-rules ---\nrow-c{c}\n",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("DumpStyles() output missing %q:\n%s", want, result)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "home.html")
	outPath := filepath.Join(dir, "home-tree.txt")

	if err := WriteOutput(inPath, "", "-tree.txt", []byte("first"), false); err != nil {
		t.Fatalf("WriteOutput() returned error: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("output content = %q, want %q", data, "first")
	}

	err = WriteOutput(inPath, "", "-tree.txt", []byte("second"), false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("WriteOutput() without overwrite = %v, want existing file error", err)
	}

	if err := WriteOutput(inPath, "", "-tree.txt", []byte("second"), true); err != nil {
		t.Fatalf("WriteOutput() with overwrite returned error: %v", err)
	}
	data, err = os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("output content after overwrite = %q, want %q", data, "second")
	}
}

func TestWriteOutput_OutDir(t *testing.T) {
	inPath := filepath.Join(t.TempDir(), "home.html")
	outDir := t.TempDir()

	if err := WriteOutput(inPath, outDir, "-styles.txt", []byte("sheets"), false); err != nil {
		t.Fatalf("WriteOutput() returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "home-styles.txt"))
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if string(data) != "sheets" {
		t.Errorf("output content = %q, want %q", data, "sheets")
	}
}

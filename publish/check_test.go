package publish

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"weft/doc"
)

func renderSample(t *testing.T, text string) []byte {
	t.Helper()
	d, err := doc.Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	page, err := doc.NewBuilder(nil, doc.ImagePolicy{}, nil).Build(d)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.Bytes()
}

func TestVerifyPage(t *testing.T) {
	if err := verifyPage(zap.NewNop(), renderSample(t, sampleDoc), "home.yml"); err != nil {
		t.Errorf("verifyPage() error = %v", err)
	}
}

func TestVerifyPage_VirtualCSS(t *testing.T) {
	const text = `title: Virtual
theme:
  mode: virtual-css
body:
  kind: text
  value: hi
`
	if err := verifyPage(zap.NewNop(), renderSample(t, text), "virtual.yml"); err != nil {
		t.Errorf("verifyPage() error = %v", err)
	}
}

func TestVerifyPage_BadStyle(t *testing.T) {
	// a selector with no declaration block does not parse as CSS
	const page = `<!DOCTYPE html>
<html><head><title>x</title><style>.broken</style></head><body></body></html>`
	err := verifyPage(zap.NewNop(), []byte(page), "bad.html")
	if err == nil {
		t.Fatal("Expected error for malformed embedded stylesheet")
	}
	if !strings.Contains(err.Error(), "bad.html") {
		t.Errorf("Error does not name the source: %v", err)
	}
}

func TestVerifyPage_BadStaticRules(t *testing.T) {
	const page = `<!DOCTYPE html>
<html><head><title>x</title></head><body><weft-static-rules rules=".broken"></weft-static-rules></body></html>`
	if err := verifyPage(zap.NewNop(), []byte(page), "bad.html"); err == nil {
		t.Fatal("Expected error for malformed virtual stylesheet")
	}
}

func TestVerifyPage_IgnoresEncodedRules(t *testing.T) {
	// weft-rules carries an encoded property map, not CSS, and must not be
	// fed to the checker
	const page = `<!DOCTYPE html>
<html><head><title>x</title></head><body><weft-rules rules="spacing-8-8{8;8}"></weft-rules></body></html>`
	if err := verifyPage(zap.NewNop(), []byte(page), "virtual.html"); err != nil {
		t.Errorf("verifyPage() flagged non-CSS payload: %v", err)
	}
}

//go:build !windows

package config

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "page.html", "page.html"},
		{"leading dots", "..page.html", "page.html"},
		{"path separators", "a/b", "ab"},
		{"path list separators", "a:b", "ab"},
		{"only bad runes", "...", "_bad_file_name_"},
		{"empty", "", "_bad_file_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFileName(tt.in); got != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package completion

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateBash(t *testing.T) {
	tests := []struct {
		name     string
		exe      string
		contains []string
	}{
		{
			name:     "plain name",
			exe:      "md2gdocs",
			contains: []string{"_completion_md2gdocs() {", "complete -F _completion_md2gdocs md2gdocs", "GO_FLAGS_COMPLETION=1"},
		},
		{
			name:     "path and dashes",
			exe:      "/usr/local/bin/md2gdocs-dev",
			contains: []string{"_completion_md2gdocs_dev() {", "complete -F _completion_md2gdocs_dev md2gdocs-dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateBash(&buf, tt.exe); err != nil {
				t.Fatalf("GenerateBash() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("GenerateBash() output does not contain %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

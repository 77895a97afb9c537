package gdocs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeStyles(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Failed to write styles: %v", err)
	}
	return path
}

func TestLoadConfig_Default(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	for _, name := range knownStyles {
		if style := config.GetStyle(name); style.Font == "" {
			t.Errorf("style %s has no font", name)
		}
	}

	code := config.GetStyle(StyleCodeBlock)
	if code.Font != "Courier New" {
		t.Errorf("code_block font = %q, want Courier New", code.Font)
	}
	if code.Background == nil {
		t.Fatal("code_block has no background")
	}
	if diff := cmp.Diff(RGB{245.0 / 255, 245.0 / 255, 245.0 / 255}, *code.Background); diff != "" {
		t.Errorf("code_block background mismatch (-want +got):\n%s", diff)
	}

	if list := config.GetStyle(StyleList); list.Indent != 36 {
		t.Errorf("list indent = %v, want 36", list.Indent)
	}
	if len(config.ImageHosts()) == 0 {
		t.Error("default config has no image hosts")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeStyles(t, `defaults:
  font: "Roboto"
  font_size: 12
styles:
  code:
    font: "Roboto Mono"
  blockquote:
    border_color: "#FF0000"
    indent: 18
image_hosts:
  - " Example.ORG "
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	type checkFunc func(t *testing.T, config *PreparedConfig)
	checks := []checkFunc{
		func(t *testing.T, config *PreparedConfig) {
			if got := config.GetStyle(StyleCode).Font; got != "Roboto Mono" {
				t.Errorf("code font = %q, want Roboto Mono", got)
			}
		},
		func(t *testing.T, config *PreparedConfig) {
			// Styles not in the file inherit the defaults.
			got := config.GetStyle(StyleList)
			if got.Font != "Roboto" || got.FontSize != 12 || got.Indent != 0 {
				t.Errorf("list style = %+v, want defaults only", got)
			}
		},
		func(t *testing.T, config *PreparedConfig) {
			got := config.GetStyle(StyleBlockquote)
			if got.BorderColor == nil || *got.BorderColor != (RGB{1, 0, 0}) {
				t.Errorf("blockquote border = %v, want red", got.BorderColor)
			}
			if got.Indent != 18 {
				t.Errorf("blockquote indent = %v, want 18", got.Indent)
			}
		},
		func(t *testing.T, config *PreparedConfig) {
			if diff := cmp.Diff([]string{"example.org"}, config.ImageHosts()); diff != "" {
				t.Errorf("image hosts mismatch (-want +got):\n%s", diff)
			}
		},
	}
	for _, check := range checks {
		check(t, config)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing font",
			yaml:    "defaults:\n  font_size: 11\n",
			wantErr: "defaults.font is required",
		},
		{
			name:    "zero font size",
			yaml:    "defaults:\n  font: Arial\n  font_size: 0\n",
			wantErr: "font_size must be positive",
		},
		{
			name:    "bad color",
			yaml:    "defaults:\n  font: Arial\n  font_size: 11\nstyles:\n  code:\n    background: \"#12345\"\n",
			wantErr: "invalid background in style code",
		},
		{
			name:    "negative indent",
			yaml:    "defaults:\n  font: Arial\n  font_size: 11\nstyles:\n  list:\n    indent: -1\n",
			wantErr: "indent in style list cannot be negative",
		},
		{
			name:    "empty image host",
			yaml:    "defaults:\n  font: Arial\n  font_size: 11\nimage_hosts:\n  - \"\"\n",
			wantErr: "image_hosts[0] is empty",
		},
		{
			name:    "not yaml",
			yaml:    "defaults: [",
			wantErr: "failed to parse YAML styles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeStyles(t, tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read styles file") {
			t.Errorf("LoadConfig() error = %v", err)
		}
	})
}

func TestWebColorToRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#000000", want: RGB{0, 0, 0}},
		{in: "#FFFFFF", want: RGB{1, 1, 1}},
		{in: "ff0000", want: RGB{1, 0, 0}},
		{in: "#GG0000", wantErr: true},
		{in: "#FFF", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := webColorToRGB(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("webColorToRGB(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("webColorToRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	if got := MustLoadDefaultConfig().GetStyle("nonexistent"); got != (PreparedStyle{}) {
		t.Errorf("GetStyle(unknown) = %+v, want zero style", got)
	}
}

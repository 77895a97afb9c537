package gdocs

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	docs "google.golang.org/api/docs/v1"
	"gopkg.in/yaml.v3"
)

//go:embed config/default_styles.yaml
var defaultStylesYAML []byte

// Style keys looked up by the block converters.
const (
	StyleCode           = "code"
	StyleCodeBlock      = "code_block"
	StyleBlockquote     = "blockquote"
	StyleList           = "list"
	StyleHorizontalRule = "horizontal_rule"
	StyleTableHeader    = "table_header"
	StyleImageFallback  = "image_fallback"
	StyleImageSource    = "image_source"
)

var knownStyles = []string{
	StyleCode, StyleCodeBlock, StyleBlockquote, StyleList,
	StyleHorizontalRule, StyleTableHeader, StyleImageFallback, StyleImageSource,
}

// StylesConfig holds the raw YAML configuration (for parsing only)
type StylesConfig struct {
	Defaults   StyleConfig            `yaml:"defaults"`
	Styles     map[string]StyleConfig `yaml:"styles"`
	ImageHosts []string               `yaml:"image_hosts"`
}

// StyleConfig defines raw styling properties from YAML (for parsing only)
type StyleConfig struct {
	Font        *string  `yaml:"font,omitempty"`
	FontSize    *float64 `yaml:"font_size,omitempty"`
	Background  *string  `yaml:"background,omitempty"`   // Web color format (#RRGGBB)
	BorderColor *string  `yaml:"border_color,omitempty"` // Web color format (#RRGGBB)
	BorderWidth *float64 `yaml:"border_width,omitempty"`
	Padding     *float64 `yaml:"padding,omitempty"`
	Indent      *float64 `yaml:"indent,omitempty"`
	SpaceAbove  *float64 `yaml:"space_above,omitempty"`
	SpaceBelow  *float64 `yaml:"space_below,omitempty"`
}

// PreparedConfig holds pre-computed styles ready for request generation.
// All styles have defaults merged and colors converted to Docs RGB.
// It is read-only after LoadConfig and safe to share between conversions.
type PreparedConfig struct {
	styles     map[string]PreparedStyle
	imageHosts []string
}

// PreparedStyle defines a fully resolved style. Zero values mean "not set".
type PreparedStyle struct {
	Font        string
	FontSize    float64
	Background  *RGB
	BorderColor *RGB
	BorderWidth float64
	Padding     float64
	Indent      float64
	SpaceAbove  float64
	SpaceBelow  float64
}

// RGB is a color with components in the 0..1 range used by the Docs API.
type RGB [3]float64

func (c *RGB) optionalColor() *docs.OptionalColor {
	if c == nil {
		return nil
	}
	return &docs.OptionalColor{
		Color: &docs.Color{
			RgbColor: &docs.RgbColor{Red: c[0], Green: c[1], Blue: c[2]},
		},
	}
}

// LoadConfig loads style configuration from a file path.
// If path is empty, uses the embedded default configuration.
func LoadConfig(path string) (*PreparedConfig, error) {
	var data []byte
	var err error

	if path == "" {
		data = defaultStylesYAML
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
		}
	}

	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML styles: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid styles: %w", err)
	}

	prepared, err := prepareConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare styles: %w", err)
	}

	return prepared, nil
}

// MustLoadDefaultConfig returns the embedded default styles.
func MustLoadDefaultConfig() *PreparedConfig {
	config, err := LoadConfig("")
	if err != nil {
		panic(err)
	}
	return config
}

func validateConfig(config *StylesConfig) error {
	if config.Defaults.Font == nil || *config.Defaults.Font == "" {
		return fmt.Errorf("defaults.font is required")
	}
	if config.Defaults.FontSize == nil || *config.Defaults.FontSize <= 0 {
		return fmt.Errorf("defaults.font_size must be positive")
	}
	if err := validateStyle("defaults", config.Defaults); err != nil {
		return err
	}

	for name, style := range config.Styles {
		if err := validateStyle(name, style); err != nil {
			return err
		}
	}

	for i, host := range config.ImageHosts {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf("image_hosts[%d] is empty", i)
		}
	}

	return nil
}

func validateStyle(name string, style StyleConfig) error {
	for key, color := range map[string]*string{"background": style.Background, "border_color": style.BorderColor} {
		if color != nil && *color != "" {
			if _, err := webColorToRGB(*color); err != nil {
				return fmt.Errorf("invalid %s in style %s: %w", key, name, err)
			}
		}
	}
	numbers := map[string]*float64{
		"font_size":    style.FontSize,
		"border_width": style.BorderWidth,
		"padding":      style.Padding,
		"indent":       style.Indent,
		"space_above":  style.SpaceAbove,
		"space_below":  style.SpaceBelow,
	}
	for key, v := range numbers {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s in style %s cannot be negative", key, name)
		}
	}
	return nil
}

// prepareConfig merges defaults into each style and converts all colors
func prepareConfig(config *StylesConfig) (*PreparedConfig, error) {
	base, err := mergeStyle(PreparedStyle{}, config.Defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare defaults: %w", err)
	}

	styles := make(map[string]PreparedStyle, len(knownStyles))
	for _, name := range knownStyles {
		styles[name] = base
	}
	for name, raw := range config.Styles {
		merged, err := mergeStyle(base, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare style %s: %w", name, err)
		}
		styles[name] = merged
	}

	hosts := make([]string, 0, len(config.ImageHosts))
	for _, host := range config.ImageHosts {
		hosts = append(hosts, strings.ToLower(strings.TrimSpace(host)))
	}

	return &PreparedConfig{styles: styles, imageHosts: hosts}, nil
}

func mergeStyle(base PreparedStyle, raw StyleConfig) (PreparedStyle, error) {
	merged := base
	if raw.Font != nil {
		merged.Font = *raw.Font
	}
	if raw.FontSize != nil {
		merged.FontSize = *raw.FontSize
	}
	if raw.Background != nil && *raw.Background != "" {
		rgb, err := webColorToRGB(*raw.Background)
		if err != nil {
			return PreparedStyle{}, err
		}
		merged.Background = &rgb
	}
	if raw.BorderColor != nil && *raw.BorderColor != "" {
		rgb, err := webColorToRGB(*raw.BorderColor)
		if err != nil {
			return PreparedStyle{}, err
		}
		merged.BorderColor = &rgb
	}
	if raw.BorderWidth != nil {
		merged.BorderWidth = *raw.BorderWidth
	}
	if raw.Padding != nil {
		merged.Padding = *raw.Padding
	}
	if raw.Indent != nil {
		merged.Indent = *raw.Indent
	}
	if raw.SpaceAbove != nil {
		merged.SpaceAbove = *raw.SpaceAbove
	}
	if raw.SpaceBelow != nil {
		merged.SpaceBelow = *raw.SpaceBelow
	}
	return merged, nil
}

// webColorToRGB converts web color format (#RRGGBB) to Docs RGB floats
func webColorToRGB(webColor string) (RGB, error) {
	color := strings.TrimPrefix(webColor, "#")

	if len(color) != 6 {
		return RGB{}, fmt.Errorf("invalid color format %s: expected #RRGGBB", webColor)
	}

	var rgb RGB
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(color[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid %s component in %s: %w", name, webColor, err)
		}
		rgb[i] = float64(v) / 255
	}
	return rgb, nil
}

// GetStyle returns the prepared style for a given element type.
// Returns a zero-value style if the type doesn't exist (shouldn't happen with known styles).
func (c *PreparedConfig) GetStyle(elementType string) PreparedStyle {
	style, ok := c.styles[elementType]
	if !ok {
		log.Printf("WARNING: requested unknown style type %q, returning empty style\n", elementType)
		return PreparedStyle{}
	}
	return style
}

// ImageHosts returns the hosts accepted as image sources without an image extension.
func (c *PreparedConfig) ImageHosts() []string {
	return c.imageHosts
}

package gdocs

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	docs "google.golang.org/api/docs/v1"
)

const (
	maxImageURLLength = 2000

	// pxToPt converts CSS pixels to points.
	pxToPt = 0.75

	imageGlyph      = "📷"
	imageSourceText = "Source: "
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg"}

// imageRef is an image found in Markdown or in a raw HTML <img> tag.
// Width and Height keep the attribute text, e.g. "300px" or "200".
type imageRef struct {
	URL    string
	Alt    string
	Width  string
	Height string
}

// ValidateImageURL reports why raw cannot be used as an inline image source.
// The URL must be http or https, shorter than 2000 characters, and either end
// in a known image extension or live on one of hosts (subdomains included).
func ValidateImageURL(raw string, hosts []string) error {
	if n := utf8.RuneCountInString(raw); n >= maxImageURLLength {
		return fmt.Errorf("image URL is %d characters, limit is %d", n, maxImageURLLength)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported image URL scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("image URL %q has no host", raw)
	}

	if slices.Contains(imageExtensions, strings.ToLower(path.Ext(u.Path))) {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return nil
		}
	}
	return fmt.Errorf("image URL %q has no recognized image extension or host", raw)
}

// parseDimension converts an image size attribute to points. Values with a
// "px" suffix are scaled by 0.75; anything else is taken as points.
func parseDimension(v string) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return 0, false
	}
	scale := 1.0
	if strings.HasSuffix(v, "px") {
		v = strings.TrimSuffix(v, "px")
		scale = pxToPt
	} else {
		v = strings.TrimSuffix(v, "pt")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f * scale, true
}

func (img imageRef) objectSize() *docs.Size {
	var size docs.Size
	if w, ok := parseDimension(img.Width); ok {
		size.Width = points(w)
	}
	if h, ok := parseDimension(img.Height); ok {
		size.Height = points(h)
	}
	if size.Width == nil && size.Height == nil {
		return nil
	}
	return &size
}

// convertImage places an inline image on its own line: a padding newline,
// the image one index past it, and a trailing newline. Images failing
// validation become a styled text placeholder instead.
func (c *Converter) convertImage(img imageRef, index int) ([]*docs.Request, int) {
	if err := ValidateImageURL(img.URL, c.styles.ImageHosts()); err != nil {
		return c.imageFallback(img, index)
	}

	reqs := []*docs.Request{
		insertText(index, "\n"),
		insertInlineImage(index+1, img.URL, img.objectSize()),
		insertText(index+2, "\n"),
	}
	return reqs, nextIndex(reqs, index)
}

// imageFallback renders a rejected image as a bold, shaded caption line
// followed by a small italic source line.
func (c *Converter) imageFallback(img imageRef, index int) ([]*docs.Request, int) {
	alt := strings.TrimSpace(img.Alt)
	if alt == "" {
		alt = "Image"
	}
	caption := imageGlyph + " " + alt
	source := imageSourceText + img.URL

	reqs := []*docs.Request{insertText(index, caption+"\n"+source+"\n")}

	captionStyle := &docs.TextStyle{Bold: true}
	captionFields := "bold"
	if bg := c.styles.GetStyle(StyleImageFallback).Background; bg != nil {
		captionStyle.BackgroundColor = bg.optionalColor()
		captionFields += ",backgroundColor"
	}
	captionEnd := index + textLen(caption)
	reqs = append(reqs, updateTextStyle(index, captionEnd, captionStyle, captionFields))

	sourceStyle := &docs.TextStyle{Italic: true}
	sourceFields := "italic"
	if size := c.styles.GetStyle(StyleImageSource).FontSize; size > 0 {
		sourceStyle.FontSize = points(size)
		sourceFields += ",fontSize"
	}
	sourceStart := captionEnd + 1
	reqs = append(reqs, updateTextStyle(sourceStart, sourceStart+textLen(source), sourceStyle, sourceFields))

	return reqs, nextIndex(reqs, index)
}

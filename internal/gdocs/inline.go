package gdocs

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	docs "google.golang.org/api/docs/v1"
)

// FormatKind identifies the inline markup a FormatRange applies.
type FormatKind string

const (
	FormatBold          FormatKind = "bold"
	FormatItalic        FormatKind = "italic"
	FormatCode          FormatKind = "code"
	FormatLink          FormatKind = "link"
	FormatStrikethrough FormatKind = "strikethrough"
)

// FormatRange is a half-open span of run-relative offsets carrying one kind
// of inline markup. Offsets count UTF-16 code units, the unit document
// indexes are measured in.
type FormatRange struct {
	Start int
	End   int
	Kind  FormatKind
	URL   string
}

// textLen returns the length of s in UTF-16 code units.
func textLen(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

var breakTagPattern = regexp.MustCompile(`(?i)^<br\s*/?>$`)

// Format flattens a sequence of inline nodes into plain text and the
// formatting ranges found in it. Markup nodes produce one range covering the
// text their whole subtree contributed.
func Format(nodes []ast.Node, source []byte) (string, []FormatRange) {
	f := &inlineFormatter{source: source}
	for _, n := range nodes {
		f.walk(n)
	}
	return f.buf.String(), f.ranges
}

// FormatChildren is Format over the inline children of a block node.
func FormatChildren(node ast.Node, source []byte) (string, []FormatRange) {
	return Format(children(node), source)
}

func children(node ast.Node) []ast.Node {
	var nodes []ast.Node
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = append(nodes, c)
	}
	return nodes
}

type inlineFormatter struct {
	source []byte
	buf    strings.Builder
	pos    int
	ranges []FormatRange
}

func (f *inlineFormatter) write(s string) {
	f.buf.WriteString(s)
	f.pos += textLen(s)
}

func (f *inlineFormatter) walk(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		f.write(string(n.Segment.Value(f.source)))
		if n.HardLineBreak() {
			f.write("\n")
		} else if n.SoftLineBreak() {
			f.write(" ")
		}

	case *ast.String:
		f.write(string(n.Value))

	case *ast.Emphasis:
		kind := FormatItalic
		if n.Level >= 2 {
			kind = FormatBold
		}
		f.span(n, kind, "")

	case *extast.Strikethrough:
		f.span(n, FormatStrikethrough, "")

	case *ast.CodeSpan:
		start := f.pos
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				f.write(string(t.Segment.Value(f.source)))
			case *ast.String:
				f.write(string(t.Value))
			}
		}
		f.push(start, FormatCode, "")

	case *ast.Link:
		f.span(n, FormatLink, string(n.Destination))

	case *ast.AutoLink:
		start := f.pos
		f.write(string(n.Label(f.source)))
		url := string(n.URL(f.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		f.push(start, FormatLink, url)

	case *ast.Image:
		// Only paragraphs place images; elsewhere the alt text stands in.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			f.walk(c)
		}

	case *extast.TaskCheckBox:
		// Rendered by the list converter as a glyph prefix.

	case *ast.RawHTML:
		if breakTagPattern.Match(bytes.TrimSpace(rawHTML(n, f.source))) {
			f.write("\n")
		}

	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			f.walk(c)
		}
	}
}

// span walks the children of n and records one range over their text.
func (f *inlineFormatter) span(n ast.Node, kind FormatKind, url string) {
	start := f.pos
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		f.walk(c)
	}
	f.push(start, kind, url)
}

func (f *inlineFormatter) push(start int, kind FormatKind, url string) {
	if f.pos <= start {
		return
	}
	if kind == FormatLink && url == "" {
		return
	}
	f.ranges = append(f.ranges, FormatRange{Start: start, End: f.pos, Kind: kind, URL: url})
}

func rawHTML(n *ast.RawHTML, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}

// shiftRanges returns ranges moved right by offset.
func shiftRanges(ranges []FormatRange, offset int) []FormatRange {
	if len(ranges) == 0 {
		return nil
	}
	shifted := make([]FormatRange, len(ranges))
	for i, r := range ranges {
		r.Start += offset
		r.End += offset
		shifted[i] = r
	}
	return shifted
}

// line is one newline-free slice of a run with the ranges clipped to it.
type line struct {
	Text   string
	Ranges []FormatRange
}

// splitLines splits run text on literal newlines, clipping each range to
// the lines it overlaps and making it relative to that line.
func splitLines(text string, ranges []FormatRange) []line {
	parts := strings.Split(text, "\n")
	lines := make([]line, 0, len(parts))
	lineStart := 0
	for _, part := range parts {
		lineEnd := lineStart + textLen(part)
		var clipped []FormatRange
		for _, r := range ranges {
			if r.End <= lineStart || r.Start >= lineEnd {
				continue
			}
			c := r
			c.Start = max(r.Start, lineStart) - lineStart
			c.End = min(r.End, lineEnd) - lineStart
			clipped = append(clipped, c)
		}
		lines = append(lines, line{Text: part, Ranges: clipped})
		lineStart = lineEnd + 1
	}
	return lines
}

// trimRun removes leading and trailing whitespace from a run, keeping the
// ranges aligned with the remaining text.
func trimRun(text string, ranges []FormatRange) (string, []FormatRange) {
	trimmedLeft := strings.TrimLeft(text, " \t\n")
	lead := textLen(text) - textLen(trimmedLeft)
	trimmed := strings.TrimRight(trimmedLeft, " \t\n")
	n := textLen(trimmed)

	var kept []FormatRange
	for _, r := range ranges {
		r.Start = max(r.Start-lead, 0)
		r.End = min(r.End-lead, n)
		if r.Start < r.End {
			kept = append(kept, r)
		}
	}
	return trimmed, kept
}

// textStyle returns the text style and field mask applying a range kind.
func (c *Converter) textStyle(kind FormatKind, url string) (*docs.TextStyle, string) {
	switch kind {
	case FormatBold:
		return &docs.TextStyle{Bold: true}, "bold"
	case FormatItalic:
		return &docs.TextStyle{Italic: true}, "italic"
	case FormatStrikethrough:
		return &docs.TextStyle{Strikethrough: true}, "strikethrough"
	case FormatLink:
		return &docs.TextStyle{Link: &docs.Link{Url: url}}, "link"
	case FormatCode:
		return c.monospace(StyleCode)
	}
	return nil, ""
}

// monospace returns the code font style configured under key.
func (c *Converter) monospace(key string) (*docs.TextStyle, string) {
	style := c.styles.GetStyle(key)
	textStyle := &docs.TextStyle{
		WeightedFontFamily: &docs.WeightedFontFamily{FontFamily: style.Font},
	}
	fields := "weightedFontFamily"
	if style.Background != nil {
		textStyle.BackgroundColor = style.Background.optionalColor()
		fields += ",backgroundColor"
	}
	return textStyle, fields
}

// formatRequests turns run-relative ranges into UpdateTextStyle requests
// anchored at the absolute offset base.
func (c *Converter) formatRequests(ranges []FormatRange, base int) []*docs.Request {
	var reqs []*docs.Request
	for _, r := range ranges {
		if r.Start >= r.End {
			continue
		}
		style, fields := c.textStyle(r.Kind, r.URL)
		if style == nil {
			continue
		}
		reqs = append(reqs, updateTextStyle(base+r.Start, base+r.End, style, fields))
	}
	return reqs
}

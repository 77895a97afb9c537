package gdocs

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	docs "google.golang.org/api/docs/v1"
)

// convertHeading inserts the heading text and applies the named heading
// style. The trailing newline stays outside the style range.
func (c *Converter) convertHeading(node *ast.Heading, source []byte, index int) ([]*docs.Request, int) {
	text, ranges := FormatChildren(node, source)

	reqs := []*docs.Request{insertText(index, text+"\n")}
	if text != "" {
		style := &docs.ParagraphStyle{NamedStyleType: headingStyles[min(max(node.Level, 1), 6)]}
		reqs = append(reqs, updateParagraphStyle(index, index+textLen(text), style, "namedStyleType"))
	}
	reqs = append(reqs, c.formatRequests(ranges, index)...)

	return reqs, nextIndex(reqs, index)
}

// paragraphSegment is either a run of inline nodes or a placed image.
type paragraphSegment struct {
	nodes []ast.Node
	image *imageRef
}

func splitParagraph(node ast.Node, source []byte) []paragraphSegment {
	var segments []paragraphSegment
	var run []ast.Node
	flush := func() {
		if len(run) > 0 {
			segments = append(segments, paragraphSegment{nodes: run})
			run = nil
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Image:
			alt, _ := FormatChildren(n, source)
			flush()
			segments = append(segments, paragraphSegment{image: &imageRef{URL: string(n.Destination), Alt: alt}})
			continue
		case *ast.RawHTML:
			if imgs := parseImageTags(string(rawHTML(n, source))); len(imgs) > 0 {
				flush()
				for i := range imgs {
					segments = append(segments, paragraphSegment{image: &imgs[i]})
				}
				continue
			}
		}
		run = append(run, child)
	}
	flush()
	return segments
}

// convertParagraph inserts a paragraph. Paragraphs holding images are
// emitted run by run with the cursor advancing past each run and image.
func (c *Converter) convertParagraph(node ast.Node, source []byte, index int) ([]*docs.Request, int) {
	segments := splitParagraph(node, source)

	hasImage := false
	for _, seg := range segments {
		if seg.image != nil {
			hasImage = true
			break
		}
	}

	if !hasImage {
		text, ranges := FormatChildren(node, source)
		reqs := []*docs.Request{insertText(index, text+"\n")}
		reqs = append(reqs, c.formatRequests(ranges, index)...)
		return reqs, nextIndex(reqs, index)
	}

	var reqs []*docs.Request
	pos := index
	for i, seg := range segments {
		if seg.image != nil {
			imageReqs, next := c.convertImage(*seg.image, pos)
			reqs = append(reqs, imageReqs...)
			pos = next
			continue
		}

		text, ranges := Format(seg.nodes, source)
		if strings.TrimSpace(text) == "" {
			continue
		}
		if i == len(segments)-1 {
			text += "\n"
		}
		reqs = append(reqs, insertText(pos, text))
		reqs = append(reqs, c.formatRequests(ranges, pos)...)
		pos = nextIndex(reqs, pos)
	}

	return reqs, nextIndex(reqs, index)
}

// codeText joins the raw lines of a code block without its final newline.
func codeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// convertCodeBlock inserts the code text and applies the monospace font and
// background over the whole span.
func (c *Converter) convertCodeBlock(node ast.Node, source []byte, index int) ([]*docs.Request, int) {
	text := codeText(node, source)

	reqs := []*docs.Request{insertText(index, text+"\n")}
	if text != "" {
		style, fields := c.monospace(StyleCodeBlock)
		reqs = append(reqs, updateTextStyle(index, index+textLen(text), style, fields))
	}

	return reqs, nextIndex(reqs, index)
}

// quoteText collects the text of every block inside a blockquote, one block
// per line. Nested quotes and lists are flattened into the same text.
func quoteText(node ast.Node, source []byte) (string, []FormatRange) {
	var parts []string
	var ranges []FormatRange
	pos := 0
	add := func(text string, rs []FormatRange) {
		if len(parts) > 0 {
			pos++ // joining newline
		}
		parts = append(parts, text)
		ranges = append(ranges, shiftRanges(rs, pos)...)
		pos += textLen(text)
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			text, rs := FormatChildren(n, source)
			add(text, rs)
		case *ast.Blockquote:
			text, rs := quoteText(n, source)
			add(text, rs)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			add(codeText(n, source), nil)
		case *ast.List:
			for _, item := range flattenList(n, source, 0) {
				for _, l := range item.Lines {
					add(l.Text, l.Ranges)
				}
			}
		}
	}

	return strings.Join(parts, "\n"), ranges
}

// convertBlockquote inserts the quoted text with a left border and indent
// over the whole span, spacing above its first physical line and below its
// last.
func (c *Converter) convertBlockquote(node *ast.Blockquote, source []byte, index int) ([]*docs.Request, int) {
	text, ranges := quoteText(node, source)

	reqs := []*docs.Request{insertText(index, text+"\n")}
	if text == "" {
		return reqs, nextIndex(reqs, index)
	}
	reqs = append(reqs, c.formatRequests(ranges, index)...)

	style := c.styles.GetStyle(StyleBlockquote)
	quote := &docs.ParagraphStyle{
		BorderLeft: &docs.ParagraphBorder{
			Color:     style.BorderColor.optionalColor(),
			Width:     points(style.BorderWidth),
			Padding:   points(style.Padding),
			DashStyle: DashStyleSolid,
		},
		IndentStart:     points(style.Indent),
		IndentFirstLine: points(style.Indent),
	}
	end := index + textLen(text)
	reqs = append(reqs, updateParagraphStyle(index, end, quote, "borderLeft,indentStart,indentFirstLine"))

	lines := strings.Split(text, "\n")
	first, last := lines[0], lines[len(lines)-1]
	reqs = append(reqs, updateParagraphStyle(index, paragraphEnd(index, first),
		&docs.ParagraphStyle{SpaceAbove: points(style.SpaceAbove)}, "spaceAbove"))
	lastStart := end - textLen(last)
	reqs = append(reqs, updateParagraphStyle(lastStart, paragraphEnd(lastStart, last),
		&docs.ParagraphStyle{SpaceBelow: points(style.SpaceBelow)}, "spaceBelow"))

	return reqs, nextIndex(reqs, index)
}

// convertHorizontalRule simulates a rule with an empty paragraph carrying a
// bottom border. The second empty insert keeps the output shape the Docs
// API integration has always produced.
func (c *Converter) convertHorizontalRule(index int) ([]*docs.Request, int) {
	style := c.styles.GetStyle(StyleHorizontalRule)
	rule := &docs.ParagraphStyle{
		BorderBottom: &docs.ParagraphBorder{
			Color:     style.BorderColor.optionalColor(),
			Width:     points(style.BorderWidth),
			Padding:   points(style.Padding),
			DashStyle: DashStyleSolid,
		},
		SpaceAbove: points(style.SpaceAbove),
		SpaceBelow: points(style.SpaceBelow),
	}

	reqs := []*docs.Request{
		insertText(index, "\n"),
		updateParagraphStyle(index, index+1, rule, "borderBottom,spaceAbove,spaceBelow"),
		insertText(index+1, "\n"),
	}
	return reqs, nextIndex(reqs, index)
}

package gdocs

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	imgSelector   = cascadia.MustCompile("img[src]")
	tableSelector = cascadia.MustCompile("table")
	rowSelector   = cascadia.MustCompile("tr")
	cellSelector  = cascadia.MustCompile("th, td")
)

func parseHTML(raw string) *html.Node {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil
	}
	return root
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseImageTags returns every <img> with a src attribute in raw.
func parseImageTags(raw string) []imageRef {
	if !strings.Contains(strings.ToLower(raw), "<img") {
		return nil
	}
	root := parseHTML(raw)
	if root == nil {
		return nil
	}
	var imgs []imageRef
	for _, n := range imgSelector.MatchAll(root) {
		imgs = append(imgs, imageRef{
			URL:    attr(n, "src"),
			Alt:    attr(n, "alt"),
			Width:  attr(n, "width"),
			Height: attr(n, "height"),
		})
	}
	return imgs
}

// parseHTMLTables returns the cell grid of every <table> in raw. Cells of
// the first row and <th> cells are headers. Rows keep whatever number of
// cells the markup had; the table converter rejects ragged grids.
func parseHTMLTables(raw string) [][][]TableCell {
	root := parseHTML(raw)
	if root == nil {
		return nil
	}
	var tables [][][]TableCell
	for _, table := range tableSelector.MatchAll(root) {
		var grid [][]TableCell
		for _, tr := range rowSelector.MatchAll(table) {
			var row []TableCell
			for c := tr.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode || !cellSelector.Match(c) {
					continue
				}
				text, ranges := trimRun(formatHTML(c))
				row = append(row, TableCell{
					Content:  text,
					Ranges:   ranges,
					IsHeader: len(grid) == 0 || c.DataAtom == atom.Th,
				})
			}
			grid = append(grid, row)
		}
		tables = append(tables, grid)
	}
	return tables
}

// formatHTML is the inline formatter for HTML content: it flattens n's
// text and records ranges for b/strong, i/em, code, s/del and a[href].
// Whitespace runs collapse to one space; <br> is a line break.
func formatHTML(n *html.Node) (string, []FormatRange) {
	f := &htmlFormatter{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
	return f.buf.String(), f.ranges
}

type htmlFormatter struct {
	buf    strings.Builder
	pos    int
	ranges []FormatRange
}

func (f *htmlFormatter) write(s string) {
	f.buf.WriteString(s)
	f.pos += textLen(s)
}

func (f *htmlFormatter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		f.write(collapseSpace(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	var kind FormatKind
	var url string
	switch n.DataAtom {
	case atom.Br:
		f.write("\n")
		return
	case atom.B, atom.Strong:
		kind = FormatBold
	case atom.I, atom.Em:
		kind = FormatItalic
	case atom.Code:
		kind = FormatCode
	case atom.S, atom.Del, atom.Strike:
		kind = FormatStrikethrough
	case atom.A:
		kind, url = FormatLink, attr(n, "href")
	}

	start := f.pos
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
	if kind != "" && f.pos > start && (kind != FormatLink || url != "") {
		f.ranges = append(f.ranges, FormatRange{Start: start, End: f.pos, Kind: kind, URL: url})
	}
}

func collapseSpace(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\n\r\f") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\n\r\f") != s {
		out += " "
	}
	return out
}

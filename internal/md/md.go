package md

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

var parser = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
).Parser()

// Parse normalizes content to NFC and parses it with the GFM extensions
// (tables, strikethrough, task lists, autolinks). It returns the document
// node and the source bytes its segments point into. Parsing never fails;
// malformed markdown degrades to paragraphs of literal text.
func Parse(content string) (ast.Node, []byte) {
	source := norm.NFC.Bytes([]byte(content))
	return parser.Parse(text.NewReader(source)), source
}

package md

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func blockKinds(doc ast.Node) []ast.NodeKind {
	var kinds []ast.NodeKind
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		kinds = append(kinds, c.Kind())
	}
	return kinds
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []ast.NodeKind
	}{
		{
			name:     "heading 1",
			markdown: "# Heading 1",
			want:     []ast.NodeKind{ast.KindHeading},
		},
		{
			name:     "paragraphs",
			markdown: "one\n\ntwo",
			want:     []ast.NodeKind{ast.KindParagraph, ast.KindParagraph},
		},
		{
			name:     "blockquote",
			markdown: "> This is a quote",
			want:     []ast.NodeKind{ast.KindBlockquote},
		},
		{
			name:     "code block",
			markdown: "```go\nfunc main() {}\n```",
			want:     []ast.NodeKind{ast.KindFencedCodeBlock},
		},
		{
			name:     "unordered list",
			markdown: "- Item 1\n- Item 2",
			want:     []ast.NodeKind{ast.KindList},
		},
		{
			name:     "horizontal rule",
			markdown: "---",
			want:     []ast.NodeKind{ast.KindThematicBreak},
		},
		{
			name:     "table",
			markdown: "| Header 1 | Header 2 |\n| --- | --- |\n| Cell 1 | Cell 2 |",
			want:     []ast.NodeKind{extast.KindTable},
		},
		{
			name:     "html block",
			markdown: "<table><tr><td>x</td></tr></table>",
			want:     []ast.NodeKind{ast.KindHTMLBlock},
		},
		{
			name:     "empty",
			markdown: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse(tt.markdown)
			if diff := cmp.Diff(tt.want, blockKinds(doc)); diff != "" {
				t.Errorf("Parse() block kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInlineExtensions(t *testing.T) {
	doc, source := Parse("~~gone~~ - [x] https://example.com")
	para := doc.FirstChild()
	if para == nil || para.Kind() != ast.KindParagraph {
		t.Fatalf("expected a paragraph, got %v", para)
	}

	var kinds []ast.NodeKind
	_ = ast.Walk(para, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n != para {
			kinds = append(kinds, n.Kind())
		}
		return ast.WalkContinue, nil
	})

	for _, want := range []ast.NodeKind{extast.KindStrikethrough, ast.KindAutoLink} {
		found := false
		for _, k := range kinds {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %v in %v (source %q)", want, kinds, source)
		}
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent.
	_, source := Parse("Cafe\u0301")
	if got, want := string(source), "Caf\u00e9"; got != want {
		t.Errorf("Parse() source = %q, want %q", got, want)
	}
}

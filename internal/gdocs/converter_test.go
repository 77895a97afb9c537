package gdocs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	docs "google.golang.org/api/docs/v1"
)

func requests(t *testing.T, markdown string, opts Options) []*docs.Request {
	t.Helper()
	reqs, err := NewConverter(nil).Requests(markdown, opts)
	if err != nil {
		t.Fatalf("Requests() error = %v", err)
	}
	return reqs
}

func bold(start, end int) *docs.Request {
	return updateTextStyle(start, end, &docs.TextStyle{Bold: true}, "bold")
}

func heading(start, end, level int) *docs.Request {
	return updateParagraphStyle(start, end, &docs.ParagraphStyle{NamedStyleType: headingStyles[level]}, "namedStyleType")
}

func TestRequests_Scenario(t *testing.T) {
	got := requests(t, "# Title\n\nHello **world**.", Options{})

	want := []*docs.Request{
		insertText(1, "Title\n"),
		heading(1, 6, 1),
		insertText(7, "Hello world.\n"),
		bold(13, 18),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Requests() mismatch (-want +got):\n%s", diff)
	}
}

func TestRequests_Blocks(t *testing.T) {
	c := NewConverter(nil)
	code, codeFields := c.monospace(StyleCodeBlock)
	inlineCode, inlineCodeFields := c.monospace(StyleCode)
	quote := c.styles.GetStyle(StyleBlockquote)
	rule := c.styles.GetStyle(StyleHorizontalRule)

	tests := []struct {
		name     string
		markdown string
		want     []*docs.Request
	}{
		{
			name:     "empty document",
			markdown: "",
			want:     nil,
		},
		{
			name:     "heading levels",
			markdown: "### Third",
			want: []*docs.Request{
				insertText(1, "Third\n"),
				heading(1, 6, 3),
			},
		},
		{
			name:     "heading with inline code",
			markdown: "## Run `make`",
			want: []*docs.Request{
				insertText(1, "Run make\n"),
				heading(1, 9, 2),
				updateTextStyle(5, 9, inlineCode, inlineCodeFields),
			},
		},
		{
			name:     "paragraph with link and italic",
			markdown: "See [docs](https://example.com) *now*",
			want: []*docs.Request{
				insertText(1, "See docs now\n"),
				updateTextStyle(5, 9, &docs.TextStyle{Link: &docs.Link{Url: "https://example.com"}}, "link"),
				updateTextStyle(10, 13, &docs.TextStyle{Italic: true}, "italic"),
			},
		},
		{
			name:     "strikethrough",
			markdown: "~~old~~ new",
			want: []*docs.Request{
				insertText(1, "old new\n"),
				updateTextStyle(1, 4, &docs.TextStyle{Strikethrough: true}, "strikethrough"),
			},
		},
		{
			name:     "fenced code block",
			markdown: "```go\nx := 1\ny := 2\n```",
			want: []*docs.Request{
				insertText(1, "x := 1\ny := 2\n"),
				updateTextStyle(1, 14, code, codeFields),
			},
		},
		{
			name:     "blockquote",
			markdown: "> quote **b**",
			want: []*docs.Request{
				insertText(1, "quote b\n"),
				bold(7, 8),
				updateParagraphStyle(1, 8, &docs.ParagraphStyle{
					BorderLeft: &docs.ParagraphBorder{
						Color:     quote.BorderColor.optionalColor(),
						Width:     points(3),
						Padding:   points(12),
						DashStyle: DashStyleSolid,
					},
					IndentStart:     points(36),
					IndentFirstLine: points(36),
				}, "borderLeft,indentStart,indentFirstLine"),
				updateParagraphStyle(1, 8, &docs.ParagraphStyle{SpaceAbove: points(6)}, "spaceAbove"),
				updateParagraphStyle(1, 8, &docs.ParagraphStyle{SpaceBelow: points(6)}, "spaceBelow"),
			},
		},
		{
			name:     "horizontal rule inserts two newlines",
			markdown: "a\n\n---\n\nb",
			want: []*docs.Request{
				insertText(1, "a\n"),
				insertText(3, "\n"),
				updateParagraphStyle(3, 4, &docs.ParagraphStyle{
					BorderBottom: &docs.ParagraphBorder{
						Color:     rule.BorderColor.optionalColor(),
						Width:     points(1),
						Padding:   points(1),
						DashStyle: DashStyleSolid,
					},
					SpaceAbove: points(12),
					SpaceBelow: points(12),
				}, "borderBottom,spaceAbove,spaceBelow"),
				insertText(4, "\n"),
				insertText(5, "b\n"),
			},
		},
		{
			name:     "hard line break",
			markdown: "one\\\ntwo",
			want: []*docs.Request{
				insertText(1, "one\ntwo\n"),
			},
		},
		{
			name:     "soft line break",
			markdown: "one\ntwo",
			want: []*docs.Request{
				insertText(1, "one two\n"),
			},
		},
		{
			name:     "astral characters count two units",
			markdown: "😀 **x**",
			want: []*docs.Request{
				insertText(1, "😀 x\n"),
				bold(4, 5),
			},
		},
		{
			name:     "unsupported html is dropped",
			markdown: "<div>hidden</div>\n\nshown",
			want: []*docs.Request{
				insertText(1, "shown\n"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requests(t, tt.markdown, Options{})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Requests() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequests_StartIndex(t *testing.T) {
	got := requests(t, "# Title\n\nHello **world**.", Options{StartIndex: 42})

	want := []*docs.Request{
		insertText(42, "Title\n"),
		heading(42, 47, 1),
		insertText(48, "Hello world.\n"),
		bold(54, 59),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Requests() mismatch (-want +got):\n%s", diff)
	}
}

func TestRequests_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "negative start", opts: Options{StartIndex: -3}, wantErr: "start index"},
		{name: "unknown strategy", opts: Options{PageBreaks: "h4"}, wantErr: "page break strategy"},
		{name: "custom without marker", opts: Options{PageBreaks: PageBreakCustom}, wantErr: "requires a marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter(nil).Requests("text", tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Requests() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	c := NewConverter(nil)

	out, err := c.Convert("Hello", "My Doc", OutputMultiple, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if out.DocumentTitle != "My Doc" || out.CreateDocumentRequest.Title != "My Doc" {
		t.Errorf("Convert() title = %q / %q", out.DocumentTitle, out.CreateDocumentRequest.Title)
	}
	if len(out.Requests) != 1 || out.Requests[0].RequestID != "request_1" {
		t.Errorf("Convert() numbered requests = %+v", out.Requests)
	}

	if _, err := c.Convert("Hello", "My Doc", "chunked", Options{}); err == nil {
		t.Error("Convert() should reject an unknown output format")
	}
}

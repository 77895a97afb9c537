package gdocs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	docs "google.golang.org/api/docs/v1"
)

func TestParsePageBreakStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    PageBreakStrategy
		wantErr bool
	}{
		{in: "", want: PageBreakNone},
		{in: "none", want: PageBreakNone},
		{in: "H1", want: PageBreakH1},
		{in: " h2 ", want: PageBreakH2},
		{in: "custom", want: PageBreakCustom},
		{in: "h3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePageBreakStrategy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePageBreakStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePageBreakStrategy(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRequests_PageBreaks(t *testing.T) {
	const marker = "{{pagebreak}}"

	tests := []struct {
		name     string
		markdown string
		opts     Options
		want     []*docs.Request
	}{
		{
			name:     "h1 skips the first heading",
			markdown: "# A\n\n# B\n\n## C",
			opts:     Options{PageBreaks: PageBreakH1},
			want: []*docs.Request{
				insertText(1, "A\n"),
				heading(1, 2, 1),
				insertPageBreak(3),
				insertText(5, "B\n"),
				heading(5, 6, 1),
				insertText(7, "C\n"),
				heading(7, 8, 2),
			},
		},
		{
			name:     "h2 breaks before every h2",
			markdown: "## A\n\n# B\n\n## C",
			opts:     Options{PageBreaks: PageBreakH2},
			want: []*docs.Request{
				insertPageBreak(1),
				insertText(3, "A\n"),
				heading(3, 4, 2),
				insertText(5, "B\n"),
				heading(5, 6, 1),
				insertPageBreak(7),
				insertText(9, "C\n"),
				heading(9, 10, 2),
			},
		},
		{
			name:     "custom marker paragraphs",
			markdown: "Intro\n\n" + marker + "\n\nNext\n\n" + marker,
			opts:     Options{PageBreaks: PageBreakCustom, PageBreakMarker: marker},
			want: []*docs.Request{
				insertText(1, "Intro\n"),
				insertText(7, marker+"\n"),
				insertText(21, "Next\n"),
				insertText(26, marker+"\n"),
				deleteContentRange(26, 39),
				insertPageBreak(26),
				deleteContentRange(7, 20),
				insertPageBreak(7),
			},
		},
		{
			name:     "custom marker inside a nested list item",
			markdown: "- a\n  - x " + marker,
			opts:     Options{PageBreaks: PageBreakCustom, PageBreakMarker: marker},
			want: []*docs.Request{
				insertText(1, "\n"),
				insertText(2, "a\n\tx "+marker+"\n"),
				createParagraphBullets(2, 20, BulletPresetUnordered),
				spaceAbove(2, 3),
				spaceBelow(4, 19),
				deleteContentRange(6, 19),
				insertPageBreak(6),
			},
		},
		{
			name:     "marker is matched literally",
			markdown: "a.b and axb",
			opts:     Options{PageBreaks: PageBreakCustom, PageBreakMarker: "a.b"},
			want: []*docs.Request{
				insertText(1, "a.b and axb\n"),
				deleteContentRange(1, 4),
				insertPageBreak(1),
			},
		},
		{
			name:     "markers in table cells are left alone",
			markdown: "| " + marker + " |\n|---|",
			opts:     Options{PageBreaks: PageBreakCustom, PageBreakMarker: marker},
			want: func() []*docs.Request {
				c := NewConverter(nil)
				bg := c.styles.GetStyle(StyleTableHeader).Background.optionalColor()
				return []*docs.Request{
					insertTable(1, 1, 1),
					insertText(5, marker),
					bold(5, 18),
					updateParagraphStyle(5, 18, &docs.ParagraphStyle{Alignment: AlignmentCenter}, "alignment"),
					updateTableCellStyle(2, 0, 0, &docs.TableCellStyle{BackgroundColor: bg}, "backgroundColor"),
				}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requests(t, tt.markdown, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Requests() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLeadingTabs(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "a\n\tb\n\t\tc", want: 3},
		{in: "a\tb", want: 0},
		{in: "\t\t", want: 2},
	}
	for _, tt := range tests {
		if got := leadingTabs(tt.in); got != tt.want {
			t.Errorf("leadingTabs(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

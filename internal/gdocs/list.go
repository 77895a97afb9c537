package gdocs

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	docs "google.golang.org/api/docs/v1"
)

// Glyph prefixes for task list items. Both are two UTF-16 units long.
const (
	checkedPrefix   = "☑ "
	uncheckedPrefix = "☐ "
)

// ListLine is one visual line of a list item. Only the primary (first) line
// of an item receives a bullet; secondary lines come from hard line breaks
// or continuation paragraphs and are indented by hand.
type ListLine struct {
	Text      string
	IsPrimary bool
	Ranges    []FormatRange
}

// ListItem groups the lines of one item with its 0-based nesting level.
type ListItem struct {
	Level int
	Lines []ListLine
}

// flattenList walks a list depth-first. Each item's own lines come before
// the items of its nested lists, which come before the item's next sibling.
func flattenList(list *ast.List, source []byte, level int) []ListItem {
	var items []ListItem
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		li, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}

		item := ListItem{Level: level}
		var nested []*ast.List
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch n := c.(type) {
			case *ast.List:
				nested = append(nested, n)
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				item.Lines = appendLines(item.Lines, codeText(n, source), nil)
			case *ast.Blockquote:
				text, ranges := quoteText(n, source)
				item.Lines = appendLines(item.Lines, text, ranges)
			default:
				text, ranges := FormatChildren(n, source)
				item.Lines = appendLines(item.Lines, text, ranges)
			}
		}
		if len(item.Lines) == 0 {
			item.Lines = []ListLine{{}}
		}
		item.Lines[0].IsPrimary = true

		if box := taskCheckBox(li); box != nil {
			prefix := uncheckedPrefix
			if box.IsChecked {
				prefix = checkedPrefix
			}
			first := &item.Lines[0]
			text, ranges := trimLeft(first.Text, " ", first.Ranges)
			first.Text = prefix + text
			first.Ranges = shiftRanges(ranges, textLen(prefix))
		}

		items = append(items, item)
		for _, n := range nested {
			items = append(items, flattenList(n, source, level+1)...)
		}
	}
	return items
}

// appendLines splits text into list lines. Bulleting strips the leading
// tabs of every paragraph in its range, so they are dropped here and only
// the nesting tabs added by layoutList are ever removed.
func appendLines(lines []ListLine, text string, ranges []FormatRange) []ListLine {
	for _, l := range splitLines(text, ranges) {
		text, ranges := trimLeft(l.Text, "\t", l.Ranges)
		lines = append(lines, ListLine{Text: text, Ranges: ranges})
	}
	return lines
}

// taskCheckBox returns the checkbox opening a task list item, if any.
func taskCheckBox(li *ast.ListItem) *extast.TaskCheckBox {
	block := li.FirstChild()
	if block == nil {
		return nil
	}
	box, _ := block.FirstChild().(*extast.TaskCheckBox)
	return box
}

func trimLeft(text, cutset string, ranges []FormatRange) (string, []FormatRange) {
	trimmed := strings.TrimLeft(text, cutset)
	lead := textLen(text) - textLen(trimmed)
	if lead == 0 {
		return text, ranges
	}
	var kept []FormatRange
	for _, r := range shiftRanges(ranges, -lead) {
		r.Start = max(r.Start, 0)
		if r.Start < r.End {
			kept = append(kept, r)
		}
	}
	return trimmed, kept
}

// listPlacement is a list line laid out in the document.
type listPlacement struct {
	ListLine
	Level int
	// Tabs is the number of leading tabs written before the line's text.
	Tabs int
	// NaiveStart is where the text starts counting the tabs bulleting will
	// remove; Start is where it ends up once they are gone.
	NaiveStart int
	Start      int
}

// layoutList computes both passes of list placement for text inserted at
// start. Pass one writes every line, primary lines prefixed with one tab per
// nesting level, and records naive offsets. Pass two walks the same lines
// with the running count of tabs removed by bulleting and re-stamps each
// start. It returns the placements, the inserted text and the total number
// of tabs removed.
func layoutList(items []ListItem, start int) ([]listPlacement, string, int) {
	var placements []listPlacement
	var buf strings.Builder
	pos := start
	for _, item := range items {
		for _, l := range item.Lines {
			tabs := 0
			if l.IsPrimary {
				tabs = item.Level
			}
			text := strings.Repeat("\t", tabs) + l.Text + "\n"
			placements = append(placements, listPlacement{
				ListLine:   l,
				Level:      item.Level,
				Tabs:       tabs,
				NaiveStart: pos + tabs,
			})
			buf.WriteString(text)
			pos += textLen(text)
		}
	}

	removed := 0
	for i := range placements {
		p := &placements[i]
		// The line's own tabs are stripped too, so its text begins where
		// the tabs did.
		p.Start = p.NaiveStart - p.Tabs - removed
		if p.IsPrimary {
			removed += p.Tabs
		}
	}

	return placements, buf.String(), removed
}

// convertList inserts a whole list with one InsertText and one bullet
// request, then styles each line at its offset after bulleting has stripped
// the nesting tabs.
func (c *Converter) convertList(list *ast.List, source []byte, index int) ([]*docs.Request, int) {
	items := flattenList(list, source, 0)
	style := c.styles.GetStyle(StyleList)

	preset := BulletPresetUnordered
	if list.IsOrdered() {
		preset = BulletPresetOrdered
	}

	start := index + 1
	placements, text, removed := layoutList(items, start)

	// The bullet range stops short of the final newline, but never collapses
	// for a list of one empty item.
	bulletEnd := max(start+textLen(text)-1, start+1)
	reqs := []*docs.Request{
		insertText(index, "\n"),
		insertText(start, text),
		createParagraphBullets(start, bulletEnd, preset),
	}

	for i, p := range placements {
		reqs = append(reqs, c.formatRequests(p.Ranges, p.Start)...)

		end := paragraphEnd(p.Start, p.Text)
		if !p.IsPrimary {
			indent := points(float64(p.Level+1) * style.Indent)
			reqs = append(reqs,
				deleteParagraphBullets(p.Start, end),
				updateParagraphStyle(p.Start, end,
					&docs.ParagraphStyle{IndentStart: indent, IndentFirstLine: indent},
					"indentStart,indentFirstLine"),
			)
		}
		if i == 0 {
			reqs = append(reqs, updateParagraphStyle(p.Start, end,
				&docs.ParagraphStyle{SpaceAbove: points(style.SpaceAbove)}, "spaceAbove"))
		}
		if i == len(placements)-1 {
			reqs = append(reqs, updateParagraphStyle(p.Start, end,
				&docs.ParagraphStyle{SpaceBelow: points(style.SpaceBelow)}, "spaceBelow"))
		}
	}

	return reqs, nextIndex(reqs, index) - removed
}

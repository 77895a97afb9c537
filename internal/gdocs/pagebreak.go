package gdocs

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"
	docs "google.golang.org/api/docs/v1"
)

// PageBreakStrategy selects where page breaks are injected.
type PageBreakStrategy string

const (
	PageBreakNone   PageBreakStrategy = ""
	PageBreakH1     PageBreakStrategy = "h1"
	PageBreakH2     PageBreakStrategy = "h2"
	PageBreakCustom PageBreakStrategy = "custom"
)

// PageBreakStrategies lists the accepted non-empty strategies.
var PageBreakStrategies = []PageBreakStrategy{PageBreakH1, PageBreakH2, PageBreakCustom}

// ParsePageBreakStrategy validates a strategy name. The empty string and
// "none" disable page breaks.
func ParsePageBreakStrategy(s string) (PageBreakStrategy, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "none":
		return PageBreakNone, nil
	case string(PageBreakH1), string(PageBreakH2), string(PageBreakCustom):
		return PageBreakStrategy(v), nil
	}
	return "", fmt.Errorf("invalid page break strategy %q, must be one of h1, h2, custom", s)
}

// pageBreakWidth is how far the cursor moves past an inserted page break.
const pageBreakWidth = 2

// headingBreaks decides, heading by heading, whether a page break goes
// before it. The h1 strategy skips the document's first H1.
type headingBreaks struct {
	strategy PageBreakStrategy
	seenH1   bool
}

func (h *headingBreaks) before(node ast.Node) bool {
	heading, ok := node.(*ast.Heading)
	if !ok {
		return false
	}
	switch h.strategy {
	case PageBreakH1:
		if heading.Level != 1 {
			return false
		}
		first := !h.seenH1
		h.seenH1 = true
		return !first
	case PageBreakH2:
		return heading.Level == 2
	}
	return false
}

// markerBreak is one occurrence of the custom marker in inserted text.
type markerBreak struct {
	index  int
	length int
}

// markerBreaks finds every occurrence of marker in the text a block
// inserts. Text directly followed by a bullet request over the same start
// is list text whose nesting tabs are stripped, so the tabs preceding each
// match are subtracted from its index.
func markerBreaks(reqs []*docs.Request, marker string) []markerBreak {
	pattern := regexp.MustCompile(regexp.QuoteMeta(marker))
	var breaks []markerBreak
	for i, r := range reqs {
		it := r.InsertText
		if it == nil {
			continue
		}
		start := int(it.Location.Index)
		bulleted := i+1 < len(reqs) && reqs[i+1].CreateParagraphBullets != nil &&
			int(reqs[i+1].CreateParagraphBullets.Range.StartIndex) == start

		for _, m := range pattern.FindAllStringIndex(it.Text, -1) {
			prefix := it.Text[:m[0]]
			index := start + textLen(prefix)
			if bulleted {
				index -= leadingTabs(prefix)
			}
			breaks = append(breaks, markerBreak{index: index, length: textLen(marker)})
		}
	}
	return breaks
}

// leadingTabs counts the tabs opening each line of text, including the
// unfinished last line.
func leadingTabs(text string) int {
	n := 0
	for _, l := range strings.Split(text, "\n") {
		n += len(l) - len(strings.TrimLeft(l, "\t"))
	}
	return n
}

// markerRequests replaces each marker with a page break, last marker
// first so earlier offsets stay valid.
func markerRequests(breaks []markerBreak) []*docs.Request {
	sort.SliceStable(breaks, func(i, j int) bool { return breaks[i].index > breaks[j].index })
	reqs := make([]*docs.Request, 0, 2*len(breaks))
	for _, b := range breaks {
		reqs = append(reqs,
			deleteContentRange(b.index, b.index+b.length),
			insertPageBreak(b.index),
		)
	}
	return reqs
}

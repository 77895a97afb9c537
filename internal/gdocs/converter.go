package gdocs

import (
	"bytes"
	"fmt"

	"github.com/dastrobu/md2gdocs/internal/md"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	docs "google.golang.org/api/docs/v1"
)

// DefaultStartIndex is the first writable offset of an empty document.
const DefaultStartIndex = 1

// Converter turns Markdown into Docs batchUpdate requests. A Converter holds
// only read-only style configuration and may be shared between goroutines.
type Converter struct {
	styles *PreparedConfig
}

// NewConverter returns a converter using styles, or the embedded default
// styles if styles is nil.
func NewConverter(styles *PreparedConfig) *Converter {
	if styles == nil {
		styles = MustLoadDefaultConfig()
	}
	return &Converter{styles: styles}
}

// Options tune request generation.
type Options struct {
	// StartIndex is the offset the first block is inserted at. Zero means
	// DefaultStartIndex.
	StartIndex      int
	PageBreaks      PageBreakStrategy
	PageBreakMarker string
}

func (o Options) validate() (Options, error) {
	if o.StartIndex == 0 {
		o.StartIndex = DefaultStartIndex
	}
	if o.StartIndex < DefaultStartIndex {
		return o, fmt.Errorf("start index must be at least %d, got %d", DefaultStartIndex, o.StartIndex)
	}
	strategy, err := ParsePageBreakStrategy(string(o.PageBreaks))
	if err != nil {
		return o, err
	}
	o.PageBreaks = strategy
	if o.PageBreaks == PageBreakCustom && o.PageBreakMarker == "" {
		return o, fmt.Errorf("page break strategy %q requires a marker", PageBreakCustom)
	}
	return o, nil
}

// Convert generates the requests for markdown and packages them with title
// in the given format.
func (c *Converter) Convert(markdown, title string, format OutputFormat, opts Options) (*Output, error) {
	format, err := ParseOutputFormat(string(format))
	if err != nil {
		return nil, err
	}
	reqs, err := c.Requests(markdown, opts)
	if err != nil {
		return nil, err
	}
	return Package(title, reqs, format), nil
}

// Requests generates the ordered batchUpdate requests for markdown. Every
// top-level block is converted at the running cursor, which then moves to
// the offset the block's requests end at.
func (c *Converter) Requests(markdown string, opts Options) ([]*docs.Request, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	doc, source := md.Parse(markdown)

	var reqs []*docs.Request
	var breaks []markerBreak
	headings := &headingBreaks{strategy: opts.PageBreaks}
	index := opts.StartIndex

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if headings.before(node) {
			reqs = append(reqs, insertPageBreak(index))
			index += pageBreakWidth
		}

		blockReqs, next, isTable := c.convertBlock(node, source, index)
		if opts.PageBreaks == PageBreakCustom && !isTable {
			// Markers inside table cells are left as text.
			breaks = append(breaks, markerBreaks(blockReqs, opts.PageBreakMarker)...)
		}
		reqs = append(reqs, blockReqs...)
		index = next
	}

	reqs = append(reqs, markerRequests(breaks)...)
	return reqs, nil
}

// convertBlock dispatches a top-level block to its converter. Blocks with no
// rendering return no requests and leave the cursor where it is. isTable
// reports whether the requests build a table structure.
func (c *Converter) convertBlock(node ast.Node, source []byte, index int) (reqs []*docs.Request, next int, isTable bool) {
	switch n := node.(type) {
	case *ast.Heading:
		reqs, next = c.convertHeading(n, source, index)
	case *ast.Paragraph, *ast.TextBlock:
		reqs, next = c.convertParagraph(n, source, index)
	case *ast.List:
		reqs, next = c.convertList(n, source, index)
	case *extast.Table:
		reqs, next = c.convertTable(gfmTableGrid(n, source), index)
		isTable = true
	case *ast.Blockquote:
		reqs, next = c.convertBlockquote(n, source, index)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		reqs, next = c.convertCodeBlock(n, source, index)
	case *ast.ThematicBreak:
		reqs, next = c.convertHorizontalRule(index)
	case *ast.HTMLBlock:
		return c.convertHTMLBlock(n, source, index)
	default:
		return nil, index, false
	}
	isTable = isTable && len(reqs) > 0 && reqs[0].InsertTable != nil
	return reqs, next, isTable
}

// convertHTMLBlock renders the tables of a raw HTML block, or failing that
// its images. Any other HTML is dropped.
func (c *Converter) convertHTMLBlock(node *ast.HTMLBlock, source []byte, index int) ([]*docs.Request, int, bool) {
	raw := htmlBlockText(node, source)

	var reqs []*docs.Request
	next := index
	if tables := parseHTMLTables(raw); len(tables) > 0 {
		isTable := false
		for _, grid := range tables {
			tableReqs, n := c.convertTable(grid, next)
			isTable = isTable || tableReqs[0].InsertTable != nil
			reqs = append(reqs, tableReqs...)
			next = n
		}
		return reqs, next, isTable
	}

	for _, img := range parseImageTags(raw) {
		imageReqs, n := c.convertImage(img, next)
		reqs = append(reqs, imageReqs...)
		next = n
	}
	return reqs, next, false
}

func htmlBlockText(node *ast.HTMLBlock, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	if node.HasClosure() {
		buf.Write(node.ClosureLine.Value(source))
	}
	return buf.String()
}

package gdocs

import (
	"fmt"
	"strings"

	extast "github.com/yuin/goldmark/extension/ast"
	docs "google.golang.org/api/docs/v1"
)

// Table cell addressing. A table inserted at index i places its first cell
// boundary at i+3; every later cell boundary sits 2 past the end of the
// previous cell's content. Cell text starts 1 past its boundary.
const (
	tableFirstCellOffset = 3
	tableCellAdvance     = 2
)

// TableCell is one cell of a table grid with run-relative format ranges.
type TableCell struct {
	Content  string
	Ranges   []FormatRange
	IsHeader bool
}

// gfmTableGrid builds the cell grid of a GFM table. The header row is the
// first grid row.
func gfmTableGrid(table *extast.Table, source []byte) [][]TableCell {
	var grid [][]TableCell
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		_, isHeader := child.(*extast.TableHeader)
		var row []TableCell
		for cell := child.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if _, ok := cell.(*extast.TableCell); !ok {
				continue
			}
			text, ranges := trimRun(FormatChildren(cell, source))
			row = append(row, TableCell{Content: text, Ranges: ranges, IsHeader: isHeader})
		}
		grid = append(grid, row)
	}
	return grid
}

// gridSize returns the dimensions of a rectangular grid.
func gridSize(grid [][]TableCell) (rows, cols int, err error) {
	if len(grid) == 0 {
		return 0, 0, fmt.Errorf("table has no rows")
	}
	cols = len(grid[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("table has no columns")
	}
	for i, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), cols)
		}
	}
	return len(grid), cols, nil
}

// convertTable inserts a table and fills its cells row-major. Header cells
// are bold, centered and shaded. Grids that cannot form a table are
// rendered as text instead.
func (c *Converter) convertTable(grid [][]TableCell, index int) ([]*docs.Request, int) {
	rows, cols, err := gridSize(grid)
	if err != nil {
		return c.tableFallback(grid, index)
	}

	reqs := []*docs.Request{insertTable(index, rows, cols)}
	tableStart := index + 1
	headerBackground := c.styles.GetStyle(StyleTableHeader).Background

	boundary := index + tableFirstCellOffset
	first := true
	for r, row := range grid {
		for col, cell := range row {
			if !first {
				boundary += tableCellAdvance
			}
			first = false

			at := boundary + 1
			n := textLen(cell.Content)
			if n > 0 {
				reqs = append(reqs, insertText(at, cell.Content))
				reqs = append(reqs, c.formatRequests(cell.Ranges, at)...)
				if cell.IsHeader {
					reqs = append(reqs,
						updateTextStyle(at, at+n, &docs.TextStyle{Bold: true}, "bold"),
						updateParagraphStyle(at, at+n, &docs.ParagraphStyle{Alignment: AlignmentCenter}, "alignment"),
					)
				}
			}
			if cell.IsHeader && headerBackground != nil {
				reqs = append(reqs, updateTableCellStyle(tableStart, r, col,
					&docs.TableCellStyle{BackgroundColor: headerBackground.optionalColor()}, "backgroundColor"))
			}
			boundary += n
		}
	}

	return reqs, nextIndex(reqs, index)
}

// tableFallback renders a grid as plain lines when it cannot become a table.
func (c *Converter) tableFallback(grid [][]TableCell, index int) ([]*docs.Request, int) {
	const title = "[Table Content]"
	lines := []string{title}

	rowNum := 0
	for i, row := range grid {
		cells := make([]string, len(row))
		header := len(row) > 0
		for j, cell := range row {
			cells[j] = strings.ReplaceAll(cell.Content, "\n", " ")
			header = header && cell.IsHeader
		}
		if i == 0 && header {
			lines = append(lines, "Headers: "+strings.Join(cells, " | "))
			continue
		}
		rowNum++
		lines = append(lines, fmt.Sprintf("Row %d: %s", rowNum, strings.Join(cells, " | ")))
	}

	reqs := []*docs.Request{
		insertText(index, strings.Join(lines, "\n")+"\n"),
		updateTextStyle(index, index+textLen(title), &docs.TextStyle{Bold: true}, "bold"),
	}
	return reqs, nextIndex(reqs, index)
}

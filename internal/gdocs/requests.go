package gdocs

import (
	docs "google.golang.org/api/docs/v1"
)

// Identifiers understood by the Docs API. These are not renegotiable.
const (
	BulletPresetUnordered = "BULLET_DISC_CIRCLE_SQUARE"
	BulletPresetOrdered   = "NUMBERED_DECIMAL_ALPHA_ROMAN"

	AlignmentCenter = "CENTER"
	DashStyleSolid  = "SOLID"
	UnitPoints      = "PT"
)

// headingStyles maps Markdown heading levels to named paragraph styles.
var headingStyles = map[int]string{
	1: "HEADING_1",
	2: "HEADING_2",
	3: "HEADING_3",
	4: "HEADING_4",
	5: "HEADING_5",
	6: "HEADING_6",
}

func location(index int) *docs.Location {
	return &docs.Location{Index: int64(index)}
}

func docRange(start, end int) *docs.Range {
	return &docs.Range{StartIndex: int64(start), EndIndex: int64(end)}
}

func points(v float64) *docs.Dimension {
	return &docs.Dimension{Magnitude: v, Unit: UnitPoints}
}

func insertText(index int, text string) *docs.Request {
	return &docs.Request{
		InsertText: &docs.InsertTextRequest{Location: location(index), Text: text},
	}
}

func updateTextStyle(start, end int, style *docs.TextStyle, fields string) *docs.Request {
	return &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     docRange(start, end),
			TextStyle: style,
			Fields:    fields,
		},
	}
}

func updateParagraphStyle(start, end int, style *docs.ParagraphStyle, fields string) *docs.Request {
	return &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          docRange(start, end),
			ParagraphStyle: style,
			Fields:         fields,
		},
	}
}

func createParagraphBullets(start, end int, preset string) *docs.Request {
	return &docs.Request{
		CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
			Range:        docRange(start, end),
			BulletPreset: preset,
		},
	}
}

func deleteParagraphBullets(start, end int) *docs.Request {
	return &docs.Request{
		DeleteParagraphBullets: &docs.DeleteParagraphBulletsRequest{Range: docRange(start, end)},
	}
}

func insertTable(index, rows, cols int) *docs.Request {
	return &docs.Request{
		InsertTable: &docs.InsertTableRequest{
			Location: location(index),
			Rows:     int64(rows),
			Columns:  int64(cols),
		},
	}
}

func updateTableCellStyle(tableStart, row, col int, style *docs.TableCellStyle, fields string) *docs.Request {
	return &docs.Request{
		UpdateTableCellStyle: &docs.UpdateTableCellStyleRequest{
			TableRange: &docs.TableRange{
				TableCellLocation: &docs.TableCellLocation{
					TableStartLocation: location(tableStart),
					RowIndex:           int64(row),
					ColumnIndex:        int64(col),
				},
				RowSpan:    1,
				ColumnSpan: 1,
			},
			TableCellStyle: style,
			Fields:         fields,
		},
	}
}

func insertPageBreak(index int) *docs.Request {
	return &docs.Request{
		InsertPageBreak: &docs.InsertPageBreakRequest{Location: location(index)},
	}
}

func deleteContentRange(start, end int) *docs.Request {
	return &docs.Request{
		DeleteContentRange: &docs.DeleteContentRangeRequest{Range: docRange(start, end)},
	}
}

func insertInlineImage(index int, uri string, size *docs.Size) *docs.Request {
	return &docs.Request{
		InsertInlineImage: &docs.InsertInlineImageRequest{
			Location:   location(index),
			Uri:        uri,
			ObjectSize: size,
		},
	}
}

// RequestKind names the populated member of a request, e.g. "insertText".
func RequestKind(r *docs.Request) string {
	switch {
	case r.InsertText != nil:
		return "insertText"
	case r.UpdateTextStyle != nil:
		return "updateTextStyle"
	case r.UpdateParagraphStyle != nil:
		return "updateParagraphStyle"
	case r.CreateParagraphBullets != nil:
		return "createParagraphBullets"
	case r.DeleteParagraphBullets != nil:
		return "deleteParagraphBullets"
	case r.InsertTable != nil:
		return "insertTable"
	case r.UpdateTableCellStyle != nil:
		return "updateTableCellStyle"
	case r.InsertPageBreak != nil:
		return "insertPageBreak"
	case r.DeleteContentRange != nil:
		return "deleteContentRange"
	case r.InsertInlineImage != nil:
		return "insertInlineImage"
	case r.ReplaceAllText != nil:
		return "replaceAllText"
	}
	return "unknown"
}

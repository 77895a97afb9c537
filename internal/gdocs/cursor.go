package gdocs

import (
	docs "google.golang.org/api/docs/v1"
)

// nextIndex returns the insertion index following a block's requests: the
// position of the last InsertText plus the length of its text. Style,
// bullet and table requests ride on offsets some InsertText already
// reserved and never advance the cursor. If reqs inserts no text the
// cursor stays at index.
func nextIndex(reqs []*docs.Request, index int) int {
	for i := len(reqs) - 1; i >= 0; i-- {
		if it := reqs[i].InsertText; it != nil {
			return int(it.Location.Index) + textLen(it.Text)
		}
	}
	return index
}

// paragraphEnd returns the exclusive end of a paragraph-style range for a
// line of text starting at start. Empty lines cover their own newline so the
// range is never empty.
func paragraphEnd(start int, text string) int {
	if n := textLen(text); n > 0 {
		return start + n
	}
	return start + 1
}

package buffer

import (
	"strings"

	"github.com/iw2rmb/codefield/internal/grapheme"
)

// InsertText inserts s at the cursor.
func (b *Buffer) InsertText(s string) {
	b.insert(s, OriginInput)
}

// Paste inserts externally sourced text, normalizing line endings.
func (b *Buffer) Paste(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.insert(s, OriginPaste)
}

func (b *Buffer) InsertNewline() {
	b.insert("\n", OriginInput)
}

func (b *Buffer) insert(s string, origin Origin) {
	if s == "" {
		return
	}
	b.edit(Range{Start: b.cursor, End: b.cursor}, s, origin)
}

// DeleteBackward applies backspace semantics, joining lines at column 0.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "", OriginDelete)
	case row > 0:
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "", OriginDelete)
	}
}

// DeleteForward applies delete-key semantics, joining lines at end of line.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "", OriginDelete)
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "", OriginDelete)
	}
}

func (b *Buffer) edit(r Range, text string, origin Origin) {
	prev := b.snapshot()
	versionBefore, cursorBefore := b.version, b.cursor
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.recordUndo(prev)
	b.commitChange(origin, versionBefore, cursorBefore, applied)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied Edit, changed bool) {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})
	deleted := textForRange(b.lines, r)
	if deleted == text {
		return b.cursor, Edit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	ins := splitLines(text)
	repl := make([][]string, 0, len(ins))
	for i, part := range ins {
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, part...)
		repl = append(repl, line)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: startRow + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	applied = Edit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func textForRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}

package buffer

import (
	"strings"

	"github.com/iw2rmb/codefield/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer holds document text as grapheme clusters per line, plus the cursor.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Version increments on any cursor or text change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments on text changes only.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LeadingWhitespace returns the indentation prefix of row.
func (b *Buffer) LeadingWhitespace(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	line := b.lines[row]
	n := 0
	for n < len(line) && (line[n] == " " || line[n] == "\t") {
		n++
	}
	return grapheme.Join(line[:n])
}

// SetText replaces the whole document. The cursor moves to the start.
// An OriginSetValue set also drops undo history. It returns false, and
// records nothing, when text is already the current content.
func (b *Buffer) SetText(text string, origin Origin) bool {
	before := b.Text()
	if before == text {
		return false
	}
	versionBefore, cursorBefore := b.version, b.cursor
	if origin == OriginSetValue {
		b.hist = historyState{}
	} else {
		b.recordUndo(b.snapshot())
	}
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.commitChange(origin, versionBefore, cursorBefore, Edit{
		RangeBefore: fullDocumentRange(before),
		RangeAfter:  fullDocumentRange(text),
		InsertText:  text,
		DeletedText: before,
	})
	return true
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}

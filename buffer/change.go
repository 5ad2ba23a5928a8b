package buffer

// Origin tags where a text mutation came from.
type Origin string

const (
	// OriginSetValue is reserved for whole-document programmatic sets.
	OriginSetValue Origin = "setValue"
	OriginInput    Origin = "+input"
	OriginDelete   Origin = "+delete"
	OriginPaste    Origin = "paste"
	OriginUndo     Origin = "undo"
	OriginRedo     Origin = "redo"
)

// IsUser reports whether o is anything other than a programmatic set.
func (o Origin) IsUser() bool { return o != OriginSetValue }

// Edit describes the effective replacement performed by a change.
type Edit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a versioned text mutation.
type Change struct {
	Origin        Origin
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	Edit          Edit
}

// LastChange returns the most recent text mutation.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) commitChange(origin Origin, versionBefore uint64, cursorBefore Pos, edit Edit) {
	b.version++
	b.textVersion++
	b.lastChange = Change{
		Origin:        origin,
		VersionBefore: versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cursorBefore,
		CursorAfter:   b.cursor,
		Edit:          edit,
	}
	b.hasLastChange = true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, Col: len(lines[last])}}
}

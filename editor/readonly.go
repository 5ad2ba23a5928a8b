package editor

// ReadOnly is the editor's edit-lock mode.
type ReadOnly uint8

const (
	ReadOnlyOff ReadOnly = iota
	// ReadOnlyOn blocks edits but keeps the cursor and focus.
	ReadOnlyOn
	// ReadOnlyNoCursor blocks edits, hides the cursor and refuses focus.
	ReadOnlyNoCursor
)

func (r ReadOnly) String() string {
	switch r {
	case ReadOnlyOff:
		return "off"
	case ReadOnlyOn:
		return "on"
	case ReadOnlyNoCursor:
		return "nocursor"
	default:
		return "unknown"
	}
}

// SetReadOnly switches the edit-lock mode. Entering ReadOnlyNoCursor while
// focused blurs the editor.
func (m *Model) SetReadOnly(r ReadOnly) {
	if m.readOnly == r {
		return
	}
	m.readOnly = r
	if r == ReadOnlyNoCursor && m.focused {
		m.Blur()
		return
	}
	m.rebuildContent()
}

func (m *Model) ReadOnly() ReadOnly { return m.readOnly }

func (m *Model) editable() bool { return m.readOnly == ReadOnlyOff }

package editor

import "github.com/iw2rmb/codefield/buffer"

// ChangeEvent is delivered to OnChange handlers after every text mutation.
type ChangeEvent struct {
	// Origin is buffer.OriginSetValue when the change came from SetValue.
	Origin  buffer.Origin
	Version uint64
	Cursor  buffer.Pos
	Text    string
}

// OnChange registers fn to run after each text mutation.
func (m *Model) OnChange(fn func(ChangeEvent)) {
	if fn != nil {
		m.onChange = append(m.onChange, fn)
	}
}

// OnFocus registers fn to run when the editor gains focus.
func (m *Model) OnFocus(fn func()) {
	if fn != nil {
		m.onFocus = append(m.onFocus, fn)
	}
}

// OnBlur registers fn to run when the editor loses focus.
func (m *Model) OnBlur(fn func()) {
	if fn != nil {
		m.onBlur = append(m.onBlur, fn)
	}
}

// emitChange fires change handlers if the buffer text moved since the last
// emission.
func (m *Model) emitChange() {
	tv := m.buf.TextVersion()
	if tv == m.lastTextVersion {
		return
	}
	m.lastTextVersion = tv
	ch, ok := m.buf.LastChange()
	if !ok {
		return
	}
	ev := ChangeEvent{
		Origin:  ch.Origin,
		Version: ch.VersionAfter,
		Cursor:  m.buf.Cursor(),
		Text:    m.buf.Text(),
	}
	for _, fn := range m.onChange {
		fn(ev)
	}
}

package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codefield/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// Unlike most tea models it is used through a pointer: hosts subscribe to its
// events and keep a long-lived reference to it.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	mode Highlighter

	focused  bool
	readOnly ReadOnly

	viewport viewport.Model

	onChange []func(ChangeEvent)
	onFocus  []func()
	onBlur   []func()

	lastTextVersion uint64
	lastVersion     uint64
}

// New creates an unfocused, editable editor.
func New(cfg Config) *Model {
	cfg = cfg.normalized()
	m := &Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		viewport: viewport.New(0, 0),
	}
	m.mode, _ = LookupMode(cfg.Mode)
	m.lastTextVersion = m.buf.TextVersion()
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m *Model) Buffer() *buffer.Buffer { return m.buf }

func (m *Model) Config() Config { return m.cfg }

func (m *Model) Init() tea.Cmd { return nil }

// Value returns the current buffer text.
func (m *Model) Value() string { return m.buf.Text() }

// SetValue replaces the buffer text. The resulting change event carries
// buffer.OriginSetValue; setting the current text emits nothing.
func (m *Model) SetValue(s string) {
	if !m.buf.SetText(s, buffer.OriginSetValue) {
		return
	}
	m.sync(true)
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) Width() int { return m.viewport.Width }

func (m *Model) Height() int { return m.viewport.Height }

// Focus gives the editor focus. It is a no-op in ReadOnlyNoCursor mode.
func (m *Model) Focus() {
	if m.focused || m.readOnly == ReadOnlyNoCursor {
		return
	}
	m.focused = true
	m.rebuildContent()
	m.followCursor()
	for _, fn := range m.onFocus {
		fn()
	}
}

func (m *Model) Blur() {
	if !m.focused {
		return
	}
	m.focused = false
	m.rebuildContent()
	for _, fn := range m.onBlur {
		fn()
	}
}

func (m *Model) Focused() bool { return m.focused }

func (m *Model) View() string { return m.viewport.View() }

// sync re-renders after buffer mutations and emits pending change events.
func (m *Model) sync(follow bool) {
	m.emitChange()
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.rebuildContent()
	if follow {
		m.followCursor()
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

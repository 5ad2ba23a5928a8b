package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codefield/buffer"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	case tea.KeyMsg:
		m.updateKey(msg)
		m.sync(true)
		return nil
	default:
		// Hosts may mutate the buffer directly.
		m.sync(false)
		return nil
	}
}

func (m *Model) updateKey(msg tea.KeyMsg) {
	if !m.focused {
		return
	}

	// Paste events insert literal text and never trigger bindings.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if m.editable() && len(msg.Runes) > 0 {
			m.buf.Paste(string(msg.Runes))
		}
		return
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.DirUp)
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.DirDown)
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.DirHome)
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.DirEnd)

	case !m.editable():
		return

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		indent := m.buf.LeadingWhitespace(m.buf.Cursor().Row)
		m.buf.InsertText("\n" + indent)
	case key.Matches(msg, km.Indent):
		m.buf.InsertText(strings.Repeat(" ", m.cfg.IndentUnit))
	case key.Matches(msg, km.Undo):
		_ = m.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.buf.Redo()

	default:
		if msg.Type == tea.KeySpace {
			m.buf.InsertText(" ")
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
		}
	}
}

package form

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ClassInput is the built-in single-line input component.
const ClassInput = "xforms-input"

// Input binds a bubbles textinput to a field. Like other controls it only
// writes back on blur, and only after a user edit.
type Input struct {
	ctl   *Control
	field *Field
	ti    textinput.Model

	readonly bool
	dirty    bool
}

// InputDefinition registers Input under ClassInput.
func InputDefinition() Definition {
	return Definition{New: func(ctl *Control) (Component, error) { return NewInput(ctl) }}
}

func NewInput(ctl *Control) (*Input, error) {
	field, ok := ctl.Field()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, ClassTextarea)
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &Input{ctl: ctl, field: field, ti: ti}, nil
}

func (in *Input) Value() string { return in.ti.Value() }

func (in *Input) Enabled() {
	in.ti.SetValue(in.field.Value())
	in.dirty = false
	in.readonly = in.ctl.HasClass(ClassReadonly)
}

func (in *Input) Readonly() {
	in.readonly = true
	in.Blur()
}

func (in *Input) Readwrite() { in.readonly = false }

func (in *Input) ValueChanged() {
	if in.ti.Focused() {
		return
	}
	if v := in.field.Value(); v != in.ti.Value() {
		in.ti.SetValue(v)
	}
}

func (in *Input) Focus() {
	if in.readonly || in.ti.Focused() {
		return
	}
	_ = in.ti.Focus()
}

func (in *Input) Blur() {
	if !in.ti.Focused() {
		return
	}
	in.ti.Blur()
	if in.dirty {
		in.ctl.AddClass(ClassVisited)
		in.field.SetValue(in.ti.Value())
		in.dirty = false
	}
}

func (in *Input) Focused() bool { return in.ti.Focused() }

func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && (in.readonly || !in.ti.Focused()) {
		return nil
	}
	before := in.ti.Value()
	var cmd tea.Cmd
	in.ti, cmd = in.ti.Update(msg)
	if in.ti.Value() != before {
		in.dirty = true
	}
	return cmd
}

func (in *Input) View() string { return in.ti.View() }

func (in *Input) Resize(width int) {
	in.ti.Width = max(width-len(in.ti.Prompt)-1, 1)
}

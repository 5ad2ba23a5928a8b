package codefield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codefield/editor"
	"github.com/iw2rmb/codefield/form"
)

// DefaultHeight is the pane height used when ControlSpec.Height is unset.
const DefaultHeight = 8

// Component exposes a Binding and its editor to a form.
type Component struct {
	*Binding
	editor *editor.Model
}

var (
	_ form.Component = (*Component)(nil)
	_ form.Resizer   = (*Component)(nil)
	_ Widget         = (*editor.Model)(nil)
)

// NewComponent initializes a binding on ctl with the built-in editor.
// WithWidget is ignored.
func NewComponent(ctl *form.Control, opts ...Option) (*Component, error) {
	o := resolve(opts)
	var ed *editor.Model
	b, err := New(ctl, WithWidget(func(pane *form.Pane) Widget {
		ed = newEditor(pane, o.cfg)
		return ed
	}))
	if err != nil {
		return nil, err
	}
	return &Component{Binding: b, editor: ed}, nil
}

func (c *Component) Editor() *editor.Model { return c.editor }

func (c *Component) Focus() { c.editor.Focus() }

func (c *Component) Blur() { c.editor.Blur() }

func (c *Component) Focused() bool { return c.editor.Focused() }

func (c *Component) Update(msg tea.Msg) tea.Cmd { return c.editor.Update(msg) }

func (c *Component) View() string { return c.editor.View() }

func (c *Component) Resize(width int) {
	_, h := c.pane.Size()
	c.pane.SetSize(width, h)
	c.editor.SetSize(c.pane.Size())
}

// Template lays out a code field: the bound field and the editor pane.
func Template(spec form.ControlSpec, inst *form.Instance) []form.Element {
	h := spec.Height
	if h <= 0 {
		h = DefaultHeight
	}
	return []form.Element{
		form.NewField(form.ClassTextarea, spec.Ref, inst),
		form.NewPane(ClassEditorInner, 0, h),
	}
}

// Definition declares the code field component class.
func Definition(opts ...Option) form.Definition {
	return form.Definition{
		Template: Template,
		New: func(ctl *form.Control) (form.Component, error) {
			return NewComponent(ctl, opts...)
		},
	}
}

// Register declares ClassName on f.
func Register(f *form.Form) { f.Register(ClassName, Definition()) }

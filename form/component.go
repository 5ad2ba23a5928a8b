package form

import tea "github.com/charmbracelet/bubbletea"

// Lifecycle receives the host's notifications for one control.
type Lifecycle interface {
	// Enabled is called when the control becomes active.
	Enabled()
	Readonly()
	Readwrite()
	// ValueChanged is called when the stored value changed for a reason
	// other than the control's own write.
	ValueChanged()
}

// Component is the widget side of a control.
type Component interface {
	Lifecycle

	Focus()
	Blur()
	Focused() bool

	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Resizer is implemented by components that follow the form width.
type Resizer interface {
	Resize(width int)
}

// Factory instantiates the component for a freshly built control.
type Factory func(ctl *Control) (Component, error)

// Template builds the markup of a control.
type Template func(spec ControlSpec, inst *Instance) []Element

// Definition declares a component class.
type Definition struct {
	// Template defaults to a single textarea field bound to spec.Ref.
	Template Template
	New      Factory
}

func defaultTemplate(spec ControlSpec, inst *Instance) []Element {
	return []Element{NewField(ClassTextarea, spec.Ref, inst)}
}

package codefield

import (
	"fmt"

	"github.com/iw2rmb/codefield/editor"
	"github.com/iw2rmb/codefield/form"
)

const (
	// ClassName is the component class a form declares code fields with.
	ClassName = "xbl-fr-code-mirror"
	// ClassEditorInner marks the pane the editor is attached to.
	ClassEditorInner = "xbl-fr-code-mirror-editor-inner"
)

// ErrMissingElement is returned by New when the control lacks the field or
// the editor pane.
var ErrMissingElement = form.ErrMissingElement

// Widget is the editor surface the binding drives. *editor.Model satisfies it.
type Widget interface {
	Value() string
	SetValue(string)
	SetReadOnly(editor.ReadOnly)
	OnChange(func(editor.ChangeEvent))
	OnFocus(func())
	OnBlur(func())
}

// EditorConfig is the fixed widget configuration of a code field.
func EditorConfig() editor.Config {
	return editor.Config{
		Mode:        "xml",
		LineNumbers: true,
		IndentUnit:  4,
		Style:       editor.DefaultStyle(),
	}
}

type Option func(*options)

type options struct {
	cfg       editor.Config
	newWidget func(pane *form.Pane) Widget
}

func resolve(opts []Option) options {
	o := options{cfg: EditorConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWidget replaces the editor constructor.
func WithWidget(fn func(pane *form.Pane) Widget) Option {
	return func(o *options) { o.newWidget = fn }
}

// WithEditorConfig replaces EditorConfig for the built-in editor. Hosts use
// it for plain-text fields that share the binding semantics.
func WithEditorConfig(cfg editor.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func newEditor(pane *form.Pane, cfg editor.Config) *editor.Model {
	m := editor.New(cfg)
	m.SetSize(pane.Size())
	return m
}

// Binding synchronizes a Widget with the field of one control.
type Binding struct {
	ctl    *form.Control
	field  *form.Field
	pane   *form.Pane
	widget Widget

	hasFocus                 bool
	userChangedSinceLastBlur bool
}

// New initializes a binding for ctl: it locates the field and editor pane,
// creates the widget in the pane and subscribes to its events.
func New(ctl *form.Control, opts ...Option) (*Binding, error) {
	o := resolve(opts)
	if o.newWidget == nil {
		o.newWidget = func(pane *form.Pane) Widget { return newEditor(pane, o.cfg) }
	}

	field, ok := ctl.Container().Field(form.ClassTextarea)
	if !ok {
		return nil, fmt.Errorf("%w: %s in control %q", ErrMissingElement, form.ClassTextarea, ctl.ID())
	}
	pane, ok := ctl.Container().Pane(ClassEditorInner)
	if !ok {
		return nil, fmt.Errorf("%w: %s in control %q", ErrMissingElement, ClassEditorInner, ctl.ID())
	}

	b := &Binding{ctl: ctl, field: field, pane: pane, widget: o.newWidget(pane)}
	b.widget.OnChange(b.change)
	b.widget.OnFocus(b.focus)
	b.widget.OnBlur(b.blur)
	return b, nil
}

func (b *Binding) Control() *form.Control { return b.ctl }

func (b *Binding) Widget() Widget { return b.widget }

func (b *Binding) HasFocus() bool { return b.hasFocus }

func (b *Binding) UserChangedSinceLastBlur() bool { return b.userChangedSinceLastBlur }

// Enabled loads the stored value into the widget and applies the control's
// readonly marker.
func (b *Binding) Enabled() {
	b.widget.SetValue(b.field.Value())
	if b.ctl.HasClass(form.ClassReadonly) {
		b.widget.SetReadOnly(editor.ReadOnlyNoCursor)
	} else {
		b.widget.SetReadOnly(editor.ReadOnlyOff)
	}
}

func (b *Binding) Readonly() { b.widget.SetReadOnly(editor.ReadOnlyNoCursor) }

func (b *Binding) Readwrite() { b.widget.SetReadOnly(editor.ReadOnlyOff) }

// ValueChanged copies the stored value into the widget unless the user is in
// the editor, or the value already matches (setting it would reset the
// cursor).
func (b *Binding) ValueChanged() {
	doUpdate := !b.hasFocus && b.field.Value() != b.widget.Value()
	if doUpdate {
		b.widget.SetValue(b.field.Value())
	}
}

func (b *Binding) focus() { b.hasFocus = true }

func (b *Binding) blur() {
	b.hasFocus = false
	if b.userChangedSinceLastBlur {
		b.ctl.AddClass(form.ClassVisited)
		b.field.SetValue(b.widget.Value())
		b.userChangedSinceLastBlur = false
	}
}

func (b *Binding) change(ev editor.ChangeEvent) {
	if ev.Origin.IsUser() {
		b.userChangedSinceLastBlur = true
	}
}

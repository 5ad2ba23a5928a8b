package codefield

import (
	"testing"

	"github.com/iw2rmb/codefield/buffer"
	"github.com/iw2rmb/codefield/editor"
	"github.com/iw2rmb/codefield/form"
)

// fakeWidget records what the binding asks of it and lets tests fire the
// widget's events by hand.
type fakeWidget struct {
	value string
	mode  editor.ReadOnly
	sets  []string

	onChange []func(editor.ChangeEvent)
	onFocus  []func()
	onBlur   []func()
}

func (w *fakeWidget) Value() string { return w.value }

func (w *fakeWidget) SetValue(s string) {
	w.sets = append(w.sets, s)
	if s == w.value {
		return
	}
	w.value = s
	w.emit(buffer.OriginSetValue)
}

func (w *fakeWidget) SetReadOnly(r editor.ReadOnly)        { w.mode = r }
func (w *fakeWidget) OnChange(fn func(editor.ChangeEvent)) { w.onChange = append(w.onChange, fn) }
func (w *fakeWidget) OnFocus(fn func())                    { w.onFocus = append(w.onFocus, fn) }
func (w *fakeWidget) OnBlur(fn func())                     { w.onBlur = append(w.onBlur, fn) }

func (w *fakeWidget) emit(origin buffer.Origin) {
	ev := editor.ChangeEvent{Origin: origin, Text: w.value}
	for _, fn := range w.onChange {
		fn(ev)
	}
}

// typeText simulates a user edit.
func (w *fakeWidget) typeText(s string) {
	w.value += s
	w.emit(buffer.OriginInput)
}

func (w *fakeWidget) focus() {
	for _, fn := range w.onFocus {
		fn()
	}
}

func (w *fakeWidget) blur() {
	for _, fn := range w.onBlur {
		fn()
	}
}

func newFakeBinding(t *testing.T, value string) (*Binding, *fakeWidget, *form.Instance) {
	t.Helper()
	inst := form.NewInstance(map[string]string{"doc": value})
	ctl := form.NewControl("code", ClassName, form.NewContainer(
		Template(form.ControlSpec{Ref: "doc"}, inst)...,
	))
	w := &fakeWidget{}
	b, err := New(ctl, WithWidget(func(*form.Pane) Widget { return w }))
	if err != nil {
		t.Fatalf("new binding: %v", err)
	}
	return b, w, inst
}

package form

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newInputForm(t *testing.T, value string) (*Form, *Control, *Input) {
	t.Helper()
	f := New(NewInstance(map[string]string{"name": value}))
	f.Register(ClassInput, InputDefinition())
	ctl, err := f.Add(ControlSpec{ID: "name", Class: ClassInput, Label: "Name", Ref: "name"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.Enable("name"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	return f, ctl, ctl.Component().(*Input)
}

func TestInput_EnabledLoadsStoredValue(t *testing.T) {
	_, _, in := newInputForm(t, "ada")
	if got := in.Value(); got != "ada" {
		t.Fatalf("value: got %q, want %q", got, "ada")
	}
}

func TestInput_BlurWritesOnlyAfterEdit(t *testing.T) {
	f, ctl, in := newInputForm(t, "ada")

	_ = f.Focus("name")
	f.Blur()
	if ctl.HasClass(ClassVisited) {
		t.Fatalf("blur without edit must not mark visited")
	}

	_ = f.Focus("name")
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if got := f.Instance().Value("name"); got != "ada" {
		t.Fatalf("stored value must wait for blur: got %q", got)
	}
	f.Blur()
	if got := f.Instance().Value("name"); got != "ada!" {
		t.Fatalf("stored value after blur: got %q", got)
	}
	if !ctl.HasClass(ClassVisited) {
		t.Fatalf("expected visited marker")
	}
	if in.dirty {
		t.Fatalf("dirty flag must reset after blur")
	}
}

func TestInput_ValueChangedRespectsFocus(t *testing.T) {
	f, _, in := newInputForm(t, "ada")

	_ = f.Focus("name")
	f.Instance().SetValue("name", "grace")
	if got := in.Value(); got != "ada" {
		t.Fatalf("focused input must not be overwritten: got %q", got)
	}

	f.Blur()
	f.Instance().SetValue("name", "hopper")
	if got := in.Value(); got != "hopper" {
		t.Fatalf("unfocused input must follow stored value: got %q", got)
	}
}

func TestInput_ReadonlyBlocksFocusAndKeys(t *testing.T) {
	f, _, in := newInputForm(t, "ada")
	_ = f.Focus("name")
	_ = f.SetReadonly("name", true)
	if in.Focused() {
		t.Fatalf("readonly must blur the input")
	}
	_ = f.Focus("name")
	if in.Focused() {
		t.Fatalf("readonly input must refuse focus")
	}
	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := in.Value(); got != "ada" {
		t.Fatalf("readonly input must ignore keys: got %q", got)
	}

	_ = f.SetReadonly("name", false)
	_ = f.Focus("name")
	if !in.Focused() {
		t.Fatalf("readwrite input must accept focus")
	}
}

func TestNewInput_RequiresField(t *testing.T) {
	ctl := NewControl("x", ClassInput, NewContainer(NewPane("p", 1, 1)))
	if _, err := NewInput(ctl); !errors.Is(err, ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got %v", err)
	}
}

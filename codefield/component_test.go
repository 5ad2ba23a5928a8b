package codefield

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/codefield/buffer"
	"github.com/iw2rmb/codefield/editor"
	"github.com/iw2rmb/codefield/form"
)

func newCodeForm(t *testing.T, value string, readonly bool) (*form.Form, *form.Control, *Component) {
	t.Helper()
	f := form.New(form.NewInstance(map[string]string{"doc": value}))
	Register(f)
	ctl, err := f.Add(form.ControlSpec{ID: "code", Class: ClassName, Label: "Code", Ref: "doc", Readonly: readonly})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.Enable("code"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	return f, ctl, ctl.Component().(*Component)
}

func press(f *form.Form, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		f.Update(msg)
	}
}

func TestComponent_EditAndBlurWritesStoredValue(t *testing.T) {
	f, ctl, c := newCodeForm(t, "<a/>", false)
	if got := c.Editor().Value(); got != "<a/>" {
		t.Fatalf("editor value after enable: got %q", got)
	}

	if err := f.Focus("code"); err != nil {
		t.Fatalf("focus: %v", err)
	}
	if !c.HasFocus() {
		t.Fatalf("binding must see focus")
	}
	press(f,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDelete},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("<b/></a>")},
	)
	if got := c.Editor().Value(); got != "<a><b/></a>" {
		t.Fatalf("editor value: got %q", got)
	}
	if got := f.Instance().Value("doc"); got != "<a/>" {
		t.Fatalf("stored value must wait for blur: got %q", got)
	}

	f.Blur()
	if got := f.Instance().Value("doc"); got != "<a><b/></a>" {
		t.Fatalf("stored value after blur: got %q", got)
	}
	if !ctl.HasClass(form.ClassVisited) {
		t.Fatalf("expected visited marker")
	}
	if c.UserChangedSinceLastBlur() {
		t.Fatalf("flag must reset after blur")
	}
}

func TestComponent_ExternalUpdate(t *testing.T) {
	f, _, c := newCodeForm(t, "<a/>", false)

	var origins []buffer.Origin
	c.Editor().OnChange(func(ev editor.ChangeEvent) { origins = append(origins, ev.Origin) })

	f.Instance().SetValue("doc", "<server/>")
	if got := c.Editor().Value(); got != "<server/>" {
		t.Fatalf("unfocused editor must follow the stored value: got %q", got)
	}
	if len(origins) != 1 || origins[0] != buffer.OriginSetValue {
		t.Fatalf("origins: got %v, want [setValue]", origins)
	}

	_ = f.Focus("code")
	press(f, tea.KeyMsg{Type: tea.KeyEnd})
	f.Instance().SetValue("doc", "<later/>")
	if got := c.Editor().Value(); got != "<server/>" {
		t.Fatalf("focused editor must ignore external updates: got %q", got)
	}
	if got := c.Editor().Buffer().Cursor(); got.Col != len("<server/>") {
		t.Fatalf("cursor must survive an ignored update: got %+v", got)
	}
}

func TestComponent_ReadonlyToggle(t *testing.T) {
	f, ctl, c := newCodeForm(t, "<a/>", true)
	if got := c.Editor().ReadOnly(); got != editor.ReadOnlyNoCursor {
		t.Fatalf("readonly control: got %v", got)
	}
	_ = f.Focus("code")
	if _, ok := f.Focused(); ok {
		t.Fatalf("nocursor editor must refuse focus")
	}

	if err := f.SetReadonly("code", false); err != nil {
		t.Fatalf("readwrite: %v", err)
	}
	if got := c.Editor().ReadOnly(); got != editor.ReadOnlyOff {
		t.Fatalf("readwrite: got %v", got)
	}

	_ = f.Focus("code")
	press(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if err := f.SetReadonly("code", true); err != nil {
		t.Fatalf("readonly: %v", err)
	}
	if c.Editor().Focused() || c.HasFocus() {
		t.Fatalf("switching to readonly must blur the editor")
	}
	if got := f.Instance().Value("doc"); got != "x<a/>" {
		t.Fatalf("pending edit must flush on the forced blur: got %q", got)
	}
	if !ctl.HasClass(form.ClassVisited) {
		t.Fatalf("expected visited marker")
	}
}

func TestComponent_ResizeAndView(t *testing.T) {
	f, _, c := newCodeForm(t, "<a/>", false)
	f.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if c.Editor().Width() <= 0 || c.Editor().Width() > 40 {
		t.Fatalf("editor width: got %d", c.Editor().Width())
	}
	if got := c.Editor().Height(); got != DefaultHeight {
		t.Fatalf("editor height: got %d, want %d", got, DefaultHeight)
	}
	if view := ansi.Strip(f.View()); !strings.Contains(view, "<a/>") || !strings.Contains(view, "Code") {
		t.Fatalf("view missing label or text:\n%s", view)
	}
}

func TestRegister_TemplateWithoutPaneFails(t *testing.T) {
	f := form.New(form.NewInstance(nil))
	f.Register(ClassName, form.Definition{
		Template: func(spec form.ControlSpec, inst *form.Instance) []form.Element {
			return []form.Element{form.NewField(form.ClassTextarea, spec.Ref, inst)}
		},
		New: Definition().New,
	})
	if _, err := f.Add(form.ControlSpec{ID: "code", Class: ClassName, Ref: "doc"}); !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err: got %v, want ErrMissingElement", err)
	}
}

func TestDefinition_WithEditorConfig(t *testing.T) {
	f := form.New(form.NewInstance(map[string]string{"notes": "hi"}))
	f.Register("notes", Definition(WithEditorConfig(editor.Config{Mode: "text", IndentUnit: 2})))
	ctl, err := f.Add(form.ControlSpec{ID: "notes", Class: "notes", Ref: "notes", Height: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	_ = f.Enable("notes")
	c := ctl.Component().(*Component)
	if got := c.Editor().Config().Mode; got != "text" {
		t.Fatalf("mode: got %q, want %q", got, "text")
	}
	if got := c.Editor().Value(); got != "hi" {
		t.Fatalf("value: got %q", got)
	}
	if got := c.Editor().Height(); got != 3 {
		t.Fatalf("height: got %d, want 3", got)
	}
}

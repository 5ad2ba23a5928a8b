package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder is a Component that logs lifecycle calls.
type recorder struct {
	calls      []string
	focused    bool
	refuse     bool
	keys       []string
	width      int
	lastUpdate tea.Msg
}

func (r *recorder) Enabled()      { r.calls = append(r.calls, "enabled") }
func (r *recorder) Readonly()     { r.calls = append(r.calls, "readonly") }
func (r *recorder) Readwrite()    { r.calls = append(r.calls, "readwrite") }
func (r *recorder) ValueChanged() { r.calls = append(r.calls, "value-changed") }

func (r *recorder) Focus() {
	if !r.refuse {
		r.focused = true
	}
}
func (r *recorder) Blur()         { r.focused = false }
func (r *recorder) Focused() bool { return r.focused }
func (r *recorder) Resize(w int)  { r.width = w }
func (r *recorder) View() string  { return "view" }

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	r.lastUpdate = msg
	if k, ok := msg.(tea.KeyMsg); ok {
		r.keys = append(r.keys, k.String())
	}
	return nil
}

func newRecorderForm(t testing.TB, ids ...string) (*Form, map[string]*recorder) {
	t.Helper()
	inst := NewInstance(map[string]string{"doc": "<a/>"})
	f := New(inst)
	recs := map[string]*recorder{}
	f.Register("rec", Definition{New: func(ctl *Control) (Component, error) {
		r := &recorder{}
		recs[ctl.ID()] = r
		return r, nil
	}})
	for _, id := range ids {
		if _, err := f.Add(ControlSpec{ID: id, Class: "rec", Label: id, Ref: "doc"}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	return f, recs
}

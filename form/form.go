package form

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	ErrUnknownClass     = errors.New("form: unknown component class")
	ErrDuplicateControl = errors.New("form: duplicate control id")
	ErrUnknownControl   = errors.New("form: unknown control")
	ErrMissingElement   = errors.New("form: missing element")
)

// ControlSpec declares one control of a form.
type ControlSpec struct {
	ID    string
	Class string
	Label string
	// Ref names the instance value the control is bound to.
	Ref      string
	Readonly bool
	// Height is the initial pane height for components that render into one.
	Height int
}

type Option func(*Form)

// WithLogger traces lifecycle notifications to l.
func WithLogger(l *log.Logger) Option { return func(f *Form) { f.log = l } }

func WithKeyMap(km KeyMap) Option { return func(f *Form) { f.keys = km } }

func WithStyles(st Styles) Option { return func(f *Form) { f.styles = st } }

// Form owns the controls of one instance and routes events to them.
type Form struct {
	inst     *Instance
	defs     map[string]Definition
	controls []*Control
	byID     map[string]*Control
	focus    int

	keys   KeyMap
	styles Styles
	log    *log.Logger
	width  int
}

func New(inst *Instance, opts ...Option) *Form {
	f := &Form{
		inst:   inst,
		defs:   map[string]Definition{},
		byID:   map[string]*Control{},
		focus:  -1,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(f)
	}
	inst.Observe(f.valueChanged)
	return f
}

func (f *Form) Instance() *Instance { return f.inst }

// Register declares a component class. Registering a class again replaces it.
func (f *Form) Register(class string, def Definition) {
	if def.Template == nil {
		def.Template = defaultTemplate
	}
	f.defs[class] = def
}

// Add builds a control from spec and instantiates its component. The control
// starts disabled; call Enable to activate it.
func (f *Form) Add(spec ControlSpec) (*Control, error) {
	def, ok := f.defs[spec.Class]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, spec.Class)
	}
	if _, dup := f.byID[spec.ID]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateControl, spec.ID)
	}

	ctl := NewControl(spec.ID, spec.Class, NewContainer(def.Template(spec, f.inst)...))
	ctl.label = spec.Label
	ctl.form = f
	ctl.AddClass(spec.Class)
	ctl.AddClass(ClassDisabled)
	if spec.Readonly {
		ctl.AddClass(ClassReadonly)
	}

	comp, err := def.New(ctl)
	if err != nil {
		return nil, fmt.Errorf("init control %q: %w", spec.ID, err)
	}
	ctl.component = comp
	if r, ok := comp.(Resizer); ok && f.width > 0 {
		r.Resize(f.contentWidth())
	}

	f.controls = append(f.controls, ctl)
	f.byID[spec.ID] = ctl
	f.logf("add %s (%s) ref=%q", spec.ID, spec.Class, spec.Ref)
	return ctl, nil
}

func (f *Form) Control(id string) (*Control, bool) {
	ctl, ok := f.byID[id]
	return ctl, ok
}

func (f *Form) Controls() []*Control {
	return append([]*Control(nil), f.controls...)
}

// Enable activates a control and notifies its component.
func (f *Form) Enable(id string) error {
	ctl, err := f.lookup(id)
	if err != nil {
		return err
	}
	ctl.enabled = true
	ctl.RemoveClass(ClassDisabled)
	f.logf("enabled %s", id)
	ctl.component.Enabled()
	return nil
}

func (f *Form) EnableAll() {
	for _, ctl := range f.controls {
		_ = f.Enable(ctl.id)
	}
}

// Disable deactivates a control, taking focus away from it.
func (f *Form) Disable(id string) error {
	ctl, err := f.lookup(id)
	if err != nil {
		return err
	}
	ctl.enabled = false
	ctl.AddClass(ClassDisabled)
	ctl.component.Blur()
	f.logf("disabled %s", id)
	return nil
}

// SetReadonly toggles the readonly marker. Enabled controls are notified
// when the marker actually changes.
func (f *Form) SetReadonly(id string, readonly bool) error {
	ctl, err := f.lookup(id)
	if err != nil {
		return err
	}
	if ctl.HasClass(ClassReadonly) == readonly {
		return nil
	}
	if readonly {
		ctl.AddClass(ClassReadonly)
	} else {
		ctl.RemoveClass(ClassReadonly)
	}
	if !ctl.enabled {
		return nil
	}
	if readonly {
		f.logf("readonly %s", id)
		ctl.component.Readonly()
	} else {
		f.logf("readwrite %s", id)
		ctl.component.Readwrite()
	}
	return nil
}

func (f *Form) valueChanged(ch ValueChange) {
	for _, ctl := range f.controls {
		if !ctl.enabled {
			continue
		}
		field, ok := ctl.Field()
		if !ok || field.Name() != ch.Name || field == ch.Field {
			continue
		}
		f.logf("value-changed %s (%s)", ctl.id, ch.Name)
		ctl.component.ValueChanged()
	}
}

// Focus moves focus to the control id. The component may refuse it, in
// which case no control is focused afterwards.
func (f *Form) Focus(id string) error {
	ctl, err := f.lookup(id)
	if err != nil {
		return err
	}
	for i, c := range f.controls {
		if c == ctl {
			f.focusIndex(i)
			return nil
		}
	}
	return nil
}

func (f *Form) focusIndex(i int) bool {
	if cur, ok := f.Focused(); ok && cur != f.controls[i] {
		cur.component.Blur()
	}
	f.focus = -1
	ctl := f.controls[i]
	if !ctl.enabled {
		return false
	}
	ctl.component.Focus()
	if !ctl.component.Focused() {
		return false
	}
	f.focus = i
	return true
}

// FocusNext focuses the next control that accepts focus, wrapping around.
func (f *Form) FocusNext() { f.cycle(1) }

func (f *Form) FocusPrev() { f.cycle(-1) }

func (f *Form) cycle(step int) {
	n := len(f.controls)
	if n == 0 {
		return
	}
	start := f.focus
	if start < 0 && step < 0 {
		start = 0
	}
	for k := 1; k <= n; k++ {
		i := ((start+step*k)%n + n) % n
		if f.focusIndex(i) {
			return
		}
	}
}

// Blur removes focus from the focused control, if any.
func (f *Form) Blur() {
	if cur, ok := f.Focused(); ok {
		cur.component.Blur()
	}
	f.focus = -1
}

// Focused returns the control that currently holds focus.
func (f *Form) Focused() (*Control, bool) {
	if f.focus < 0 || f.focus >= len(f.controls) {
		return nil, false
	}
	ctl := f.controls[f.focus]
	if !ctl.component.Focused() {
		return nil, false
	}
	return ctl, true
}

func (f *Form) Init() tea.Cmd { return nil }

func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			f.FocusNext()
			return nil
		case key.Matches(msg, f.keys.Prev):
			f.FocusPrev()
			return nil
		case key.Matches(msg, f.keys.Blur):
			f.Blur()
			return nil
		}
		if ctl, ok := f.Focused(); ok {
			return ctl.component.Update(msg)
		}
		return nil
	case tea.WindowSizeMsg:
		f.width = msg.Width
		for _, ctl := range f.controls {
			if r, ok := ctl.component.(Resizer); ok {
				r.Resize(f.contentWidth())
			}
		}
		return nil
	default:
		cmds := make([]tea.Cmd, 0, len(f.controls))
		for _, ctl := range f.controls {
			cmds = append(cmds, ctl.component.Update(msg))
		}
		return tea.Batch(cmds...)
	}
}

func (f *Form) contentWidth() int {
	return max(f.width-f.styles.Frame.GetHorizontalFrameSize(), 0)
}

func (f *Form) View() string {
	focused, _ := f.Focused()
	blocks := make([]string, 0, len(f.controls))
	for _, ctl := range f.controls {
		if !ctl.enabled {
			continue
		}
		label, frame := f.styles.Label, f.styles.Frame
		if ctl == focused {
			label, frame = f.styles.LabelFocused, f.styles.FrameFocused
		}
		head := label.Render(ctl.label)
		if m := markerText(ctl); m != "" {
			head += " " + f.styles.Marker.Render(m)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, head, frame.Render(ctl.component.View())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func markerText(ctl *Control) string {
	var parts []string
	if ctl.HasClass(ClassReadonly) {
		parts = append(parts, "readonly")
	}
	if ctl.HasClass(ClassVisited) {
		parts = append(parts, "visited")
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *Form) lookup(id string) (*Control, error) {
	ctl, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return ctl, nil
}

func (f *Form) logf(format string, args ...any) {
	if f.log != nil {
		f.log.Printf("form: "+format, args...)
	}
}

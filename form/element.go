package form

// Element is one piece of a control's markup, addressed by class.
type Element interface {
	Class() string
}

// Field is the element bound to a stored value in the instance.
type Field struct {
	class string
	name  string
	inst  *Instance
}

func NewField(class, name string, inst *Instance) *Field {
	return &Field{class: class, name: name, inst: inst}
}

func (f *Field) Class() string { return f.class }

// Name is the instance name the field is bound to.
func (f *Field) Name() string { return f.name }

func (f *Field) Value() string { return f.inst.Value(f.name) }

// SetValue writes through to the instance. Observers see this field as the
// writer.
func (f *Field) SetValue(v string) { f.inst.set(f.name, v, f) }

// Pane is an element a widget renders into.
type Pane struct {
	class  string
	width  int
	height int
}

func NewPane(class string, width, height int) *Pane {
	return &Pane{class: class, width: width, height: height}
}

func (p *Pane) Class() string { return p.class }

func (p *Pane) Size() (width, height int) { return p.width, p.height }

func (p *Pane) SetSize(width, height int) {
	p.width, p.height = max(width, 0), max(height, 0)
}

// Container is the root element of a control.
type Container struct {
	elems []Element
}

func NewContainer(elems ...Element) *Container {
	return &Container{elems: elems}
}

func (c *Container) Append(e Element) { c.elems = append(c.elems, e) }

// Find returns the first element carrying class.
func (c *Container) Find(class string) (Element, bool) {
	for _, e := range c.elems {
		if e != nil && e.Class() == class {
			return e, true
		}
	}
	return nil, false
}

func (c *Container) Field(class string) (*Field, bool) {
	e, ok := c.Find(class)
	if !ok {
		return nil, false
	}
	f, ok := e.(*Field)
	return f, ok
}

func (c *Container) Pane(class string) (*Pane, bool) {
	e, ok := c.Find(class)
	if !ok {
		return nil, false
	}
	p, ok := e.(*Pane)
	return p, ok
}

package form

import "sort"

// Control is one control instance rendered in a form.
type Control struct {
	id        string
	class     string
	label     string
	form      *Form
	container *Container
	markers   map[string]bool

	component Component
	enabled   bool
}

// NewControl builds a detached control. Controls added through Form.Add are
// attached to that form.
func NewControl(id, class string, container *Container) *Control {
	if container == nil {
		container = NewContainer()
	}
	return &Control{
		id:        id,
		class:     class,
		container: container,
		markers:   map[string]bool{},
	}
}

func (c *Control) ID() string { return c.id }

// Class is the component class the control was declared with.
func (c *Control) Class() string { return c.class }

func (c *Control) Label() string { return c.label }

// Form returns the form the control belongs to, or nil when detached.
func (c *Control) Form() *Form { return c.form }

func (c *Control) Container() *Container { return c.container }

func (c *Control) Component() Component { return c.component }

func (c *Control) Enabled() bool { return c.enabled }

// Field returns the control's bound field element.
func (c *Control) Field() (*Field, bool) { return c.container.Field(ClassTextarea) }

func (c *Control) HasClass(class string) bool { return c.markers[class] }

func (c *Control) AddClass(class string) { c.markers[class] = true }

func (c *Control) RemoveClass(class string) { delete(c.markers, class) }

// Classes returns the marker classes in sorted order.
func (c *Control) Classes() []string {
	out := make([]string, 0, len(c.markers))
	for k := range c.markers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

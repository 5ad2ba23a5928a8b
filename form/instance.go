package form

import (
	"sort"

	"github.com/google/uuid"
)

// ValueChange is delivered to instance observers.
type ValueChange struct {
	Name string
	Old  string
	New  string
	// Field is the element that wrote the value, or nil for writes made
	// directly on the instance (server pushes, loaders).
	Field *Field
}

// Instance holds the authoritative stored values of a form.
type Instance struct {
	id        uuid.UUID
	values    map[string]string
	observers []func(ValueChange)
}

func NewInstance(values map[string]string) *Instance {
	return NewInstanceWithID(uuid.New(), values)
}

// NewInstanceWithID is used when restoring a persisted instance.
func NewInstanceWithID(id uuid.UUID, values map[string]string) *Instance {
	inst := &Instance{id: id, values: make(map[string]string, len(values))}
	for k, v := range values {
		inst.values[k] = v
	}
	return inst
}

func (i *Instance) ID() uuid.UUID { return i.id }

// Value returns the stored value for name, or "" if absent.
func (i *Instance) Value(name string) string { return i.values[name] }

func (i *Instance) Lookup(name string) (string, bool) {
	v, ok := i.values[name]
	return v, ok
}

// SetValue stores v under name and notifies observers. Storing the current
// value of an existing name is a no-op.
func (i *Instance) SetValue(name, v string) { i.set(name, v, nil) }

func (i *Instance) set(name, v string, from *Field) {
	old, ok := i.values[name]
	if ok && old == v {
		return
	}
	i.values[name] = v
	ch := ValueChange{Name: name, Old: old, New: v, Field: from}
	for _, fn := range i.observers {
		fn(ch)
	}
}

// Names returns the stored names in sorted order.
func (i *Instance) Names() []string {
	names := make([]string, 0, len(i.values))
	for k := range i.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Values returns a copy of all stored values.
func (i *Instance) Values() map[string]string {
	out := make(map[string]string, len(i.values))
	for k, v := range i.values {
		out[k] = v
	}
	return out
}

func (i *Instance) Observe(fn func(ValueChange)) {
	if fn != nil {
		i.observers = append(i.observers, fn)
	}
}

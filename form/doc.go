// Package form is the host side of a rendered form: an instance holding the
// stored values, controls that bind markup elements to those values, and a
// Form that drives control lifecycles (enabled, readonly, readwrite,
// value-changed) and focus on the Bubble Tea event loop.
//
// Components plug in by class name through Register, the same way a page
// declares widget classes for its controls.
package form

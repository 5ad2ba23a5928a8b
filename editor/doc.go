// Package editor provides a Bubble Tea code editor widget backed by the
// buffer package.
//
// The widget owns input handling, scrolling, line-number gutter, syntax
// modes and read-only modes. Hosts talk to it through a small surface:
// Value/SetValue, SetReadOnly, Focus/Blur and the change, focus and blur
// event subscriptions.
package editor

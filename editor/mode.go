package editor

import "sync"

var (
	modesMu sync.RWMutex
	modes   = map[string]Highlighter{
		"text": nil,
		"xml":  XMLHighlighter{},
	}
)

// RegisterMode makes h available under name. A nil h registers a plain mode.
func RegisterMode(name string, h Highlighter) {
	modesMu.Lock()
	defer modesMu.Unlock()
	modes[name] = h
}

// LookupMode returns the highlighter registered for name. ok is false for
// unknown modes, which render as plain text.
func LookupMode(name string) (h Highlighter, ok bool) {
	modesMu.RLock()
	defer modesMu.RUnlock()
	h, ok = modes[name]
	return h, ok
}

package editor

import tea "github.com/charmbracelet/bubbletea"

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyDown() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }

func keyRight() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRight} }

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

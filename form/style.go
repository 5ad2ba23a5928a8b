package form

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Marker       lipgloss.Style
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
}

func DefaultStyles() Styles {
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	return Styles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Marker:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Frame:        frame,
		FrameFocused: frame.BorderForeground(lipgloss.Color("39")),
	}
}

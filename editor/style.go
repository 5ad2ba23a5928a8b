package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Token styles used by syntax modes.
	Tag       lipgloss.Style
	Attribute lipgloss.Style
	String    lipgloss.Style
	Comment   lipgloss.Style
	Entity    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Tag:           lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Attribute:     lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
		String:        lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		Comment:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Entity:        lipgloss.NewStyle().Foreground(lipgloss.Color("133")),
	}
}

func (s Style) token(kind TokenKind) lipgloss.Style {
	switch kind {
	case TokenTag:
		return s.Tag.Inherit(s.Text)
	case TokenAttribute:
		return s.Attribute.Inherit(s.Text)
	case TokenString:
		return s.String.Inherit(s.Text)
	case TokenComment:
		return s.Comment.Inherit(s.Text)
	case TokenEntity:
		return s.Entity.Inherit(s.Text)
	default:
		return s.Text
	}
}

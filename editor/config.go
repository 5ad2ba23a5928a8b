package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Mode selects a registered syntax mode ("xml", "text", ...).
	// Unknown modes render as plain text.
	Mode string

	LineNumbers bool

	// IndentUnit is the number of spaces inserted by Tab. Default: 2.
	IndentUnit int
	// TabWidth is the rendered width of a tab character. Default: IndentUnit.
	TabWidth int

	Style  Style
	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) normalized() Config {
	if c.IndentUnit <= 0 {
		c.IndentUnit = 2
	}
	if c.TabWidth <= 0 {
		c.TabWidth = c.IndentUnit
	}
	if len(c.KeyMap.Enter.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

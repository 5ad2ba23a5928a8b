package editor

import "fmt"

func (m *Model) renderGutter(row, digits int, active bool) string {
	st := m.cfg.Style
	numStyle := st.LineNum
	if active {
		numStyle = st.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + st.Gutter.Render(" ")
}

// GutterWidth returns the cells taken by the line-number gutter for
// lineCount lines, or 0 when line numbers are disabled.
func (m *Model) GutterWidth() int {
	if !m.cfg.LineNumbers {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	digits := 0
	for n := lineCount; n > 0; n /= 10 {
		digits++
	}
	return digits
}

package editor

import (
	"strings"

	"github.com/iw2rmb/codefield/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	digits := 0
	if m.cfg.LineNumbers {
		digits = gutterDigits(n)
	}
	first, last := m.visibleRows(n)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.LineNumbers {
			sb.WriteString(m.renderGutter(row, digits, m.focused && row == cursor.Row))
		}

		line := m.buf.Line(row)
		var spans []HighlightSpan
		if row >= first && row < last {
			spans = m.highlightLine(row, line)
		}
		cursorCol := -1
		if m.focused && row == cursor.Row {
			cursorCol = cursor.Col
		}
		sb.WriteString(m.renderLine(line, spans, cursorCol))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// visibleRows returns the rows that get syntax highlighting.
func (m *Model) visibleRows(n int) (first, last int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return 0, 0
	}
	first = clampInt(m.viewport.YOffset, 0, n)
	last = clampInt(first+h, first, n)
	return first, last
}

func (m *Model) highlightLine(row int, line string) []HighlightSpan {
	if m.mode == nil {
		return nil
	}
	spans, err := m.mode.HighlightLine(LineContext{Row: row, Text: line})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, grapheme.Count(line))
}

const cursorRun = -1

func (m *Model) renderLine(line string, spans []HighlightSpan, cursorCol int) string {
	st := m.cfg.Style
	clusters := grapheme.Split(line)

	var sb, run strings.Builder
	runKind := int(TokenText)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := st.Cursor
		if runKind != cursorRun {
			style = st.token(TokenKind(runKind))
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	visualCol, spanIdx := 0, 0
	for i, g := range clusters {
		for spanIdx < len(spans) && spans[spanIdx].EndCol <= i {
			spanIdx++
		}
		kind := int(TokenText)
		if spanIdx < len(spans) && spans[spanIdx].StartCol <= i {
			kind = int(spans[spanIdx].Kind)
		}
		if i == cursorCol {
			kind = cursorRun
		}
		if kind != runKind || kind == cursorRun {
			flush()
			runKind = kind
		}

		w := grapheme.Width(g, visualCol, m.cfg.TabWidth)
		if g == "\t" {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteString(g)
		}
		visualCol += w
	}
	flush()

	// Cursor at end of line is drawn as a one-cell placeholder.
	if cursorCol >= len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

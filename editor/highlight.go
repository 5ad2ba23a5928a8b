package editor

import "sort"

// TokenKind classifies a highlighted span. The editor maps kinds to Style.
type TokenKind uint8

const (
	TokenText TokenKind = iota
	TokenTag
	TokenAttribute
	TokenString
	TokenComment
	TokenEntity
)

// HighlightSpan covers grapheme columns [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Kind     TokenKind
}

type LineContext struct {
	Row  int
	Text string
}

// Highlighter produces spans for a single line.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return f(ctx)
}

// normalizeHighlightSpans clamps spans to the line, sorts them and drops
// overlaps so that the first span in document order wins.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Kind: sp.Kind})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := out[:0]
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

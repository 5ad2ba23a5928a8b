package editor

import "github.com/iw2rmb/codefield/internal/grapheme"

// XMLHighlighter is the built-in "xml" mode. It works line by line: a tag or
// comment that spans lines is only highlighted on the line where it opens.
type XMLHighlighter struct{}

func (XMLHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	c := grapheme.Split(ctx.Text)
	var spans []HighlightSpan
	inTag := false

	for i := 0; i < len(c); {
		if !inTag {
			switch {
			case hasPrefixAt(c, i, "<!--"):
				end := indexFrom(c, i+4, "-->")
				if end < 0 {
					end = len(c)
				} else {
					end += 3
				}
				spans = append(spans, HighlightSpan{StartCol: i, EndCol: end, Kind: TokenComment})
				i = end
			case c[i] == "<":
				j := i + 1
				if j < len(c) && (c[j] == "/" || c[j] == "?" || c[j] == "!") {
					j++
				}
				j = scanName(c, j)
				spans = append(spans, HighlightSpan{StartCol: i, EndCol: j, Kind: TokenTag})
				inTag = true
				i = j
			case c[i] == "&":
				end := indexFrom(c, i+1, ";")
				if end < 0 || end-i > 10 {
					i++
					continue
				}
				spans = append(spans, HighlightSpan{StartCol: i, EndCol: end + 1, Kind: TokenEntity})
				i = end + 1
			default:
				i++
			}
			continue
		}

		switch {
		case c[i] == ">":
			spans = append(spans, HighlightSpan{StartCol: i, EndCol: i + 1, Kind: TokenTag})
			inTag = false
			i++
		case hasPrefixAt(c, i, "/>") || hasPrefixAt(c, i, "?>"):
			spans = append(spans, HighlightSpan{StartCol: i, EndCol: i + 2, Kind: TokenTag})
			inTag = false
			i += 2
		case c[i] == `"` || c[i] == "'":
			end := indexFrom(c, i+1, c[i])
			if end < 0 {
				end = len(c)
			} else {
				end++
			}
			spans = append(spans, HighlightSpan{StartCol: i, EndCol: end, Kind: TokenString})
			i = end
		case c[i] == "=" || grapheme.IsSpace(c[i]):
			i++
		default:
			j := scanName(c, i)
			if j == i {
				j++
			}
			spans = append(spans, HighlightSpan{StartCol: i, EndCol: j, Kind: TokenAttribute})
			i = j
		}
	}
	return spans, nil
}

func scanName(c []string, i int) int {
	for i < len(c) {
		switch g := c[i]; {
		case grapheme.IsSpace(g), g == ">", g == "/", g == "=", g == "<", g == `"`, g == "'":
			return i
		case g == "?" && i+1 < len(c) && c[i+1] == ">":
			return i
		}
		i++
	}
	return i
}

func hasPrefixAt(c []string, i int, p string) bool {
	for k, r := range []rune(p) {
		if i+k >= len(c) || c[i+k] != string(r) {
			return false
		}
	}
	return true
}

// indexFrom returns the column where p starts at or after i, or -1.
func indexFrom(c []string, i int, p string) int {
	for ; i < len(c); i++ {
		if hasPrefixAt(c, i, p) {
			return i
		}
	}
	return -1
}

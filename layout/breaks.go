package layout

import "unicode"

// breakClass is the line breaking behaviour of a rune.
type breakClass int

const (
	breakOther breakClass = iota
	breakSpace
	breakZero // zero width space
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

func classifyRune(r rune) breakClass {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return breakOther // no-break spaces
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018', '\u00AB',
		'\u300C', '\u300E', '\uFF08':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019', '\u00BB',
		'\u3001', '\u3002', '\u300D', '\u300F',
		'\uFF09', '\uFF0C', '\uFF0E', '\uFF1A', '\uFF1B', '\uFF01', '\uFF1F':
		return breakClose
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen
	}
	switch {
	case unicode.IsSpace(r):
		return breakSpace
	case isCJK(r):
		return breakIdeographic
	}
	return breakOther
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul syllables
		(r >= 0xFF00 && r <= 0xFFEF) // fullwidth forms
}

// canBreakBefore reports whether a line may end between prev and cur.
// A break after spaces or a hyphen leaves them on the first line.
func canBreakBefore(prev, cur rune) bool {
	pc, cc := classifyRune(prev), classifyRune(cur)
	switch {
	case cc == breakSpace || cc == breakClose:
		return false
	case pc == breakOpen:
		return false
	case pc == breakSpace || pc == breakZero:
		return true
	case pc == breakHyphen:
		return unicode.IsLetter(cur)
	case pc == breakIdeographic || cc == breakIdeographic:
		return true
	}
	return false
}

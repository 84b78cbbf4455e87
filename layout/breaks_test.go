package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanBreakBefore(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur rune
		want      bool
	}{
		{"inside word", 'a', 'b', false},
		{"after space", ' ', 'b', true},
		{"before space", 'a', ' ', false},
		{"after tab", '\t', 'b', true},
		{"after no-break space", '\u00A0', 'b', false},
		{"after zero width space", '\u200B', 'b', true},
		{"after hyphen", '-', 'b', true},
		{"hyphen before digit", '-', '1', false},
		{"double hyphen", '-', '-', false},
		{"after em dash", '—', 'b', true},
		{"after open paren", '(', 'b', false},
		{"before close paren", 'a', ')', false},
		{"space before open paren", ' ', '(', true},
		{"between ideographs", '日', '本', true},
		{"latin before ideograph", 'a', '日', true},
		{"ideograph before full stop", '日', '。', false},
		{"after corner bracket", '「', '日', false},
		{"between hiragana", 'あ', 'い', true},
		{"between hangul", '한', '글', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canBreakBefore(tt.prev, tt.cur))
		})
	}
}

func TestClassifyRune(t *testing.T) {
	tests := []struct {
		r    rune
		want breakClass
	}{
		{'a', breakOther},
		{' ', breakSpace},
		{'\u00A0', breakOther},
		{'\u200B', breakZero},
		{'[', breakOpen},
		{'”', breakClose},
		{'‐', breakHyphen},
		{'中', breakIdeographic},
		{'\U00020001', breakIdeographic},
		{'Ａ', breakIdeographic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRune(tt.r), "%U", tt.r)
	}
}

func TestTrimSpace(t *testing.T) {
	assert.Equal(t, 3, trimSpace("abc  d", 0, 5))
	assert.Equal(t, 2, trimSpace("  ", 2, 2))
	assert.Equal(t, 1, trimSpace("a\u3000", 0, 4))
}

package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/underline/text"
)

func TestFontsByName(t *testing.T) {
	tests := []struct {
		name   string
		family string
	}{
		{"default", ""},
		{"go", FamilyGo},
		{"latin modern", FamilyLatinModern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FontsByName(tt.family)
			require.NoError(t, err)
			for _, src := range []*text.FontSource{f.Regular, f.Bold, f.Italic, f.Mono} {
				assert.NotNil(t, src)
			}
			assert.NotSame(t, f.Regular, f.Bold)
			assert.Positive(t, f.Paint(20).MeasureText("abc", 0, 3))
		})
	}
}

func TestFontsByNameUnknown(t *testing.T) {
	_, err := FontsByName("comic")
	require.ErrorIs(t, err, ErrUnknownFont)
	assert.Contains(t, err.Error(), `"comic"`)
}

func TestLatinModernDiffersFromGo(t *testing.T) {
	gof, err := DefaultFonts()
	require.NoError(t, err)
	lm, err := LatinModernFonts()
	require.NoError(t, err)

	assert.NotEqual(t, gof.Regular.Name(), lm.Regular.Name())
}

package text

import (
	"sync"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	src := testSource(t)

	glyphs := src.Shape([]rune("abc"), 36)
	require.Len(t, glyphs, 3)

	for i, g := range glyphs {
		assert.Equal(t, i, g.Cluster)
		assert.NotZero(t, g.ID)
		assert.Positive(t, g.Advance)
	}
	assert.Zero(t, glyphs[0].X)
	assert.InDelta(t, glyphs[0].X+glyphs[0].Advance, glyphs[1].X, 1e-9)
	assert.InDelta(t, glyphs[1].X+glyphs[1].Advance, glyphs[2].X, 1e-9)
}

func TestShapeEmpty(t *testing.T) {
	src := testSource(t)
	assert.Nil(t, src.Shape(nil, 36))
	assert.Nil(t, src.Shape([]rune("abc"), 0))
}

func TestShapeScalesWithSize(t *testing.T) {
	src := testSource(t)
	small := advance(src.Shape([]rune("Hello"), 18))
	large := advance(src.Shape([]rune("Hello"), 36))
	assert.InDelta(t, 2*small, large, 0.2)
}

func TestShapeConcurrent(t *testing.T) {
	src := testSource(t)
	want := advance(src.Shape([]rune("elegant underline"), 24))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				got := advance(src.Shape([]rune("elegant underline"), 24))
				assert.InDelta(t, want, got, 1e-9)
			}
		}()
	}
	wg.Wait()
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name  string
		runes string
		want  language.Script
	}{
		{"latin", "abc", language.Latin},
		{"leading spaces", "  abc", language.Latin},
		{"cyrillic", "привет", language.Cyrillic},
		{"greek", "λόγος", language.Greek},
		{"blank", "   ", language.Latin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectScript([]rune(tt.runes)))
		})
	}
}

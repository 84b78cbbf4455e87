package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/decoration"
	"github.com/gogpu/underline/text"
)

func TestDefault(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())
	assert.Equal(t, underline.DefaultParams(), f.Params())

	align, err := f.TextAlign()
	require.NoError(t, err)
	assert.Equal(t, text.AlignLeft, align)

	state, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, decoration.DemoElegantUnderline, state)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"underline.yaml", FormatYAML, false},
		{"underline.YML", FormatYAML, false},
		{"dir/underline.toml", FormatTOML, false},
		{"underline.json", 0, true},
		{"underline", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYAMLKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte("alpha: 200\nwidth: 320\nalign: center\n"), FormatYAML)
	require.NoError(t, err)

	want := Default()
	want.Alpha = 200
	want.Width = 320
	want.Align = "center"
	assert.Equal(t, want, f)
}

func TestParseTOML(t *testing.T) {
	src := `
clearance_ratio = 0.2
text_size = 48.0
demo_state = "intersections"
`
	f, err := Parse([]byte(src), FormatTOML)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, f.ClearanceRatio, 1e-12)
	assert.InDelta(t, 48.0, f.TextSize, 1e-12)

	state, err := f.State()
	require.NoError(t, err)
	assert.Equal(t, decoration.DemoIntersections, state)
	assert.Equal(t, Default().Width, f.Width)
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		f, err := Parse(nil, format)
		require.NoError(t, err, format.String())
		assert.Equal(t, Default(), f)
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("colour: red\n"), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte("colour = \"red\"\n"), FormatTOML)
	require.Error(t, err)
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse(nil, Format(9))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, "unknown", Format(9).String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
		want   error
	}{
		{"zero offset ratio", func(f *File) { f.UnderlineOffsetRatio = 0 }, underline.ErrInvalidParams},
		{"negative stroke", func(f *File) { f.UnderlineStrokeRatio = -1 }, underline.ErrInvalidParams},
		{"negative min size", func(f *File) { f.MinTextSize = -1 }, underline.ErrInvalidParams},
		{"zero width", func(f *File) { f.Width = 0 }, ErrInvalid},
		{"zero text size", func(f *File) { f.TextSize = 0 }, ErrInvalid},
		{"negative padding", func(f *File) { f.Padding = -2 }, ErrInvalid},
		{"bad align", func(f *File) { f.Align = "justify" }, ErrInvalid},
		{"bad state", func(f *File) { f.DemoState = "sparkly" }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.mutate(f)
			require.ErrorIs(t, f.Validate(), tt.want)
		})
	}
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		in   string
		want text.Align
	}{
		{"left", text.AlignLeft},
		{"Center", text.AlignCenter},
		{"RIGHT", text.AlignRight},
	}
	for _, tt := range tests {
		f := Default()
		f.Align = tt.in
		got, err := f.TextAlign()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "underline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("font: lmroman\npadding: 0\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lmroman", f.Font)
	assert.Zero(t, f.Padding)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "underline.ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = -5\n"), 0o600))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), bad)
}

func TestMarshalParsesBack(t *testing.T) {
	f := Default()
	f.Alpha = 90
	f.DemoState = "wide"
	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := f.Marshal(format)
		require.NoError(t, err)
		got, err := Parse(data, format)
		require.NoError(t, err, string(data))
		assert.Equal(t, f, got, format.String())
	}

	data, err := f.Marshal(FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "underline_offset_ratio:")

	_, err = f.Marshal(Format(7))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

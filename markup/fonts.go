package markup

import (
	"errors"
	"fmt"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/underline/text"
)

// ErrUnknownFont is returned by FontsByName for an unknown font family.
var ErrUnknownFont = errors.New("markup: unknown font family")

// Font family names accepted by FontsByName.
const (
	FamilyGo          = "go"
	FamilyLatinModern = "lmroman"
)

// Fonts is the set of faces a document is styled with.
type Fonts struct {
	Regular *text.FontSource
	Bold    *text.FontSource
	Italic  *text.FontSource
	Mono    *text.FontSource
}

// DefaultFonts returns the Go font family.
func DefaultFonts() (*Fonts, error) {
	return loadFonts(goregular.TTF, gobold.TTF, goitalic.TTF, gomono.TTF)
}

// LatinModernFonts returns the Latin Modern Roman family at its 10pt
// design size, with Latin Modern Mono for code.
func LatinModernFonts() (*Fonts, error) {
	return loadFonts(lmroman10regular.TTF, lmroman10bold.TTF, lmroman10italic.TTF, lmmono10regular.TTF)
}

// FontsByName returns the font family called name. An empty name selects
// the Go fonts.
func FontsByName(name string) (*Fonts, error) {
	switch name {
	case "", FamilyGo:
		return DefaultFonts()
	case FamilyLatinModern:
		return LatinModernFonts()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
}

func loadFonts(regular, bold, italic, mono []byte) (*Fonts, error) {
	var f Fonts
	for _, face := range []struct {
		dst  **text.FontSource
		data []byte
		name string
	}{
		{&f.Regular, regular, "regular"},
		{&f.Bold, bold, "bold"},
		{&f.Italic, italic, "italic"},
		{&f.Mono, mono, "mono"},
	} {
		src, err := text.NewFontSource(face.data)
		if err != nil {
			return nil, fmt.Errorf("markup: load %s face: %w", face.name, err)
		}
		*face.dst = src
	}
	return &f, nil
}

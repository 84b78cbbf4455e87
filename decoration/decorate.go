package decoration

import (
	"fmt"

	"github.com/gogpu/underline/styled"
)

// Decorate attaches a Shim over the whole of t, unless one is already
// there, and returns it.
func Decorate(t *styled.Text) (*Shim, error) {
	for _, sp := range styled.Find[*Shim](t, 0, t.Len()) {
		if sp.Start == 0 && sp.End == t.Len() {
			return sp.Style, nil
		}
	}
	shim := NewShim()
	if err := t.SetSpan(shim, 0, t.Len()); err != nil {
		return nil, fmt.Errorf("decoration: attach shim: %w", err)
	}
	return shim, nil
}

// Link attaches an Anchor for url over [start, end) of t and makes sure t
// carries a Shim.
func Link(t *styled.Text, url string, start, end int, opts ...AnchorOption) (*Anchor, error) {
	a := NewAnchor(url, opts...)
	if err := t.SetSpan(a, start, end); err != nil {
		return nil, fmt.Errorf("decoration: attach anchor: %w", err)
	}
	if _, err := Decorate(t); err != nil {
		return nil, err
	}
	return a, nil
}

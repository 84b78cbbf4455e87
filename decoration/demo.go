package decoration

// DemoState selects what an Anchor draws. Every state shares the same
// geometry; only the path that is filled changes.
type DemoState int

const (
	// DemoNone draws nothing.
	DemoNone DemoState = iota

	// DemoSimpleUnderline draws the uncut underline.
	DemoSimpleUnderline

	// DemoWideUnderline draws the clearance band in the debug color.
	DemoWideUnderline

	// DemoIntersections draws the halo around the ink crossing the band
	// in the debug color.
	DemoIntersections

	// DemoElegantUnderline draws the carved underline (default).
	DemoElegantUnderline

	demoStateCount
)

// Next returns the state that follows s, wrapping around after the last one.
func (s DemoState) Next() DemoState {
	return (s + 1) % demoStateCount
}

// String returns a human readable description of the state.
func (s DemoState) String() string {
	switch s {
	case DemoNone:
		return "no underline"
	case DemoSimpleUnderline:
		return "simple underline"
	case DemoWideUnderline:
		return "wider underline to give space"
	case DemoIntersections:
		return "find intersections"
	case DemoElegantUnderline:
		return "elegant underline (remove intersections)"
	default:
		return "unknown"
	}
}

// ParseDemoState returns the state whose name is name. Names are the
// short identifiers none, simple, wide, intersections and elegant.
func ParseDemoState(name string) (DemoState, bool) {
	switch name {
	case "none":
		return DemoNone, true
	case "simple":
		return DemoSimpleUnderline, true
	case "wide":
		return DemoWideUnderline, true
	case "intersections":
		return DemoIntersections, true
	case "elegant", "":
		return DemoElegantUnderline, true
	default:
		return DemoElegantUnderline, false
	}
}

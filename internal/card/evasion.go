package card

// Footprint defaults used when the host cannot measure the rendered control.
const (
	DefaultControlWidth  = 160
	DefaultControlHeight = 80
)

// ViewportBounds is the host's drawable area at the moment of a decline.
type ViewportBounds struct {
	Width, Height float64
}

// Footprint is the rendered size of the evasive control.
type Footprint struct {
	Width, Height float64
}

// orDefault substitutes the default size for unmeasured dimensions.
func (f Footprint) orDefault() Footprint {
	if f.Width <= 0 {
		f.Width = DefaultControlWidth
	}
	if f.Height <= 0 {
		f.Height = DefaultControlHeight
	}
	return f
}

// Position is a top-left coordinate inside the viewport.
type Position struct {
	X, Y float64
}

// EvasionState tracks how often the control has dodged and where it went.
// A nil EscapePosition means the control sits at its in-flow layout spot.
type EvasionState struct {
	DodgeCount     int
	EscapePosition *Position
}

// Decline returns the state after one more dodge. The count saturates at
// tauntCount-1 and the new position stays within vp minus the footprint.
// Degenerate bounds collapse the position to (0,0).
func (s EvasionState) Decline(src Source, vp ViewportBounds, fp Footprint, tauntCount int) EvasionState {
	fp = fp.orDefault()

	next := s.DodgeCount + 1
	if limit := tauntCount - 1; next > limit {
		next = limit
	}
	if next < 0 {
		next = 0
	}

	pos := Position{
		X: span(vp.Width - fp.Width).Draw(src),
		Y: span(vp.Height - fp.Height).Draw(src),
	}
	return EvasionState{DodgeCount: next, EscapePosition: &pos}
}

// Escaped reports whether the control has left its in-flow position.
func (s EvasionState) Escaped() bool {
	return s.EscapePosition != nil
}

func span(extent float64) Range {
	if extent <= 0 {
		return Range{}
	}
	return Range{0, extent}
}

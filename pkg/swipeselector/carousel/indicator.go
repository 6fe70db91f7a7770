package carousel

// Marker is one dot in the indicator strip.
type Marker struct {
	Active bool
}

// IndicatorStrip is the row of position markers, one per item.
//
// The strip is built lazily, once per item store generation, on the first
// SetActive after a reset. Later calls restyle only the previously active and
// newly active markers.
type IndicatorStrip struct {
	markers    []Marker
	active     int
	built      bool
	generation int
	builds     int
}

// reset discards the markers so the next SetActive rebuilds them for the
// given store generation.
func (s *IndicatorStrip) reset(generation int) {
	s.markers = nil
	s.active = -1
	s.built = false
	s.generation = generation
}

// setActive marks position as the active marker. count is the number of
// items in the current generation and is only consulted when building.
func (s *IndicatorStrip) setActive(count, position int) {
	if !s.built {
		s.markers = make([]Marker, count)
		for i := range s.markers {
			s.markers[i].Active = i == position
		}
		s.active = position
		s.built = true
		s.builds++
		return
	}

	if position == s.active || position < 0 || position >= len(s.markers) {
		return
	}
	if s.active >= 0 && s.active < len(s.markers) {
		s.markers[s.active].Active = false
	}
	s.markers[position].Active = true
	s.active = position
}

// Len returns the number of markers.
func (s *IndicatorStrip) Len() int {
	return len(s.markers)
}

// Active returns the index of the active marker, or -1 when the strip is
// empty.
func (s *IndicatorStrip) Active() int {
	if len(s.markers) == 0 {
		return -1
	}
	return s.active
}

// IsActive reports whether the marker at i is the active one.
func (s *IndicatorStrip) IsActive(i int) bool {
	return i >= 0 && i < len(s.markers) && s.markers[i].Active
}

// Markers returns a copy of the markers for drawing.
func (s *IndicatorStrip) Markers() []Marker {
	return append([]Marker(nil), s.markers...)
}

// Generation returns the item store generation the markers were built for.
func (s *IndicatorStrip) Generation() int {
	return s.generation
}

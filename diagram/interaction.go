package diagram

import "connectors/geometry"

// Mode is the pointer interaction in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeConnecting
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeConnecting:
		return "connecting"
	default:
		return "unknown"
	}
}

// interaction holds the scratch data of the current mode. Only the fields
// belonging to mode are meaningful; every transition replaces the whole
// value so nothing leaks from one gesture into the next.
type interaction struct {
	mode Mode

	// ModeDragging
	box    BoxID
	offset geometry.Point

	// ModeConnecting
	source       BoxID
	start        geometry.Point
	end          geometry.Point
	candidate    BoxID
	hasCandidate bool
}

func idle() interaction {
	return interaction{mode: ModeIdle}
}

func dragging(box BoxID, offset geometry.Point) interaction {
	return interaction{mode: ModeDragging, box: box, offset: offset}
}

func connecting(source BoxID, start, end geometry.Point) interaction {
	return interaction{mode: ModeConnecting, source: source, start: start, end: end}
}

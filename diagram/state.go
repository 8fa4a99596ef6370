package diagram

import (
	"log/slog"
	"slices"

	"connectors/geometry"
)

// State owns the boxes and connectors on the canvas along with the current
// selection and pointer interaction. It is not safe for concurrent use; the
// gesture adapter drives it from a single goroutine.
type State struct {
	// boxes is the stacking order: index 0 is the front.
	boxes   []*Box
	byID    map[BoxID]*Box
	conns   []Connector
	connIdx map[ConnectorKey]int

	selected Selection
	active   interaction

	connectorWidth float64
	logger         *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger mutations are reported to at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConnectorWidth overrides the stroke width of new connectors.
func WithConnectorWidth(w float64) Option {
	return func(s *State) {
		if w > 0 {
			s.connectorWidth = w
		}
	}
}

// New returns an empty State.
func New(opts ...Option) *State {
	s := &State{
		byID:           make(map[BoxID]*Box),
		connIdx:        make(map[ConnectorKey]int),
		connectorWidth: DefaultConnectorWidth,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Boxes returns the boxes front to back. The slice is a copy; the boxes are
// not.
func (s *State) Boxes() []*Box {
	return slices.Clone(s.boxes)
}

// Connectors returns the connectors in insertion order.
func (s *State) Connectors() []Connector {
	return slices.Clone(s.conns)
}

// Box looks up a live box by ID.
func (s *State) Box(id BoxID) (*Box, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// HasConnector reports whether the directed pair is connected.
func (s *State) HasConnector(key ConnectorKey) bool {
	_, ok := s.connIdx[key]
	return ok
}

// Selected returns the current selection.
func (s *State) Selected() Selection {
	return s.selected
}

// SelectedBox returns the selected box, if the selection is a box.
func (s *State) SelectedBox() (*Box, bool) {
	if s.selected.Kind != KindBox {
		return nil, false
	}
	return s.Box(s.selected.Box)
}

// Mode returns the pointer interaction in progress.
func (s *State) Mode() Mode {
	return s.active.mode
}

func (s *State) IsDragging() bool   { return s.active.mode == ModeDragging }
func (s *State) IsConnecting() bool { return s.active.mode == ModeConnecting }

// Candidate returns the box an in-progress connection would attach to.
func (s *State) Candidate() (BoxID, bool) {
	if s.active.mode != ModeConnecting || !s.active.hasCandidate {
		return BoxID{}, false
	}
	return s.active.candidate, true
}

// ConnectorLine resolves a connector's current geometry. It fails if either
// endpoint is gone.
func (s *State) ConnectorLine(c Connector) (geometry.Line, bool) {
	from, ok := s.byID[c.From]
	if !ok {
		return geometry.Line{}, false
	}
	to, ok := s.byID[c.To]
	if !ok {
		return geometry.Line{}, false
	}
	return geometry.Line{From: from.Anchor(), To: to.Anchor(), Width: c.Width}, true
}

// Clear removes every box and connector.
func (s *State) Clear() {
	s.boxes = nil
	clear(s.byID)
	s.conns = nil
	clear(s.connIdx)
	s.selected = NoSelection
	s.active = idle()
	s.logger.Debug("canvas cleared")
}

// Add creates a box at origin in front of all others and selects it.
func (s *State) Add(origin geometry.Point) *Box {
	box := newBox(origin)
	s.boxes = slices.Insert(s.boxes, 0, box)
	s.byID[box.id] = box
	s.selected = selectBox(box.id)
	s.logger.Debug("box added", "box", box.id.Short(), "x", origin.X, "y", origin.Y)
	return box
}

// Connect adds a connector from one box to another. Connecting a pair that
// is already connected in the same direction, or a handle that is not a live
// box, does nothing.
func (s *State) Connect(from, to BoxID) {
	key := ConnectorKey{From: from, To: to}
	if _, dup := s.connIdx[key]; dup {
		return
	}
	if _, ok := s.byID[from]; !ok {
		return
	}
	if _, ok := s.byID[to]; !ok {
		return
	}
	s.connIdx[key] = len(s.conns)
	s.conns = append(s.conns, Connector{From: from, To: to, Width: s.connectorWidth})
	s.logger.Debug("boxes connected", "from", from.Short(), "to", to.Short())
}

// Remove deletes the selected node. Removing a box also removes every
// connector attached to it. The selection is cleared either way.
func (s *State) Remove() {
	switch s.selected.Kind {
	case KindBox:
		s.removeBox(s.selected.Box)
	case KindConnector:
		s.removeConnectors(func(c Connector) bool { return c.Key() == s.selected.Connector })
		s.logger.Debug("connector removed",
			"from", s.selected.Connector.From.Short(), "to", s.selected.Connector.To.Short())
	case KindNone:
	}
	s.selected = NoSelection
}

func (s *State) removeBox(id BoxID) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	s.boxes = slices.DeleteFunc(s.boxes, func(b *Box) bool { return b.id == id })
	dropped := s.removeConnectors(func(c Connector) bool { return c.Touches(id) })

	switch {
	case s.active.mode == ModeDragging && s.active.box == id,
		s.active.mode == ModeConnecting && s.active.source == id:
		s.active = idle()
	case s.active.mode == ModeConnecting && s.active.hasCandidate && s.active.candidate == id:
		s.active.hasCandidate = false
	}
	s.logger.Debug("box removed", "box", id.Short(), "connectors", dropped)
}

// removeConnectors drops every connector matching del and rebuilds the key
// index. It returns how many were dropped.
func (s *State) removeConnectors(del func(Connector) bool) int {
	before := len(s.conns)
	s.conns = slices.DeleteFunc(s.conns, del)
	clear(s.connIdx)
	for i, c := range s.conns {
		s.connIdx[c.Key()] = i
	}
	return before - len(s.conns)
}

// MoveUp swaps the selected box with its neighbor toward the front.
func (s *State) MoveUp() {
	s.nudge(-1)
}

// MoveDown swaps the selected box with its neighbor toward the back.
func (s *State) MoveDown() {
	s.nudge(1)
}

func (s *State) nudge(step int) {
	switch s.selected.Kind {
	case KindBox:
		i := s.indexOf(s.selected.Box)
		j := i + step
		if i < 0 || j < 0 || j >= len(s.boxes) {
			return
		}
		s.boxes[i], s.boxes[j] = s.boxes[j], s.boxes[i]
		s.logger.Debug("box restacked", "box", s.selected.Box.Short(), "index", j)
	case KindConnector, KindNone:
	}
}

// IndexOf returns the stacking position of a box, or -1.
func (s *State) IndexOf(id BoxID) int {
	return s.indexOf(id)
}

func (s *State) indexOf(id BoxID) int {
	return slices.IndexFunc(s.boxes, func(b *Box) bool { return b.id == id })
}

// BoxAt returns the front-most box containing p.
func (s *State) BoxAt(p geometry.Point) (*Box, bool) {
	for _, b := range s.boxes {
		if b.Contains(p) {
			return b, true
		}
	}
	return nil, false
}

// ConnectorAt returns the first connector, in insertion order, whose stroke
// contains p.
func (s *State) ConnectorAt(p geometry.Point) (Connector, bool) {
	for _, c := range s.conns {
		line, ok := s.ConnectorLine(c)
		if ok && line.Contains(p) {
			return c, true
		}
	}
	return Connector{}, false
}

// Select picks the node under p. A box hit starts a drag that keeps the
// grab point fixed under the pointer. Boxes take priority over connectors.
// It reports whether the selection changed; a miss leaves everything alone.
func (s *State) Select(p geometry.Point) bool {
	if b, ok := s.BoxAt(p); ok {
		s.selected = selectBox(b.id)
		s.active = dragging(b.id, p.Sub(b.origin))
		return true
	}
	if c, ok := s.ConnectorAt(p); ok {
		s.selected = selectConnector(c.Key())
		s.active = idle()
		return true
	}
	return false
}

// MoveSelection drags the selected box so the grab point lands on p.
func (s *State) MoveSelection(p geometry.Point) bool {
	if s.active.mode != ModeDragging || !s.selected.IsBox(s.active.box) {
		return false
	}
	b, ok := s.byID[s.active.box]
	if !ok {
		return false
	}
	b.MoveTo(p.Sub(s.active.offset))
	return true
}

// StopMoving ends a drag.
func (s *State) StopMoving() {
	if s.active.mode == ModeDragging {
		s.active = idle()
	}
}

// StartConnecting begins a connection from the front-most box under p.
func (s *State) StartConnecting(p geometry.Point) bool {
	b, ok := s.BoxAt(p)
	if !ok {
		return false
	}
	s.selected = selectBox(b.id)
	s.active = connecting(b.id, b.Anchor(), p)
	return true
}

// ExtendConnection moves the loose end of an in-progress connection to p
// and picks up the box under it as the candidate target.
func (s *State) ExtendConnection(p geometry.Point) bool {
	if s.active.mode != ModeConnecting {
		return false
	}
	s.active.end = p
	if b, ok := s.BoxAt(p); ok {
		s.active.candidate, s.active.hasCandidate = b.id, true
	} else {
		s.active.candidate, s.active.hasCandidate = BoxID{}, false
	}
	return true
}

// StopConnecting ends a connection gesture, connecting the source to the
// candidate target when there is one other than the source itself. It
// always asks for a repaint.
func (s *State) StopConnecting(p geometry.Point) bool {
	in := s.active
	if in.mode == ModeConnecting {
		s.active = idle()
	}
	if in.mode == ModeConnecting && in.hasCandidate && in.candidate != in.source {
		s.Connect(in.source, in.candidate)
	}
	return true
}

// ActiveConnection returns the rubber-band line of an in-progress
// connection.
func (s *State) ActiveConnection() (geometry.Line, bool) {
	if s.active.mode != ModeConnecting {
		return geometry.Line{}, false
	}
	return geometry.Line{From: s.active.start, To: s.active.end, Width: s.connectorWidth}, true
}

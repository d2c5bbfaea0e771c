package studio

const placeholderText = "Tapez votre texte ici..."

// Object is a movable, scalable canvas element. Width and Height are the
// unscaled base dimensions; the effective bounding box applies the scale.
type Object struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
	ScaleX float64
	ScaleY float64

	// last scale known to fit inside the zone, consulted when a proposed
	// scale would escape it
	lastValidScaleX float64
	lastValidScaleY float64
}

func newObject(left, top, width, height float64) *Object {
	return &Object{
		Left: left, Top: top, Width: width, Height: height,
		ScaleX: 1, ScaleY: 1,
		lastValidScaleX: 1, lastValidScaleY: 1,
	}
}

// Bounds returns the scaled bounding box.
func (o *Object) Bounds() Rect {
	return Rect{Left: o.Left, Top: o.Top, Width: o.Width * o.ScaleX, Height: o.Height * o.ScaleY}
}

// Scene is the personalization editor surface: at most one text object, an
// optional printable zone, and a placeholder prompt when no text is set.
type Scene struct {
	width     float64
	height    float64
	itemgroup string

	zone    Rect
	hasZone bool

	text     *Object
	textBody string
	font     string
}

func NewScene(width, height float64, itemgroup string) *Scene {
	s := &Scene{width: width, height: height, itemgroup: itemgroup}
	s.zone, s.hasZone = ZoneFor(itemgroup)
	return s
}

// Itemgroup returns the category the scene was opened for.
func (s *Scene) Itemgroup() string { return s.itemgroup }

// Zone returns the active printable zone, if any.
func (s *Scene) Zone() (Rect, bool) { return s.zone, s.hasZone }

// Text returns the current text object, nil when the placeholder is shown.
func (s *Scene) Text() *Object { return s.text }

func (s *Scene) TextBody() string { return s.textBody }

// Placeholder reports whether the prompt text is displayed.
func (s *Scene) Placeholder() bool { return s.text == nil }

func (s *Scene) PlaceholderText() string { return placeholderText }

// SetText replaces any existing text object with a fresh centered one. An
// empty string clears the text and restores the placeholder.
func (s *Scene) SetText(body, font string) {
	if body == "" {
		s.text = nil
		s.textBody = ""
		return
	}
	s.textBody = body
	s.font = font

	// rough glyph box, the renderer owns exact metrics
	const fontSize = 16.0
	w := float64(len([]rune(body))) * fontSize * 0.6
	h := fontSize * 1.2
	obj := newObject(s.width/2-w/2, s.height/2-h/2, w, h)
	if s.hasZone {
		clampMove(obj, s.zone)
	}
	s.text = obj
}

// MoveText moves the text object to the requested position, clamping each
// axis independently so the bounding box stays inside the zone. Runs on
// every drag frame, synchronously.
func (s *Scene) MoveText(left, top float64) {
	if s.text == nil {
		return
	}
	s.text.Left = left
	s.text.Top = top
	if s.hasZone {
		clampMove(s.text, s.zone)
	}
}

// ScaleText applies a proposed scale. If the scaled box would escape the
// zone on any edge the proposal is rejected and the last valid scale is
// restored; otherwise the proposal becomes the new last valid scale.
func (s *Scene) ScaleText(scaleX, scaleY float64) {
	if s.text == nil {
		return
	}
	applyScale(s.text, s.zone, s.hasZone, scaleX, scaleY)
}

func clampMove(o *Object, zone Rect) {
	b := o.Bounds()
	if b.Left < zone.Left {
		o.Left = zone.Left
	}
	if b.Top < zone.Top {
		o.Top = zone.Top
	}
	if b.Right() > zone.Right() {
		o.Left = zone.Right() - b.Width
	}
	if b.Bottom() > zone.Bottom() {
		o.Top = zone.Bottom() - b.Height
	}
}

// applyScale is the pure constraint step: proposed transform in, either the
// proposal or the previous valid transform out.
func applyScale(o *Object, zone Rect, hasZone bool, scaleX, scaleY float64) {
	o.ScaleX = scaleX
	o.ScaleY = scaleY

	if !hasZone {
		o.lastValidScaleX = scaleX
		o.lastValidScaleY = scaleY
		return
	}

	if zone.Contains(o.Bounds()) {
		o.lastValidScaleX = scaleX
		o.lastValidScaleY = scaleY
		return
	}
	o.ScaleX = o.lastValidScaleX
	o.ScaleY = o.lastValidScaleY
}

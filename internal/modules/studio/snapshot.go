package studio

// ObjectState is the serializable form of a canvas object, last-valid scale
// included so the revert behavior survives a round-trip.
type ObjectState struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`

	LastValidScaleX float64 `json:"last_valid_scale_x"`
	LastValidScaleY float64 `json:"last_valid_scale_y"`
}

// Snapshot round-trips the scene through the session store.
type Snapshot struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Itemgroup string       `json:"itemgroup"`
	TextBody  string       `json:"text_body,omitempty"`
	Font      string       `json:"font,omitempty"`
	Text      *ObjectState `json:"text,omitempty"`
}

func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Width:     s.width,
		Height:    s.height,
		Itemgroup: s.itemgroup,
		TextBody:  s.textBody,
		Font:      s.font,
	}
	if s.text != nil {
		snap.Text = &ObjectState{
			Left:            s.text.Left,
			Top:             s.text.Top,
			Width:           s.text.Width,
			Height:          s.text.Height,
			ScaleX:          s.text.ScaleX,
			ScaleY:          s.text.ScaleY,
			LastValidScaleX: s.text.lastValidScaleX,
			LastValidScaleY: s.text.lastValidScaleY,
		}
	}
	return snap
}

func RestoreScene(snap Snapshot) *Scene {
	s := NewScene(snap.Width, snap.Height, snap.Itemgroup)
	s.textBody = snap.TextBody
	s.font = snap.Font
	if snap.Text != nil {
		s.text = &Object{
			Left:            snap.Text.Left,
			Top:             snap.Text.Top,
			Width:           snap.Text.Width,
			Height:          snap.Text.Height,
			ScaleX:          snap.Text.ScaleX,
			ScaleY:          snap.Text.ScaleY,
			lastValidScaleX: snap.Text.LastValidScaleX,
			lastValidScaleY: snap.Text.LastValidScaleY,
		}
	}
	return s
}

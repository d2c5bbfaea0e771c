package view

import "fioriforyou.com/app/internal/modules/studio"

type CanvasObject struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`

	Bounds studio.Rect `json:"bounds"`
}

// Canvas is the editor surface as the client renders it: zone border if
// any, the text object with its effective bounding box, placeholder prompt
// when no text is set.
type Canvas struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Itemgroup string  `json:"itemgroup"`

	Zone *studio.Rect `json:"zone,omitempty"`

	Placeholder     bool          `json:"placeholder"`
	PlaceholderText string        `json:"placeholder_text,omitempty"`
	TextBody        string        `json:"text_body,omitempty"`
	Text            *CanvasObject `json:"text,omitempty"`
}

func FromScene(s *studio.Scene) Canvas {
	snap := s.Snapshot()
	v := Canvas{
		Width:       snap.Width,
		Height:      snap.Height,
		Itemgroup:   snap.Itemgroup,
		Placeholder: s.Placeholder(),
		TextBody:    s.TextBody(),
	}
	if zone, ok := s.Zone(); ok {
		v.Zone = &zone
	}
	if v.Placeholder {
		v.PlaceholderText = s.PlaceholderText()
	}
	if obj := s.Text(); obj != nil {
		v.Text = &CanvasObject{
			Left:   obj.Left,
			Top:    obj.Top,
			Width:  obj.Width,
			Height: obj.Height,
			ScaleX: obj.ScaleX,
			ScaleY: obj.ScaleY,
			Bounds: obj.Bounds(),
		}
	}
	return v
}

package studio

import "strings"

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether other sits fully inside r.
func (r Rect) Contains(other Rect) bool {
	return other.Left >= r.Left &&
		other.Top >= r.Top &&
		other.Right() <= r.Right() &&
		other.Bottom() <= r.Bottom()
}

// printableZones maps an itemgroup to the rectangle where personalization
// may be printed. Categories without an entry get free placement.
var printableZones = map[string]Rect{
	"chemises":      {Left: 150, Top: 120, Width: 200, Height: 180},
	"costumes":      {Left: 140, Top: 100, Width: 220, Height: 200},
	"blazers":       {Left: 140, Top: 110, Width: 220, Height: 190},
	"cravates":      {Left: 210, Top: 150, Width: 80, Height: 260},
	"portefeuilles": {Left: 170, Top: 220, Width: 160, Height: 110},
}

// ZoneFor looks up the printable zone for a category. ok is false when the
// category has no zone and placement is unconstrained.
func ZoneFor(itemgroup string) (Rect, bool) {
	z, ok := printableZones[strings.ToLower(strings.TrimSpace(itemgroup))]
	return z, ok
}

package giftpack

// SpaceDimensions carry the presentation sizes of a pack's regions. They are
// layout hints for the storefront, the configurator itself only cares about
// the container count.
type SpaceDimensions struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

type SpaceLayout struct {
	Main      SpaceDimensions  `json:"main"`
	Secondary *SpaceDimensions `json:"secondary,omitempty"`
	Tertiary  *SpaceDimensions `json:"tertiary,omitempty"`
}

type SpaceLabels struct {
	Main      string `json:"mainSpace"`
	Secondary string `json:"secondarySpace,omitempty"`
	Tertiary  string `json:"tertiarySpace,omitempty"`
}

// PackType is a named gift-box configuration: container count plus the
// per-region layout table. Immutable, picked once per shopping session.
type PackType struct {
	Name       string      `json:"name"`
	Containers int         `json:"containers"`
	Labels     SpaceLabels `json:"labels"`
	Layout     SpaceLayout `json:"layout"`
}

var packTypes = map[string]PackType{
	"Pack Prestige": {
		Name:       "Pack Prestige",
		Containers: 3,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL", Secondary: "ESPACE SECONDAIRE", Tertiary: "ESPACE TERTIAIRE"},
		Layout: SpaceLayout{
			Main:      SpaceDimensions{Width: "60%", Height: "594px"},
			Secondary: &SpaceDimensions{Width: "40%", Height: "291px"},
			Tertiary:  &SpaceDimensions{Width: "40%", Height: "291px"},
		},
	},
	"Pack Premium": {
		Name:       "Pack Premium",
		Containers: 2,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL", Secondary: "ESPACE SECONDAIRE"},
		Layout: SpaceLayout{
			Main:      SpaceDimensions{Width: "100%", Height: "291px"},
			Secondary: &SpaceDimensions{Width: "100%", Height: "291px"},
		},
	},
	"Pack Trio": {
		Name:       "Pack Trio",
		Containers: 3,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL", Secondary: "ESPACE SECONDAIRE", Tertiary: "ESPACE TERTIAIRE"},
		Layout: SpaceLayout{
			Main:      SpaceDimensions{Width: "60%", Height: "594px"},
			Secondary: &SpaceDimensions{Width: "40%", Height: "291px"},
			Tertiary:  &SpaceDimensions{Width: "40%", Height: "291px"},
		},
	},
	"Pack Duo": {
		Name:       "Pack Duo",
		Containers: 2,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL", Secondary: "ESPACE SECONDAIRE"},
		Layout: SpaceLayout{
			Main:      SpaceDimensions{Width: "100%", Height: "291px"},
			Secondary: &SpaceDimensions{Width: "100%", Height: "291px"},
		},
	},
	"Pack Mini Duo": {
		Name:       "Pack Mini Duo",
		Containers: 2,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL", Secondary: "ESPACE SECONDAIRE"},
		Layout: SpaceLayout{
			Main:      SpaceDimensions{Width: "100%", Height: "220px"},
			Secondary: &SpaceDimensions{Width: "100%", Height: "220px"},
		},
	},
	"Pack Mono": {
		Name:       "Pack Mono",
		Containers: 1,
		Labels:     SpaceLabels{Main: "ESPACE PRINCIPAL"},
		Layout: SpaceLayout{
			Main: SpaceDimensions{Width: "100%", Height: "594px"},
		},
	},
}

// DefaultPackType is assumed when the session never picked one.
const DefaultPackType = "Pack Prestige"

// TypeByName resolves a pack type, falling back to the default for unknown
// names so a stale session keeps working.
func TypeByName(name string) PackType {
	if pt, ok := packTypes[name]; ok {
		return pt
	}
	return packTypes[DefaultPackType]
}

// KnownType reports whether name is a configured pack type.
func KnownType(name string) bool {
	_, ok := packTypes[name]
	return ok
}

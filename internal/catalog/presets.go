package catalog

// Preset is a named field setting: an ordered list of position ids that a
// scene is instantiated from. Every preset places eleven fielders including
// the keeper and the bowler.
type Preset struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	PositionIDs []string `json:"positions" yaml:"positions"`
}

// Registry of known presets, in registration order.
var presetOrder []string
var presets = make(map[string]Preset)

// RegisterPreset adds a preset to the registry, replacing any preset with
// the same name.
func RegisterPreset(p Preset) {
	if _, exists := presets[p.Name]; !exists {
		presetOrder = append(presetOrder, p.Name)
	}
	presets[p.Name] = p
}

// GetPreset returns a preset by name, or nil if unknown.
func GetPreset(name string) *Preset {
	if p, ok := presets[name]; ok {
		return &p
	}
	return nil
}

// PresetNames returns all registered preset names in registration order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

func init() {
	RegisterPreset(Preset{
		Name:        "standard",
		Description: "Orthodox field for a new ball",
		PositionIDs: []string{
			"keeper", "bowler",
			"first-slip", "gully",
			"point", "cover", "mid-off",
			"mid-on", "midwicket", "square-leg",
			"fine-leg",
		},
	})
	RegisterPreset(Preset{
		Name:        "attacking",
		Description: "Full slip cordon with bat-pad catchers",
		PositionIDs: []string{
			"keeper", "bowler",
			"first-slip", "second-slip", "third-slip", "gully",
			"silly-point", "short-leg",
			"cover", "mid-off", "mid-on",
		},
	})
	RegisterPreset(Preset{
		Name:        "defensive",
		Description: "Spread field protecting the boundary",
		PositionIDs: []string{
			"keeper", "bowler",
			"point",
			"third-man", "deep-point", "deep-cover", "long-off",
			"long-on", "deep-midwicket", "deep-square-leg", "deep-fine-leg",
		},
	})
	RegisterPreset(Preset{
		Name:        "legside containment",
		Description: "Leg-heavy field for a straight line of attack",
		PositionIDs: []string{
			"keeper", "bowler",
			"leg-slip", "short-leg",
			"mid-on", "midwicket", "square-leg", "backward-square-leg",
			"deep-midwicket", "deep-square-leg", "fine-leg",
		},
	})
	RegisterPreset(Preset{
		Name:        "t20 ring",
		Description: "Powerplay ring with five boundary riders",
		PositionIDs: []string{
			"keeper", "bowler",
			"point", "mid-on",
			"third-man", "deep-backward-point", "deep-cover",
			"long-off", "long-on", "deep-midwicket", "deep-square-leg",
		},
	})
}

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// customFile is the YAML document format for user-defined presets.
// Only presets can be overridden; the position table itself is fixed so
// that saved setups and detection stay consistent across installs.
type customFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadCustomPresets reads user-defined presets from a YAML file and
// registers them. A missing file is not an error. Presets that reference
// unknown position ids are rejected.
func LoadCustomPresets(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var cf customFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	loaded := 0
	for _, p := range cf.Presets {
		if p.Name == "" {
			return loaded, fmt.Errorf("%s: preset with empty name", path)
		}
		for _, id := range p.PositionIDs {
			if ByID(id) == nil {
				return loaded, fmt.Errorf("%s: preset %q references unknown position %q", path, p.Name, id)
			}
		}
		RegisterPreset(p)
		loaded++
	}
	return loaded, nil
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestPositionsTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Positions() {
		assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.DisplayName, "position %q", p.ID)
		assert.NotEmpty(t, p.ShortLabel, "position %q", p.ID)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 100.0)
	}
}

func TestByID(t *testing.T) {
	p := ByID("point")
	require.NotNil(t, p)
	assert.Equal(t, "Point", p.DisplayName)
	assert.Equal(t, CategoryRing, p.Category)

	assert.Nil(t, ByID("no-such-position"))
}

func TestFixedRoles(t *testing.T) {
	assert.True(t, ByID("keeper").Fixed())
	assert.True(t, ByID("bowler").Fixed())
	assert.False(t, ByID("first-slip").Fixed())
	assert.False(t, ByID("long-on").Fixed())
}

func TestOffSideConvention(t *testing.T) {
	// Off-side positions sit at x<50 for a right-handed batter.
	assert.Less(t, ByID("point").X, 50.0)
	assert.Less(t, ByID("cover").X, 50.0)
	assert.Greater(t, ByID("square-leg").X, 50.0)
	assert.Greater(t, ByID("midwicket").X, 50.0)
}

func TestPresetsPlaceElevenFielders(t *testing.T) {
	builtins := []string{"standard", "attacking", "defensive", "legside containment", "t20 ring"}
	for _, name := range builtins {
		preset := GetPreset(name)
		require.NotNil(t, preset, name)
		assert.Len(t, preset.PositionIDs, 11, "preset %q", name)
		assert.Contains(t, preset.PositionIDs, "keeper", "preset %q", name)
		assert.Contains(t, preset.PositionIDs, "bowler", "preset %q", name)
	}
}

func TestGetPresetUnknown(t *testing.T) {
	assert.Nil(t, GetPreset("no-such-preset"))
}

func TestRegisterPresetReplaces(t *testing.T) {
	RegisterPreset(Preset{Name: "replace-me", PositionIDs: []string{"keeper"}})
	before := len(PresetNames())

	RegisterPreset(Preset{Name: "replace-me", PositionIDs: []string{"bowler"}})
	assert.Len(t, PresetNames(), before)
	assert.Equal(t, []string{"bowler"}, GetPreset("replace-me").PositionIDs)
}

func TestCategoryStrings(t *testing.T) {
	for _, c := range []Category{CategoryKeeper, CategoryBowler, CategorySlip, CategoryClose, CategoryRing, CategoryBoundary} {
		assert.NotEqual(t, "unknown", c.String())
		assert.Equal(t, c, CategoryFromString(c.String()))
	}
}

func TestLoadCustomPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := `presets:
  - name: short ball plan
    description: Two men back on the hook
    positions:
      - keeper
      - bowler
      - leg-gully
      - square-leg
      - deep-square-leg
      - deep-fine-leg
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	n, err := LoadCustomPresets(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p := GetPreset("short ball plan")
	require.NotNil(t, p)
	assert.Len(t, p.PositionIDs, 6)
}

func TestLoadCustomPresetsMissingFile(t *testing.T) {
	n, err := LoadCustomPresets(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadCustomPresetsUnknownPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := `presets:
  - name: broken
    positions: [keeper, flying-slip]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadCustomPresets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flying-slip")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifecode/pkg/life"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifecode.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[world]
width = 120
rule = "strobe"
pattern = ["#", " #"]

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.World.Width)
	assert.Equal(t, life.DefaultHeight, cfg.World.Height)
	assert.Equal(t, "strobe", cfg.World.Rule)
	assert.Equal(t, []string{"#", " #"}, cfg.World.Pattern)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Display.TPS)
	assert.Equal(t, 200, cfg.Run.Generations)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[world\nwidth = ")
	_, err := Load(path)
	require.Error(t, err)
}

func TestMergeFlagPrecedence(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[world]
width = 100
rule = "hermit"

[run]
generations = 50
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	o := DefaultOverrides()
	o.Rule = "void"   // explicitly set, wins over the file
	o.Headless = true // boolean flags win whenever raised
	cfg.Merge(o)

	assert.Equal(t, 100, cfg.World.Width, "unset flag must not clobber the file")
	assert.Equal(t, "void", cfg.World.Rule)
	assert.Equal(t, 50, cfg.Run.Generations)
	assert.True(t, cfg.Run.Headless)
}

func TestMergeOntoDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	o := DefaultOverrides()
	o.Width = 16
	o.Height = 8
	o.Seed = 7
	o.CensusOut = "census.png"
	cfg.Merge(o)

	assert.Equal(t, 16, cfg.World.Width)
	assert.Equal(t, 8, cfg.World.Height)
	assert.Equal(t, int64(7), cfg.World.Seed)
	assert.Equal(t, "census.png", cfg.Run.CensusOut)
	assert.Equal(t, life.DefaultRule, cfg.World.Rule)
}

func TestLifeConversion(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.World.Width = 10
	cfg.World.Height = 5
	cfg.Display.LiveGlyph = "o"
	cfg.Display.DeadGlyph = ""

	lc := cfg.Life()
	assert.Equal(t, 10, lc.Width)
	assert.Equal(t, 5, lc.Height)
	assert.Equal(t, 'o', lc.LiveGlyph)
	assert.Equal(t, rune(0), lc.DeadGlyph, "empty glyph defers to the engine default")

	w, err := life.NewWithConfig(lc)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Size().W)
}

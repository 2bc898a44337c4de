package life

import (
	"fmt"
	"slices"
	"strings"
)

// Preset is a named rule shipped with the engine.
type Preset struct {
	Name string
	Code string
	Note string
}

var presets = map[string]Preset{}

// RegisterPreset adds a named rule to the preset table. Empty names and
// names that would shadow an earlier registration are ignored.
func RegisterPreset(name, code, note string) {
	if name == "" {
		return
	}
	if _, ok := presets[name]; ok {
		return
	}
	presets[name] = Preset{Name: name, Code: code, Note: note}
}

// Presets lists the registered presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// PresetCode returns the rule code registered under name.
func PresetCode(name string) (string, bool) {
	p, ok := presets[name]
	return p.Code, ok
}

// LookupRule resolves a preset name or a raw rule code into a Rule. Preset
// names win; anything unregistered is parsed as a code.
func LookupRule(nameOrCode string) (Rule, error) {
	if code, ok := PresetCode(nameOrCode); ok {
		r, err := ParseRule(code)
		if err != nil {
			return Rule{}, fmt.Errorf("preset %q: %w", nameOrCode, err)
		}
		return r, nil
	}
	return ParseRule(nameOrCode)
}

func init() {
	RegisterPreset("void", Rule{}.Encode(),
		"every state maps to dead; any board empties in one generation")
	RegisterPreset("hermit", Rule{bits: 1 << CenterValue}.Encode(),
		"a cell with no live neighbors survives untouched; everything else dies")
	RegisterPreset("drift", Rule{bits: 1 << 1}.Encode(),
		"a cell is born below-right of a lone live cell; populations march toward the far corner")
	RegisterPreset("strobe", Rule{bits: 1}.Encode(),
		"only an empty neighborhood turns a cell on; boards flip between sparse and dense")
}

package style

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

const DefaultPreset = "classic"

// Presets maps a preset name to a complete style. Historical layouts of the
// card live here as values rather than as separate render paths.
type Presets map[string]Style

func BuiltinPresets() Presets {
	classic := Default()

	tallTitle := Default()
	tallTitle.TopH = 500
	tallTitle.TopFS = 80
	tallTitle.BotH = 250
	tallTitle.BotFS = 50

	magenta := Default()
	magenta.TopColor = "#FF00FF"
	magenta.LabelColor = "#FF00FF"

	cyan := Default()
	cyan.TopColor = "#00FFFF"
	cyan.LabelColor = "#00FFFF"

	// white flips the label band: white background, black text.
	white := Default()
	white.TopColor = "#FFFFFF"
	white.LabelBg = "#FFFFFF"
	white.LabelColor = "#000000"

	sketch := Default()
	sketch.BgColor = "#FFFFFF"
	sketch.TopBg = "#FFFFFF"
	sketch.TopColor = "#000000"
	sketch.TopColor2 = "#333333"
	sketch.BotBg = "#FFFFFF"
	sketch.BotColor = "#000000"
	sketch.PhotoFilter = FilterSketch

	return Presets{
		DefaultPreset: classic,
		"tall-title":  tallTitle,
		"magenta":     magenta,
		"cyan":        cyan,
		"white":       white,
		"sketch":      sketch,
	}
}

func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named preset; an empty name means DefaultPreset.
func (p Presets) Get(name string) (Style, bool) {
	if name == "" {
		name = DefaultPreset
	}
	s, ok := p[name]
	return s, ok
}

type presetFile struct {
	Presets map[string]map[string]any `toml:"presets"`
}

// LoadPresets reads [presets.<name>] tables from path and lays them over the
// built-in presets. Every table starts from Default(), so a file only needs
// the fields it changes.
func LoadPresets(path string) (Presets, error) {
	presets := BuiltinPresets()
	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data, presets)
}

func ParsePresets(data []byte, into Presets) (Presets, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	for name, fields := range file.Presets {
		raw, err := toml.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		s := Default()
		if err := toml.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		into[name] = s
	}
	return into, nil
}

package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

type PhotoFilter string

const (
	FilterNone   PhotoFilter = "none"
	FilterGray   PhotoFilter = "gray"
	FilterSketch PhotoFilter = "sketch"
)

// Style holds every visual parameter of a card. Colours are hex strings
// so presets and requests stay readable; they are parsed at render time.
type Style struct {
	BgColor string `toml:"bg_color" json:"bg_color"`

	TopH      int    `toml:"top_h" json:"top_h"`
	TopFS     int    `toml:"top_fs" json:"top_fs"`
	TopLH     int    `toml:"top_lh" json:"top_lh"`
	TopBg     string `toml:"top_bg" json:"top_bg"`
	TopColor  string `toml:"top_color" json:"top_color"`
	TopColor2 string `toml:"top_color2" json:"top_color2"` // lines after the first; empty means TopColor
	TopYAdj   int    `toml:"top_y_adj" json:"top_y_adj"`

	BotH     int    `toml:"bot_h" json:"bot_h"`
	BotFS    int    `toml:"bot_fs" json:"bot_fs"`
	BotLH    int    `toml:"bot_lh" json:"bot_lh"`
	BotBg    string `toml:"bot_bg" json:"bot_bg"`
	BotColor string `toml:"bot_color" json:"bot_color"`
	BotYAdj  int    `toml:"bot_y_adj" json:"bot_y_adj"`

	LabelH        int    `toml:"label_h" json:"label_h"`
	LabelFS       int    `toml:"label_fs" json:"label_fs"`
	LabelBg       string `toml:"label_bg" json:"label_bg"`
	LabelColor    string `toml:"label_color" json:"label_color"`
	LabelNumbered bool   `toml:"label_numbered" json:"label_numbered"`

	ImgZoom     float64     `toml:"img_zoom" json:"img_zoom"`
	PhotoFilter PhotoFilter `toml:"photo_filter" json:"photo_filter"`
}

func Default() Style {
	return Style{
		BgColor: "#000000",

		TopH:      400,
		TopFS:     70,
		TopLH:     20,
		TopBg:     "#000000",
		TopColor:  "#FFD700",
		TopColor2: "#FFFFFF",

		BotH:     350,
		BotFS:    60,
		BotLH:    15,
		BotBg:    "#000000",
		BotColor: "#FFFFFF",

		LabelH:     90,
		LabelFS:    48,
		LabelBg:    "#000000",
		LabelColor: "#FFFFFF",

		ImgZoom:     1.0,
		PhotoFilter: FilterNone,
	}
}

// GridHeight is the vertical band left for the 2x2 photo grid.
func (s Style) GridHeight() int {
	return CanvasHeight - s.TopH - s.BotH
}

// CellHeight is the height of one grid cell; the band is split in two rows.
func (s Style) CellHeight() int {
	return s.GridHeight() / 2
}

var ErrGridTooSmall = errors.New("top_h + bot_h leaves no room for the photo grid")

func (s Style) Validate() error {
	if s.TopH < 0 || s.BotH < 0 {
		return fmt.Errorf("bar heights must not be negative: top_h=%d bot_h=%d", s.TopH, s.BotH)
	}
	if s.CellHeight() <= 0 {
		return fmt.Errorf("%w: top_h=%d bot_h=%d", ErrGridTooSmall, s.TopH, s.BotH)
	}
	if s.LabelH < 0 || s.LabelH > s.CellHeight() {
		return fmt.Errorf("label_h %d must be within 0..%d", s.LabelH, s.CellHeight())
	}
	if s.TopFS <= 0 || s.BotFS <= 0 || s.LabelFS <= 0 {
		return fmt.Errorf("font sizes must be positive: top_fs=%d bot_fs=%d label_fs=%d", s.TopFS, s.BotFS, s.LabelFS)
	}
	if !(s.ImgZoom >= 1.0) || math.IsInf(s.ImgZoom, 0) {
		return fmt.Errorf("img_zoom must be >= 1.0, got %v", s.ImgZoom)
	}
	switch s.PhotoFilter {
	case "", FilterNone, FilterGray, FilterSketch:
	default:
		return fmt.Errorf("unknown photo_filter %q", s.PhotoFilter)
	}

	colors := map[string]string{
		"bg_color":    s.BgColor,
		"top_bg":      s.TopBg,
		"top_color":   s.TopColor,
		"bot_bg":      s.BotBg,
		"bot_color":   s.BotColor,
		"label_bg":    s.LabelBg,
		"label_color": s.LabelColor,
	}
	if s.TopColor2 != "" {
		colors["top_color2"] = s.TopColor2
	}
	for name, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return nil
}

// Merge overlays a partial JSON object onto base. Fields absent from raw keep
// their base value.
func Merge(base Style, raw json.RawMessage) (Style, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return base, nil
	}
	out := base
	if err := json.Unmarshal(raw, &out); err != nil {
		return base, fmt.Errorf("decode style: %w", err)
	}
	return out, nil
}

package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	css "github.com/mazznoer/csscolorparser"

	"github.com/iburimskiy/waves-background/internal/wavesbg"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Waves - D: debug overlay, Esc/Q: quit"

	DefaultBackground = "#0b0d1a"
)

var InfoLogger = log.New(os.Stderr, "INFO: ", log.Lshortfile)

// File is the on-disk layout of a TOML config. Absent keys stay nil.
type File struct {
	Colors     []string `toml:"colors"`
	Waves      *int     `toml:"waves"`
	Speed      *float64 `toml:"speed"`
	Amplitude  *float64 `toml:"amplitude"`
	Frequency  *float64 `toml:"frequency"`
	Background *string  `toml:"background"`
}

// Config is what the program runs with.
type Config struct {
	Options    wavesbg.Options
	Background color.NRGBA
}

func Default() Config {
	bg, _ := ParseColor(DefaultBackground)
	return Config{
		Options:    wavesbg.DefaultOptions(),
		Background: bg,
	}
}

// Load reads a TOML file on top of base. Keys missing from the file keep the
// base value; unknown keys are logged and ignored.
func Load(path string, base Config) (Config, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return base, fmt.Errorf("config: decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		InfoLogger.Printf("%s: unknown key %q ignored", path, key.String())
	}
	return f.Apply(base)
}

// Apply overlays the keys set in f onto base.
func (f File) Apply(base Config) (Config, error) {
	cfg := base
	if f.Colors != nil {
		colors, err := parseColorList(f.Colors)
		if err != nil {
			return base, err
		}
		cfg.Options.Colors = colors
	}
	if f.Waves != nil {
		cfg.Options.Waves = *f.Waves
	}
	if f.Speed != nil {
		cfg.Options.Speed = *f.Speed
	}
	if f.Amplitude != nil {
		cfg.Options.Amplitude = *f.Amplitude
	}
	if f.Frequency != nil {
		cfg.Options.Frequency = *f.Frequency
	}
	if f.Background != nil {
		bg, err := ParseColor(*f.Background)
		if err != nil {
			return base, err
		}
		cfg.Background = bg
	}
	return cfg, nil
}

// ParseColors parses a comma separated list of CSS colors. Commas inside
// functional notation like rgb(1, 2, 3) do not split. Alpha is dropped.
func ParseColors(list string) ([]wavesbg.RGB, error) {
	return parseColorList(splitColorList(list))
}

// splitColorList splits on commas at parenthesis depth 0.
func splitColorList(list string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, list[start:])
}

func parseColorList(list []string) ([]wavesbg.RGB, error) {
	colors := make([]wavesbg.RGB, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, wavesbg.RGB{c.R, c.G, c.B})
	}
	return colors, nil
}

func ParseColor(str string) (color.NRGBA, error) {
	c, err := css.Parse(strings.TrimSpace(str))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: color %q: %w", str, err)
	}

	return color.NRGBA{
		R: uint8(255*c.R + 0.5),
		G: uint8(255*c.G + 0.5),
		B: uint8(255*c.B + 0.5),
		A: uint8(255*c.A + 0.5),
	}, nil
}

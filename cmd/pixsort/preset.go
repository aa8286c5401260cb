package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/glitchfx/pixsort"
)

// preset is the TOML shape of a threshold preset file. Pointer fields
// distinguish "not set" from an explicit zero, so a preset may override
// any subset of the flags.
//
// Example:
//
//	mode = "bright"
//	bright = 100
//	dark = 200
type preset struct {
	Mode   *string `toml:"mode"`
	White  *int32  `toml:"white"`
	Black  *int32  `toml:"black"`
	Bright *int    `toml:"bright"`
	Dark   *int    `toml:"dark"`
}

// loadPreset reads a TOML preset file and applies it on top of cfg.
func loadPreset(path string, cfg pixsort.Config) (pixsort.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pixsort.Config{}, fmt.Errorf("read preset: %w", err)
	}
	return applyPreset(string(data), cfg)
}

func applyPreset(data string, cfg pixsort.Config) (pixsort.Config, error) {
	var p preset
	meta, err := toml.Decode(data, &p)
	if err != nil {
		return pixsort.Config{}, fmt.Errorf("parse preset: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return pixsort.Config{}, fmt.Errorf("preset: unknown key %q", undecoded[0].String())
	}

	if p.Mode != nil {
		m, err := pixsort.ParseMode(*p.Mode)
		if err != nil {
			return pixsort.Config{}, fmt.Errorf("preset: %w", err)
		}
		cfg.Mode = m
	}
	if p.White != nil {
		cfg.WhiteValue = *p.White
	}
	if p.Black != nil {
		cfg.BlackValue = *p.Black
	}
	if p.Bright != nil {
		cfg.BrightValue = *p.Bright
	}
	if p.Dark != nil {
		cfg.DarkValue = *p.Dark
	}
	return cfg, nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the retopo tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/retopo/base/errors"
)

// DefaultFile is the config file used when none is given.
const DefaultFile = "~/.config/retopo/retopo.toml"

// Config is the main config struct
// that contains all of the configuration
// options for the retopo tool.
type Config struct {

	// the thresholds and options for the topology analysis
	Analyze Analyze `toml:"analyze" desc:"the thresholds and options for the topology analysis"`

	// the options for importing mesh files
	Import Import `toml:"import" desc:"the options for importing mesh files"`

	// the options for rendering reports
	Report Report `toml:"report" desc:"the options for rendering reports"`

	// the options for the watch command
	Watch Watch `toml:"watch" desc:"the options for the watch command"`
}

type Analyze struct {

	// [def: 60] corners at or below this angle in degrees are sharp
	SharpCornerAngle float32 `toml:"sharp_corner_angle" validate:"gte=0,lte=180" desc:"corners at or below this angle in degrees are sharp"`

	// [def: 30] edges whose face normals differ by at least this angle in degrees are sharp
	SharpEdgeAngle float32 `toml:"sharp_edge_angle" validate:"gte=0,lte=180" desc:"edges whose face normals differ by at least this angle in degrees are sharp"`

	// [def: storage] the order in which the link edges of a vertex are paired into corners (storage or angular)
	CornerOrder string `toml:"corner_order" validate:"oneof=storage angular" desc:"the order in which the link edges of a vertex are paired into corners (storage or angular)"`

	// the seed edges of the edge loops to discover
	Seeds []int `toml:"seeds" validate:"dive,gte=0" desc:"the seed edges of the edge loops to discover"`

	// whether to discover edge rings instead of edge loops
	FollowRings bool `toml:"follow_rings" desc:"whether to discover edge rings instead of edge loops"`
}

type Import struct {

	// the distance within which STL vertices are welded together
	WeldTolerance float32 `toml:"weld_tolerance" validate:"gte=0" desc:"the distance within which STL vertices are welded together"`
}

type Report struct {

	// [def: text] the report format (text, json, yaml or toml)
	Format string `toml:"format" validate:"oneof=text json yaml toml" desc:"the report format (text, json, yaml or toml)"`

	// [def: 20] the maximum number of element indexes listed per selection in text reports; 0 lists all
	MaxList int `toml:"max_list" validate:"gte=0" desc:"the maximum number of element indexes listed per selection in text reports; 0 lists all"`
}

type Watch struct {

	// [def: 200] the time in milliseconds to wait for writes to settle before analyzing again
	DebounceMS int `toml:"debounce_ms" validate:"gte=0,lte=60000" desc:"the time in milliseconds to wait for writes to settle before analyzing again"`
}

// Default returns a new config with the default values.
func Default() *Config {
	return &Config{
		Analyze: Analyze{SharpCornerAngle: 60, SharpEdgeAngle: 30, CornerOrder: "storage"},
		Report:  Report{Format: "text", MaxList: 20},
		Watch:   Watch{DebounceMS: 200},
	}
}

// Open returns the config in the given TOML file, which may start with ~
// for the home directory, on top of the default values. A missing
// [DefaultFile] is not an error and gives the default config.
func Open(file string) (*Config, error) {
	c := Default()
	if file == "" {
		file = DefaultFile
	}
	fpath, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fpath)
	if err != nil {
		if file == DefaultFile && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", file, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return c, nil
}

// Save writes the config to the given TOML file, creating
// its directory if needed.
func (c *Config) Save(file string) error {
	fpath, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, b, 0666)
}

// validate is the validator for all configs.
var validate = validator.New()

// Validate returns an error describing the first invalid field
// of the config, or nil.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		switch e.Tag() {
		case "gte":
			return fmt.Errorf("%s: must be at least %s", e.Namespace(), e.Param())
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", e.Namespace(), e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of: %s", e.Namespace(), e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
		}
	}
	return err
}

// Merge copies the non-zero fields of overrides into the config, and
// then validates the result. Zero values in overrides leave the config
// unchanged.
func (c *Config) Merge(overrides *Config) error {
	if err := copier.CopyWithOption(c, overrides, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return err
	}
	return c.Validate()
}

// Package config loads the dimensions and params of a hexapod from a JSON
// file, on top of the defaults.
package config

import (
	"encoding/json"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hexakin/hexapod"
	"github.com/hexakin/hexapod/gait"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "config"})

type Config struct {
	Dimensions hexapod.Dimensions `json:"dimensions"`
	IK         hexapod.IKParams   `json:"ik"`
	Gait       gait.Params        `json:"gait"`
	GaitType   gait.Type          `json:"gaitType"`
	WalkMode   gait.Mode          `json:"walkMode"`

	// Assemble hexapods with the fast orientation solver.
	AssumeKnownGroundPoints bool `json:"assumeKnownGroundPoints"`
	ResolveTwist            bool `json:"resolveTwist"`
}

func Default() Config {
	return Config{
		Dimensions: hexapod.BaseDimensions(),
		IK:         hexapod.BaseIKParams(),
		Gait:       gait.BaseParams(),
		GaitType:   gait.Tripod,
		WalkMode:   gait.Walking,
	}
}

// Load reads the config at path. Anything it leaves out keeps its default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}

	c, err := Decode(raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}

	log.WithField("path", path).Debug("loaded config")
	return c, nil
}

// Decode applies raw on top of the defaults. Numbers may be given as strings,
// and gait types and walk modes by name. Unknown keys are an error.
func Decode(raw map[string]interface{}) (Config, error) {
	c := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return Config{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate returns every problem with the config, not just the first.
func (c Config) Validate() error {
	return multierr.Combine(
		c.Dimensions.Validate(),
		c.IK.Validate(),
		c.Gait.Validate(),
	)
}

// HexapodOptions returns the assembly options.
func (c Config) HexapodOptions() hexapod.Options {
	return hexapod.Options{
		AssumeKnownGroundPoints: c.AssumeKnownGroundPoints,
		ResolveTwist:            c.ResolveTwist,
	}
}

package phasedarray

import (
	"encoding/json"
	"fmt"

	ms "github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/wiless/phasedarray/antenna"
	"github.com/wiless/phasedarray/arrayerr"
	"github.com/wiless/phasedarray/geometry"
)

// Setting is the construction-time configuration of an Array.
// Keys in JSON, maps and config files match the field names case-insensitively.
type Setting struct {
	N                 int      `json:"N" mapstructure:"N"`
	Layout            string   `json:"Layout" mapstructure:"Layout"`
	WavelengthSpacing float64  `json:"WavelengthSpacing" mapstructure:"WavelengthSpacing"`
	Seed              *int64   `json:"Seed" mapstructure:"Seed"` // only read by the random layout; clock-seeded when nil
	Element           string   `json:"Element" mapstructure:"Element"`
	Beamforming       string   `json:"Beamforming" mapstructure:"Beamforming"`
	SteerAzimuth      *float64 `json:"SteerAzimuth" mapstructure:"SteerAzimuth"`     // radian, required for classical beamforming
	SteerElevation    *float64 `json:"SteerElevation" mapstructure:"SteerElevation"` // radian, broadside when nil
}

func (s *Setting) SetDefault() {
	s.N = 4
	s.Layout = geometry.Linear.String()
	s.WavelengthSpacing = geometry.DefaultSpacing
	s.Seed = nil
	s.Element = antenna.MonopoleElement.String()
	s.Beamforming = antenna.Uniform.String()
	s.SteerAzimuth = nil
	s.SteerElevation = nil
}

func NewSetting() Setting {
	var result Setting
	result.SetDefault()
	return result
}

// Set overrides fields from a JSON object, e.g. `{"N":8,"Beamforming":"classical"}`.
func (s *Setting) Set(str string) error {
	if err := json.Unmarshal([]byte(str), s); err != nil {
		return fmt.Errorf("phasedarray: setting json: %v: %w", err, arrayerr.ErrInvalidConfiguration)
	}
	return nil
}

// Steer sets the classical steering direction.
func (s *Setting) Steer(dir antenna.Direction) {
	az, el := dir.Azimuth, dir.Elevation
	s.SteerAzimuth = &az
	s.SteerElevation = &el
}

// SteerDirection returns the steering direction, or nil when no azimuth is set.
func (s Setting) SteerDirection() *antenna.Direction {
	if s.SteerAzimuth == nil {
		return nil
	}
	dir := antenna.NewDirection(*s.SteerAzimuth)
	if s.SteerElevation != nil {
		dir.Elevation = *s.SteerElevation
	}
	return &dir
}

// Validate reports the first reason s cannot be built, wrapping arrayerr.ErrInvalidConfiguration.
// Layout-specific rules (element counts of the y layout, unsupported layouts) are left to the
// geometry builder.
func (s Setting) Validate() error {
	if s.N < 1 {
		return fmt.Errorf("phasedarray: N=%d: %w", s.N, arrayerr.ErrInvalidConfiguration)
	}
	if !(s.WavelengthSpacing > 0) {
		return fmt.Errorf("phasedarray: WavelengthSpacing=%v: %w", s.WavelengthSpacing, arrayerr.ErrInvalidConfiguration)
	}
	if _, err := geometry.ParseLayout(s.Layout); err != nil {
		return err
	}
	if _, err := antenna.ParseElementType(s.Element); err != nil {
		return err
	}
	strategy, err := antenna.ParseStrategy(s.Beamforming)
	if err != nil {
		return err
	}
	if strategy == antenna.Classical && s.SteerAzimuth == nil {
		return fmt.Errorf("phasedarray: classical beamforming without SteerAzimuth: %w", arrayerr.ErrInvalidConfiguration)
	}
	return nil
}

// DecodeSetting builds a Setting from a generic map, starting from the defaults.
// Strings are converted to numbers where needed.
func DecodeSetting(input map[string]interface{}) (Setting, error) {
	result := NewSetting()
	dec, err := ms.NewDecoder(&ms.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &result,
	})
	if err != nil {
		return Setting{}, err
	}
	if err := dec.Decode(input); err != nil {
		return Setting{}, fmt.Errorf("phasedarray: decode setting: %v: %w", err, arrayerr.ErrInvalidConfiguration)
	}
	return result, nil
}

// LoadSetting reads the config file `name` (json, yaml, toml, ...) from dir on top of the
// defaults. A missing file is not an error; the defaults are returned.
func LoadSetting(dir, name string) (Setting, error) {
	result := NewSetting()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(name)
	// Set all the default values
	{
		v.SetDefault("N", result.N)
		v.SetDefault("Layout", result.Layout)
		v.SetDefault("WavelengthSpacing", result.WavelengthSpacing)
		v.SetDefault("Element", result.Element)
		v.SetDefault("Beamforming", result.Beamforming)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Setting{}, fmt.Errorf("phasedarray: read config: %v: %w", err, arrayerr.ErrInvalidConfiguration)
		}
		log.WithFields(log.Fields{"dir": dir, "name": name}).Info("no config file, using defaults")
	} else {
		log.Infof("config loaded from %s", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&result); err != nil {
		return Setting{}, fmt.Errorf("phasedarray: unmarshal config: %v: %w", err, arrayerr.ErrInvalidConfiguration)
	}
	return result, nil
}

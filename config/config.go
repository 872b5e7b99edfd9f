// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const DefaultSuffix = "_FREQ"

// Config is the configuration for frequency encoding.
type Config struct {
	Encoder EncoderConfig `mapstructure:"encoder"`
	Log     LogConfig     `mapstructure:"log"`
}

// EncoderConfig controls how derived frequency columns are computed.
type EncoderConfig struct {
	// Suffix appended to the source column name.
	Suffix string `mapstructure:"suffix" validate:"required"`
	// DropMissing excludes nil and NaN values from counting.
	DropMissing bool `mapstructure:"drop_missing"`
	// Normalize writes relative frequencies instead of counts.
	Normalize bool `mapstructure:"normalize"`
}

type LogConfig struct {
	Debug      bool   `mapstructure:"debug"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size" validate:"gt=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Encoder: *GetDefaultEncoderConfig(),
		Log: LogConfig{
			MaxSize: 100,
		},
	}
}

func GetDefaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		Suffix: DefaultSuffix,
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [encoder]
	v.SetDefault("encoder.suffix", defaultConfig.Encoder.Suffix)
	v.SetDefault("encoder.drop_missing", defaultConfig.Encoder.DropMissing)
	v.SetDefault("encoder.normalize", defaultConfig.Encoder.Normalize)
	// [log]
	v.SetDefault("log.debug", defaultConfig.Log.Debug)
	v.SetDefault("log.path", defaultConfig.Log.Path)
	v.SetDefault("log.max_size", defaultConfig.Log.MaxSize)
	v.SetDefault("log.max_age", defaultConfig.Log.MaxAge)
	v.SetDefault("log.max_backups", defaultConfig.Log.MaxBackups)
}

type configBinding struct {
	key string
	env string
}

var bindings = []configBinding{
	{"encoder.suffix", "FREQENC_ENCODER_SUFFIX"},
	{"encoder.drop_missing", "FREQENC_ENCODER_DROP_MISSING"},
	{"encoder.normalize", "FREQENC_ENCODER_NORMALIZE"},
	{"log.debug", "FREQENC_LOG_DEBUG"},
	{"log.path", "FREQENC_LOG_PATH"},
	{"log.max_size", "FREQENC_LOG_MAX_SIZE"},
	{"log.max_age", "FREQENC_LOG_MAX_AGE"},
	{"log.max_backups", "FREQENC_LOG_MAX_BACKUPS"},
}

// LoadConfig loads configuration from a file and environment variables. An empty path
// loads defaults and environment variables only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Trace(err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.Trace(err)
	}
	return nil
}

package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Provider Provider `json:"provider" yaml:"provider" mapstructure:"provider"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
}

// Provider selects and configures the upstream metadata source.
type Provider struct {
	Kind        string        `json:"kind" yaml:"kind" mapstructure:"kind" validate:"oneof=tmdb tvdb"`
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gt=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration is usable for serving.
func (c Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

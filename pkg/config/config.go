package config

import (
	"github.com/spf13/viper"
)

// Config carries the tool-wide defaults. Every field can be overridden
// by the config file, the environment, or a command-line flag, in that
// order of precedence.
type Config struct {
	MaskKey      string `mapstructure:"mask_key"`      // default key for the mask command
	StrideUp     int    `mapstructure:"stride_up"`     // +1 run length (p)
	StrideDown   int    `mapstructure:"stride_down"`   // -1 run length (q)
	FlipKey      string `mapstructure:"flip_key"`      // default digit key for flipskip
	FlipSkip     int    `mapstructure:"flip_skip"`     // skip run length (n)
	Compress     bool   `mapstructure:"compress"`      // add a zstd stage around the cipher
	LegacyOutput bool   `mapstructure:"legacy_output"` // reversed, truncated hex for flipskip
	LogDB        string `mapstructure:"log_db"`        // SQLite log database file name
}

func DefaultConfig() *Config {
	return &Config{
		StrideUp:     2,
		StrideDown:   1,
		FlipSkip:     1,
		LegacyOutput: true,
		LogDB:        "cipherkit.db",
	}
}

// LoadConfig loads configuration from file and environment. A missing
// config file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("cipherkit")       // name of config file (without extension)
	viper.SetConfigType("yaml")            // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath(".")               // look for config in the working directory
	viper.AddConfigPath("/etc/cipherkit/") // path to look for the config file in
	viper.AddConfigPath("$HOME/.cipherkit")
	viper.SetEnvPrefix("CIPHERKIT") // will be uppercased automatically, CIPHERKIT_...
	viper.AutomaticEnv()            // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; run on defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Package config loads settings for the collectibles binary.
//
// Values come from struct tag defaults, a .env file next to the working
// directory, and environment variables named COLLECTIBLES_<SECTION>_<KEY>
// (for example COLLECTIBLES_STORAGE_BUCKET). Command-line flags override
// whatever is loaded here.
package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ukaji3/collectibles-go/internal/logger"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/output"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/profile"
	"github.com/ukaji3/collectibles-go/pkg/collectibles/server"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "COLLECTIBLES"

// PathsConfig holds the default input and output locations.
type PathsConfig struct {
	// Workbook is the source spreadsheet.
	Workbook string `mapstructure:"workbook" default:"references/collectibles.xlsx"`
	// Locations is the location reference table.
	Locations string `mapstructure:"locations" default:"src/lib/data/locations.json"`
	// Output is the generated catalog artifact.
	Output string `mapstructure:"output" default:"src/lib/data/collectibles.json"`
}

// Config holds all configuration for the application.
type Config struct {
	// Paths holds input and output file locations.
	Paths PathsConfig `mapstructure:"paths"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the catalog API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for publishing the artifact.
	Storage output.StorageConfig `mapstructure:"storage"`
	// Profile holds configuration for the player profile store.
	Profile profile.Config `mapstructure:"profile"`
}

// LoadConfig loads configuration from environment variables and the .env
// file in dir.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindValues registers every mapstructure key with its default tag value so
// AutomaticEnv can resolve it during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

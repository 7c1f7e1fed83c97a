package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/projkit-labs/projkit/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyPackageManager = "package_manager"
	KeyUnwanted       = "unwanted"
	KeyTemplatesDir   = "templates_dir"
)

// Keys returns the supported configuration keys.
func Keys() []string {
	return []string{KeyPackageManager, KeyUnwanted, KeyTemplatesDir}
}

// Dir returns the config directory: $PROJKIT_HOME when set, ~/.projkit/
// otherwise.
func Dir() string {
	if home := os.Getenv(branding.EnvVar("HOME")); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error.
func Load() error {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key as display text. Lists are joined
// with commas. Returns empty string if not set.
func Get(key string) string {
	if key == KeyUnwanted {
		return strings.Join(Unwanted(), ",")
	}
	return viper.GetString(key)
}

// PackageManager returns the preselected package manager, or "".
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// TemplatesDir returns the template override directory, or "".
func TemplatesDir() string {
	return viper.GetString(KeyTemplatesDir)
}

// Unwanted returns the tools that start as unwanted. The environment form
// is a comma- or space-separated string.
func Unwanted() []string {
	switch v := viper.Get(KeyUnwanted).(type) {
	case nil:
		return nil
	case string:
		return splitList(v)
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return splitList(fmt.Sprint(v))
	}
}

// Set validates and writes a config key-value pair. The unwanted key takes
// a comma-separated list.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q: supported keys are %s", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	settings := fileSettings()
	if key == KeyUnwanted {
		settings[key] = splitList(value)
	} else {
		settings[key] = value
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid value for %s: %s", key, result.Summary())
	}

	configFile := FilePath()
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", configFile, err)
	}
	viper.Set(key, settings[key])
	return nil
}

// fileSettings returns the settings currently stored in the config file,
// without environment overrides.
func fileSettings() map[string]any {
	settings := make(map[string]any)
	data, err := os.ReadFile(FilePath())
	if err != nil {
		return settings
	}
	_ = yaml.Unmarshal(data, &settings)
	if settings == nil {
		settings = make(map[string]any)
	}
	return settings
}

func isKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

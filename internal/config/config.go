// Package config loads gridkit CLI settings from an optional config file and
// GRIDKIT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI settings. Flags set explicitly on the command line are
// applied on top by the caller.
type Config struct {
	Layout      string
	Dir         string
	Renderer    string
	Output      string
	Prefix      string
	CSS         bool
	Viewport    int
	Width       int
	Interactive bool
	Theme       ThemeConfig
}

// ThemeConfig names a theme manifest file and the variant to select.
type ThemeConfig struct {
	Manifest string
	Variant  string
}

// Load reads configuration from path (or $GRIDKIT_CONFIG, or
// ~/.config/gridkit/config.yaml when present) and the environment. Env var
// overrides use prefix GRIDKIT_, with dots replaced by underscores.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("layout", "")
	v.SetDefault("dir", "")
	v.SetDefault("renderer", "html")
	v.SetDefault("output", "")
	v.SetDefault("prefix", "w")
	v.SetDefault("css", false)
	v.SetDefault("viewport", 1200)
	v.SetDefault("width", 96)
	v.SetDefault("interactive", false)
	v.SetDefault("theme.manifest", "")
	v.SetDefault("theme.variant", "")

	if path == "" {
		path = os.Getenv("GRIDKIT_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return Config{
		Layout:      v.GetString("layout"),
		Dir:         v.GetString("dir"),
		Renderer:    v.GetString("renderer"),
		Output:      v.GetString("output"),
		Prefix:      v.GetString("prefix"),
		CSS:         v.GetBool("css"),
		Viewport:    v.GetInt("viewport"),
		Width:       v.GetInt("width"),
		Interactive: v.GetBool("interactive"),
		Theme: ThemeConfig{
			Manifest: v.GetString("theme.manifest"),
			Variant:  v.GetString("theme.variant"),
		},
	}, nil
}

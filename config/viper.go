package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. KLINEVIZ_LOG_LEVEL.
const EnvPrefix = "KLINEVIZ"

// NewViper returns a viper instance that reads cfgFile when given, and
// otherwise searches ./configs, $HOME/.configs and the working directory for
// klineviz.yaml. Environment variables override file values.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		v.AddConfigPath("./configs")
		v.AddConfigPath(filepath.Join(home, ".configs"))
		v.AddConfigPath(".")
		v.SetConfigName("klineviz")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())
	return v, nil
}

// FromViper reads the config file (a missing file is not an error when the
// path was not given explicitly), applies env overrides and validates.
func FromViper(v *viper.Viper, explicit bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(timeToString)); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// timeToString turns YAML timestamps (an unquoted change.from) back into the
// strings the config holds.
func timeToString(from, to reflect.Type, data interface{}) (interface{}, error) {
	t, ok := data.(time.Time)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format(time.DateOnly), nil
	}
	return t.Format(time.RFC3339), nil
}

// setDefaults registers every key. FromViper decodes into a zero Config, so
// a key missing here has no default.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("symbols", d.Symbols)
	v.SetDefault("load.sort", d.Load.Sort)
	v.SetDefault("trends.window", d.Trends.Window)
	v.SetDefault("change.from", d.Change.From)
	v.SetDefault("change.to", d.Change.To)
	v.SetDefault("output.mode", d.Output.Mode)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.dpi", d.Output.DPI)
	v.SetDefault("output.width", d.Output.Width)
	v.SetDefault("output.height", d.Output.Height)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_file", d.Log.OutputFile)
	v.SetDefault("journal.type", d.Journal.Type)
	v.SetDefault("journal.path", d.Journal.Path)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("export.dir", d.Export.Dir)
}

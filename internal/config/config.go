// Package config reads viewer settings from flags, GEOMAP_* environment
// variables and an optional geomap.yaml, and builds the logger they
// describe.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"goemap/internal/pointarray"
)

const (
	KeyCompress   = "compress"
	KeyDecimate   = "decimate"
	KeyLogFile    = "log.file"
	KeyLogLevel   = "log.level"
	KeyLogMaxSize = "log.max_size"

	envPrefix  = "GEOMAP"
	configName = "geomap"
)

type Config struct {
	// Compress finalizes loaded geometry with delta-byte compression.
	Compress bool
	// Decimate flattens with the on-screen resolution instead of every
	// vertex.
	Decimate bool
	// LogFile is where logs go; empty disables logging since the
	// terminal belongs to the viewer.
	LogFile    string
	LogLevel   zapcore.Level
	LogMaxSize int // megabytes before rotation
}

// New returns a Viper with defaults and environment lookup installed.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCompress, true)
	v.SetDefault(KeyDecimate, true)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogMaxSize, 10)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the settings on fs and binds them into v, so a flag
// set on the command line wins over every other source.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.Bool("compress", true, "store loaded geometry delta-byte compressed")
	fs.Bool("decimate", true, "drop vertices closer than one screen dot")
	fs.String("log-file", "", "write logs to this file (rotated)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("config", "", "config file (default ./geomap.yaml or ~/.config/geomap/geomap.yaml)")

	for key, flag := range map[string]string{
		KeyCompress: "compress",
		KeyDecimate: "decimate",
		KeyLogFile:  "log-file",
		KeyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind flag %s", flag)
		}
	}
	return nil
}

// ReadFile loads path into v. With an empty path it searches the working
// directory and $HOME/.config/geomap for geomap.yaml and tolerates its
// absence.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		return errors.Wrapf(v.ReadInConfig(), "read config %s", path)
	}
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
	err := v.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return errors.Wrap(err, "read config")
}

// Load reads the typed settings out of v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Compress:   v.GetBool(KeyCompress),
		Decimate:   v.GetBool(KeyDecimate),
		LogFile:    v.GetString(KeyLogFile),
		LogMaxSize: v.GetInt(KeyLogMaxSize),
	}
	if err := c.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", KeyLogLevel)
	}
	if c.LogMaxSize <= 0 {
		return Config{}, errors.Errorf("config %s must be positive, got %d", KeyLogMaxSize, c.LogMaxSize)
	}
	return c, nil
}

// Compression is the level loaders finalize with.
func (c Config) Compression() pointarray.Compression {
	if c.Compress {
		return pointarray.DeltaByte
	}
	return pointarray.NoCompression
}

// Logger builds a JSON logger writing to a rotated LogFile, or a no-op
// logger when LogFile is empty.
func (c Config) Logger() *zap.Logger {
	if c.LogFile == "" {
		return zap.NewNop()
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: 3,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, c.LogLevel)
	return zap.New(core)
}

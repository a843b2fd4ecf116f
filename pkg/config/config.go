// Package config is for app wide settings that are unmarshalled
// from Viper. They come from, in order of precedence, command line flags
// (bound in pkg/cli), environment variables starting A3M_, a .env file,
// a3mtools.yaml and the defaults here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys, as they appear in the yaml file and as flag names.
const (
	KeyDataDir = "data-dir"
	KeyOutDir  = "out-dir"
	KeyWorkers = "workers"
	KeyGzip    = "gzip"
	KeyVerbose = "verbose"
)

// Config is the root-level settings struct
type Config struct {
	// relative input paths in batch manifests are taken from here
	DataDir string `mapstructure:"data-dir"`

	// relative output paths in batch manifests go here
	OutDir string `mapstructure:"out-dir"`

	// how many batch jobs run at once
	Workers int `mapstructure:"workers"`

	// compress output written by batch jobs
	Gzip bool `mapstructure:"gzip"`

	// print progress to stderr
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults puts the defaults into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyOutDir, ".")
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyGzip, false)
	v.SetDefault(KeyVerbose, false)
}

// Load reads the .env file, if there is one, then the config file.
// If cfgFile is empty we look for a3mtools.yaml in the current directory
// and in ~/.config/a3mtools, and it is no error if there is none.
// An explicitly named file has to be there.
func Load(v *viper.Viper, cfgFile, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	SetDefaults(v)
	v.SetEnvPrefix("A3M")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}
	v.SetConfigName("a3mtools")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "a3mtools"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// New returns a Config populated by v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %v", err)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}

// Resolve puts relative paths under dir. "", "-" and absolute paths
// are left alone.
func Resolve(dir, fname string) string {
	if fname == "" || fname == "-" || filepath.IsAbs(fname) || dir == "" {
		return fname
	}
	return filepath.Join(dir, fname)
}

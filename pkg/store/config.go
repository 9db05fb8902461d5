package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk journal and its log file.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFile() string
}

// LoadConfig reads `.serenitas.yaml` from $SERENITAS_CONFIG_PATH or the
// working directory, with SERENITAS_* environment overrides. A missing file is
// fine; defaults apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.serenitas.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetConfigName(".serenitas") // .yaml is implicit
	v.SetEnvPrefix("SERENITAS")
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "SERENITAS_LOG_LEVEL")
	_ = v.BindEnv("log.file", "SERENITAS_LOG_FILE")

	if override := os.Getenv("SERENITAS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return newFileConfig(v.GetString("path"), v.GetString("log.level"), v.GetString("log.file"))
}

func newFileConfig(path, level, logFile string) (*fileConfig, error) {
	base, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if logFile == "" {
		logFile = filepath.Join(base, "serenitas.log")
	} else if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, err
	}
	return &fileConfig{Path: base, Level: level, Log: logFile}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
	Log   string `json:"log"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) LogFile() string  { return f.Log }

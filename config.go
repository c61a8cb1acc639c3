package main

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level  string   `yaml:"level"`
	Output []string `yaml:"output"`
}

type Config struct {
	Log    LogConfig `yaml:"log"`
	Prompt bool      `yaml:"prompt"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Output: []string{"stderr"},
		},
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file is not
// an error.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	contents, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, xerrors.Errorf("read: %w", err)
	}
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, xerrors.Errorf("unmarshal: %w", err)
	}
	if len(cfg.Log.Output) == 0 {
		cfg.Log.Output = DefaultConfig().Log.Output
	}
	return cfg, nil
}

// Logger builds a development zap logger writing to the configured outputs.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, xerrors.Errorf("log level: %w", err)
	}
	logcfg := zap.NewDevelopmentConfig()
	logcfg.Level = level
	logcfg.OutputPaths = c.Log.Output
	logcfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := logcfg.Build()
	if err != nil {
		return nil, xerrors.Errorf("build: %w", err)
	}
	return logger, nil
}

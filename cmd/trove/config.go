package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Config is the content of the optional config file.
//
//	log_level = "debug"
//	working_directory = "/home/me/scripts"
type Config struct {
	LogLevel         string `toml:"log_level"`
	WorkingDirectory string `toml:"working_directory"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "warning",
	}
}

// loadConfig reads the config file at path. An empty path yields the
// default config.
func loadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decode config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, nil
}

package app

import "sparkcalc/app/config"

type Config = config.Config

var ErrConfig = config.ErrConfig

func DefaultConfig() Config { return config.Default() }

// LoadConfig reads a YAML config file. See config.Load.
func LoadConfig(path string) (Config, error) { return config.Load(path) }

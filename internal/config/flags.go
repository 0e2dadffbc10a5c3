package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags the user set are applied.
type Flags struct {
	ConfigPath  string
	PrintConfig bool

	fs       *pflag.FlagSet
	addr     string
	dataPath string
	memory   bool
	logLevel string
}

func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "config.yaml", "configuration file (YAML or TOML)")
	fs.BoolVar(&f.PrintConfig, "print-config", false, "print the effective configuration as TOML and exit")
	fs.StringVar(&f.addr, "addr", "", "HTTP listen address")
	fs.StringVar(&f.dataPath, "data", "", "path to the JSON task file")
	fs.BoolVar(&f.memory, "memory", false, "keep tasks in memory instead of a file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return f
}

func (f *Flags) Apply(cfg *Config) {
	if f.fs.Changed("addr") {
		cfg.HTTP.Address = f.addr
	}
	if f.fs.Changed("data") {
		cfg.Store.Path = f.dataPath
	}
	if f.fs.Changed("memory") {
		cfg.Store.Memory = f.memory
	}
	if f.fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

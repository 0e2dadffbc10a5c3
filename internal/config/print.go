package config

import (
	"io"

	"github.com/BurntSushi/toml"
)

// printable mirrors Config with durations rendered as strings.
type printable struct {
	HTTP struct {
		Address           string `toml:"address"`
		ReadHeaderTimeout string `toml:"read_header_timeout"`
		ShutdownTimeout   string `toml:"shutdown_timeout"`
		MaxBodyBytes      int64  `toml:"max_body_bytes"`
	} `toml:"http"`
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
}

// WriteTOML writes cfg in the TOML layout Load accepts.
func WriteTOML(w io.Writer, cfg Config) error {
	var p printable
	p.HTTP.Address = cfg.HTTP.Address
	p.HTTP.ReadHeaderTimeout = cfg.HTTP.ReadHeaderTimeout.String()
	p.HTTP.ShutdownTimeout = cfg.HTTP.ShutdownTimeout.String()
	p.HTTP.MaxBodyBytes = cfg.HTTP.MaxBodyBytes
	p.Store = cfg.Store
	p.Log = cfg.Log
	return toml.NewEncoder(w).Encode(p)
}

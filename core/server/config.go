package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// IsValidPort reports whether Port is a TCP port number.
func (c Config) IsValidPort() bool {
	n, err := strconv.Atoi(c.Port)
	return err == nil && n > 0 && n < 65536
}

package config

import (
	"net"
	"net/url"
)

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// PostgresDBName applies the configured database prefix to name.
func (c *Config) PostgresDBName(name string) string {
	return c.DB.Postgres.Prefix + name
}

// URL renders the endpoint as a postgres:// connection string for database
// dbName. Extra carries driver specific parameters and may be nil.
func (e PostgresEndpoint) URL(dbName string, extra url.Values) string {
	query := url.Values{}
	for key, values := range extra {
		query[key] = values
	}

	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

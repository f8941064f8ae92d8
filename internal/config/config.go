// Package config resolves the oracle's process-level configuration from
// flags and environment variables.
package config

import (
	"flag"
	"os"
)

const (
	defaultListenAddr = "127.0.0.1:3000"
)

// Config is the oracle server's resolved runtime configuration.
type Config struct {
	ListenAddr string
	LogFilter  string
}

// Parse resolves Config from the given args (normally os.Args[1:]) and the
// process environment. Flags take precedence over environment variables;
// LOG_FILTER/ORACLE_LISTEN_ADDR are the env var fallbacks.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("oracle", flag.ContinueOnError)
	addr := fs.String("listen", envOr("ORACLE_LISTEN_ADDR", defaultListenAddr), "address to bind the JSON-RPC server to")
	logFilter := fs.String("log-filter", os.Getenv("LOG_FILTER"), "zerolog level: trace, debug, info, warn, error, disabled")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{ListenAddr: *addr, LogFilter: *logFilter}, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers the server flags on fs and parses args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-g gRPC health service address in format [host]:[port]
//	-k HMAC key for write tokens
//	-c/-config json file path with configs
//	-driver database driver (sqlite3 or pgx)
//	-d database DSN
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-style comma-separated style files applied at startup
//	-builtin builtin style applied before -style files
//	-unknown-keys unknown key policy (warn, ignore, error)
//	-duplicates duplicate key policy (last-wins, reject)
//	-watch reload style files on change
//	-watch-debounce reload debounce (e.g., "500ms")
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcAddress NetAddress
	var authKey string
	var jsonConfigPath string
	var driver, databaseDSN string
	var requestTimeout time.Duration
	var logLevel string
	var stylePaths, builtin, unknownKeys, duplicates string
	var watch bool
	var watchDebounce time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "g", "gRPC health service address host:port")
	fs.StringVar(&authKey, "k", "", "HMAC key for write tokens")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&stylePaths, "style", "", "Comma-separated style files applied at startup")
	fs.StringVar(&builtin, "builtin", "", "Builtin style applied before -style files")
	fs.StringVar(&unknownKeys, "unknown-keys", "", "Unknown key policy (warn, ignore, error)")
	fs.StringVar(&duplicates, "duplicates", "", "Duplicate key policy (last-wins, reject)")
	fs.BoolVar(&watch, "watch", false, "Reload style files when they change")
	fs.DurationVar(&watchDebounce, "watch-debounce", 0, "Reload debounce (e.g., 500ms)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Style: Style{
			Paths:         splitList(stylePaths),
			Builtin:       builtin,
			UnknownKeys:   unknownKeys,
			Duplicates:    duplicates,
			Watch:         watch,
			WatchDebounce: watchDebounce,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			GRPCAddress:    grpcAddress.String(),
			AuthKey:        authKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

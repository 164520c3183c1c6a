package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-adapter-address address of a running server for the client
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-default-portal id of the deployment's default portal
//	-base-portal id of the portal every other portal inherits from
//	-portals-dir directory with portal definitions
//	-log-level minimum log level
//	-c/-config json file path with configs
//
// Positional arguments left after the flags are returned in
// [StructuredConfig.Args].
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var requestTimeout time.Duration
	var defaultPortal string
	var basePortal string
	var portalsDir string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("edsc-portals", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "adapter-address", "Portal server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&defaultPortal, "default-portal", "", "Default portal id")
	fs.StringVar(&basePortal, "base-portal", "", "Base portal id")
	fs.StringVar(&portalsDir, "portals-dir", "", "Portal definitions directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultPortal: defaultPortal,
			LogLevel:      logLevel,
		},
		Portals: Portals{
			BasePortal: basePortal,
			Dir:        portalsDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

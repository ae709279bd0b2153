// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a command's flag set. Unset flags keep
// their zero value and therefore never override other configuration
// sources.
type Flags struct {
	serverAddress  NetAddress
	clientAddress  string
	databaseDSN    string
	stateDSN       string
	requestTimeout time.Duration
	autoLock       time.Duration
	length         int
	logLevel       string
	logFile        string
	jsonConfigPath string
}

// BindClientFlags registers the client flags on fs.
//
// Flags:
//
//	-a, --address     server base URL (e.g. http://localhost:8080)
//	    --timeout     request timeout (e.g. "15s")
//	    --state-dsn   client state SQLite file
//	    --auto-lock   inactivity timeout before the vault locks (e.g. "60s")
//	    --log-level   log level
//	    --log-file    client log file
//	-c, --config      json file path with configs
func BindClientFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.clientAddress, "address", "a", "", "Server base URL")
	fs.DurationVar(&f.requestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&f.stateDSN, "state-dsn", "", "Client state SQLite file")
	fs.DurationVar(&f.autoLock, "auto-lock", 0, "Inactivity timeout before lock (e.g., 60s)")
	f.bindCommon(fs)
	fs.StringVar(&f.logFile, "log-file", "", "Client log file")
	return f
}

// BindGeneratorFlags registers the password generator flags on fs.
func BindGeneratorFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.IntVarP(&f.length, "length", "l", 0, "Generated password length")
	f.bindCommon(fs)
	return f
}

// BindServerFlags registers the server flags on fs.
//
// Flags:
//
//	-a, --address          listen address in format [host]:[port]
//	-d, --database-dsn     database DSN (postgres URL or SQLite file)
//	    --request-timeout  request timeout (e.g. "30s")
//	    --log-level        log level
//	-c, --config           json file path with configs
func BindServerFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.databaseDSN, "database-dsn", "d", "", "Database DSN")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	f.bindCommon(fs)
	return f
}

func (f *Flags) bindCommon(fs *pflag.FlagSet) {
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
}

// Config converts the parsed flag values into a partial [StructuredConfig].
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.logLevel,
			LogFile:  f.logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    f.clientAddress,
			RequestTimeout: f.requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: f.databaseDSN},
			State: State{DSN: f.stateDSN},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Session:      Session{AutoLockTimeout: f.autoLock},
		Generator:    Generator{Length: f.length},
		JSONFilePath: f.jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// parseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. Parsing stops at the first positional argument; the
// remainder stays available through fs.Args().
//
// Flags:
//
//	-a control API listen address in format [host]:[port]
//	-remote control API address used by presencectl
//	-d settings database DSN
//	-c/-config json file path with configs
//	-poll-interval callback pump cadence (e.g. "100ms")
//	-request-timeout control request timeout (e.g. "5s")
//	-start-label start button label
//	-update-label update button label
//	-log-file panel log file path
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, remoteAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var pollInterval time.Duration
	var requestTimeout time.Duration
	var startLabel, updateLabel string
	var logFile string

	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.Var(&remoteAddress, "remote", "Daemon control API address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Settings database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Callback poll interval (e.g., 100ms)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Control request timeout (e.g., 5s)")
	fs.StringVar(&startLabel, "start-label", "", "Start button label")
	fs.StringVar(&updateLabel, "update-label", "", "Update button label")
	fs.StringVar(&logFile, "log-file", "", "Panel log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Presence: Presence{
			PollInterval: pollInterval,
			StartLabel:   startLabel,
			UpdateLabel:  updateLabel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

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
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-m MongoDB connection URI
//	-db MongoDB database name
//	-r Redis address for the offer cache
//	-n NATS URL
//	-c/-config json file path with configs
//	-images-backend cloudinary|minio
//	-images-root top-level image folder
//	-frontend-url allowed CORS origin
//	-log-level zerolog level
//	-password-hasher sha256|argon2id
//	-max-page-size cap on the listing page size
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vinted-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var mongoURI, mongoDatabase string
	var redisAddress string
	var natsURL string
	var jsonConfigPath string
	var imagesBackend, imagesRoot string
	var frontendURL string
	var logLevel, passwordHasher string
	var maxPageSize int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&mongoURI, "m", "", "MongoDB connection URI")
	fs.StringVar(&mongoDatabase, "db", "", "MongoDB database name")
	fs.StringVar(&redisAddress, "r", "", "Redis address host:port")
	fs.StringVar(&natsURL, "n", "", "NATS URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&imagesBackend, "images-backend", "", "Image store backend (cloudinary, minio)")
	fs.StringVar(&imagesRoot, "images-root", "", "Top-level image folder")
	fs.StringVar(&frontendURL, "frontend-url", "", "Allowed CORS origin")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password digest for new users (sha256, argon2id)")
	fs.IntVar(&maxPageSize, "max-page-size", 0, "Maximum listing page size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			PasswordHasher: passwordHasher,
			MaxPageSize:    maxPageSize,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Images: Images{
			Backend: imagesBackend,
			Root:    imagesRoot,
		},
		Broker: Broker{
			NATSURL: natsURL,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			FrontendURL: frontendURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when the address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", "[ipv6]:port", ":port" or a bare port. The host
// must be empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	if !strings.Contains(s, ":") {
		s = ":" + s
	}

	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

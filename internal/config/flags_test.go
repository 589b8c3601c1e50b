// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress(t *testing.T) {
	tests := []struct {
		input    string
		wantErr  string
		wantAddr NetAddress
		wantStr  string
	}{
		{input: "localhost:8080", wantAddr: NetAddress{Host: "localhost", Port: 8080}, wantStr: "localhost:8080"},
		{input: "0.0.0.0:3000", wantAddr: NetAddress{Host: "0.0.0.0", Port: 3000}, wantStr: "0.0.0.0:3000"},
		{input: ":3000", wantAddr: NetAddress{Port: 3000}, wantStr: ":3000"},
		{input: "3000", wantAddr: NetAddress{Port: 3000}, wantStr: ":3000"},
		{input: "[::1]:9090", wantAddr: NetAddress{Host: "::1", Port: 9090}, wantStr: "[::1]:9090"},
		{input: "host:port:extra", wantErr: "need address in a form `host:port`"},
		{input: "localhost:abc", wantErr: "invalid port"},
		{input: ":", wantErr: "invalid port"},
		{input: "localhost:0", wantErr: "port number must be between 1 and 65535"},
		{input: "localhost:70000", wantErr: "port number must be between 1 and 65535"},
		{input: "mongo:8080", wantErr: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, addr.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, addr)
			assert.Equal(t, tt.wantStr, addr.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "127.0.0.1:8080",
				"-m", "mongodb://localhost:27017",
				"-db", "market",
				"-r", "localhost:6379",
				"-n", "nats://localhost:4222",
				"-c", "/path/to/config.json",
				"-images-backend", "minio",
				"-images-root", "market",
				"-frontend-url", "https://front.example",
				"-log-level", "warn",
				"-password-hasher", "argon2id",
				"-max-page-size", "25",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
				assert.Equal(t, "market", cfg.Storage.Mongo.Database)
				assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
				assert.Equal(t, "nats://localhost:4222", cfg.Broker.NATSURL)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "minio", cfg.Images.Backend)
				assert.Equal(t, "market", cfg.Images.Root)
				assert.Equal(t, "https://front.example", cfg.Server.FrontendURL)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "argon2id", cfg.App.PasswordHasher)
				assert.Equal(t, 25, cfg.App.MaxPageSize)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "non-numeric page size", args: []string{"-max-page-size", "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

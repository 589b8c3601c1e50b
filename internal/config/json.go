// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
// Durations are written as strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogLevel       string `json:"log_level"`
		PasswordHasher string `json:"password_hasher"`
		MaxPageSize    int    `json:"max_page_size"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Mongo struct {
			URI            string   `json:"uri"`
			Database       string   `json:"database"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"mongo,omitempty"`

		Redis struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			OfferTTL Duration `json:"offer_ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Images struct {
		Backend string `json:"backend"`
		Root    string `json:"root"`

		Cloudinary struct {
			CloudName string   `json:"cloud_name"`
			APIKey    string   `json:"api_key"`
			APISecret string   `json:"api_secret"`
			BaseURL   string   `json:"base_url"`
			Timeout   Duration `json:"timeout"`
		} `json:"cloudinary,omitempty"`

		MinIO struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"minio,omitempty"`
	} `json:"images,omitempty"`

	Broker struct {
		NATSURL string `json:"nats_url"`
	} `json:"broker,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		FrontendURL     string   `json:"frontend_url"`
		MaxUploadSize   int64    `json:"max_upload_size"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		CleanupInterval    Duration `json:"cleanup_interval"`
		CleanupMaxAttempts int      `json:"cleanup_max_attempts"`
		CleanupQueueSize   int      `json:"cleanup_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:       jsonCfg.App.LogLevel,
			PasswordHasher: jsonCfg.App.PasswordHasher,
			MaxPageSize:    jsonCfg.App.MaxPageSize,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:            jsonCfg.Storage.Mongo.URI,
				Database:       jsonCfg.Storage.Mongo.Database,
				ConnectTimeout: time.Duration(jsonCfg.Storage.Mongo.ConnectTimeout),
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				OfferTTL: time.Duration(jsonCfg.Storage.Redis.OfferTTL),
			},
		},
		Images: Images{
			Backend: jsonCfg.Images.Backend,
			Root:    jsonCfg.Images.Root,
			Cloudinary: Cloudinary{
				CloudName: jsonCfg.Images.Cloudinary.CloudName,
				APIKey:    jsonCfg.Images.Cloudinary.APIKey,
				APISecret: jsonCfg.Images.Cloudinary.APISecret,
				BaseURL:   jsonCfg.Images.Cloudinary.BaseURL,
				Timeout:   time.Duration(jsonCfg.Images.Cloudinary.Timeout),
			},
			MinIO: MinIO{
				Endpoint:  jsonCfg.Images.MinIO.Endpoint,
				AccessKey: jsonCfg.Images.MinIO.AccessKey,
				SecretKey: jsonCfg.Images.MinIO.SecretKey,
				Bucket:    jsonCfg.Images.MinIO.Bucket,
				UseSSL:    jsonCfg.Images.MinIO.UseSSL,
				PublicURL: jsonCfg.Images.MinIO.PublicURL,
			},
		},
		Broker: Broker{
			NATSURL: jsonCfg.Broker.NATSURL,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			FrontendURL:     jsonCfg.Server.FrontendURL,
			MaxUploadSize:   jsonCfg.Server.MaxUploadSize,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			CleanupInterval:    time.Duration(jsonCfg.Workers.CleanupInterval),
			CleanupMaxAttempts: jsonCfg.Workers.CleanupMaxAttempts,
			CleanupQueueSize:   jsonCfg.Workers.CleanupQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

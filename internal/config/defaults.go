// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDotEnvPath     = ".env"
	defaultTokenIssuer    = "beatfluencer-api"
	defaultTokenDuration  = 30 * time.Minute
	defaultVersion        = "1.0.0"
	defaultLogLevel       = "info"
	defaultHTTPAddress    = ":8001"
	defaultDBDriver       = DriverMongo
	defaultDBName         = "beatfluencer"
	defaultUploadDir      = "uploads"
	defaultLoginAttempts  = 10
	defaultLoginWindow    = time.Minute
	defaultAdapterAddress = "http://localhost:8001"
	defaultAdapterTimeout = 30 * time.Second
)

// defaults returns the lowest-priority config source.
func defaults() *StructuredConfig {
	seed := true

	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			Version:          defaultVersion,
			LogLevel:         defaultLogLevel,
			SeedDefaultUsers: &seed,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
			CORSOrigins: []string{"*"},
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
				Name:   defaultDBName,
			},
			Files: Files{
				UploadDir: defaultUploadDir,
			},
		},
		Limiter: Limiter{
			LoginAttempts: defaultLoginAttempts,
			LoginWindow:   defaultLoginWindow,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the merged server [StructuredConfig] is usable:
// the token sign key and the database connection string are required and
// the driver must be known.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}

	switch cfg.Storage.DB.Driver {
	case DriverMongo:
		if cfg.Storage.DB.Name == "" {
			err = errors.Join(err, ErrMissingDatabaseName)
		}
	case DriverPostgres:
	default:
		err = errors.Join(err, ErrUnknownDBDriver)
	}

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrMissingDatabaseURI)
	}

	if cfg.Limiter.LoginAttempts < 1 || cfg.Limiter.LoginWindow <= 0 {
		err = errors.Join(err, ErrInvalidLimiterConfigs)
	}

	return err
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

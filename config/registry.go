/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"github.com/rs/zerolog"

	"github.com/suparena/entitystate"
)

// Options converts the registry settings into entitystate registry options.
func (c RegistryConfig) Options(logger zerolog.Logger) []entitystate.Option {
	return []entitystate.Option{
		entitystate.WithLogger(logger),
		entitystate.WithMapCapacity(c.MapCapacity),
	}
}

// NewRegistry creates a registry configured from c.
func (c *Config) NewRegistry(logger zerolog.Logger) *entitystate.Registry {
	return entitystate.NewRegistry(c.Registry.Options(logger)...)
}

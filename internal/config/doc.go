// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

/*
Package config loads Trialscope configuration with Koanf v2.

Sources, lowest to highest priority:
  - built-in defaults (defaultConfig)
  - an optional YAML file (CONFIG_PATH, ./config.yaml, /etc/trialscope/config.yaml)
  - environment variables, mapped explicitly by envTransformFunc

# Database tiers

The database section carries the inputs for all three connection tiers
(DATABASE_URL; DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD; local
fallback). Resolution itself lives in internal/database.

# Example config.yaml

	database:
	  host: db.internal
	  name: clinical
	  user: analytics
	  read_only: true
	server:
	  port: 8000
	api:
	  prefix: /api
	logging:
	  level: debug
	  format: console
*/
package config

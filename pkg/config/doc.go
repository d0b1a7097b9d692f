// Package config loads the framesight pipeline configuration from a
// YAML file with environment-variable overrides.
//
// Example file:
//
//	logLevel: info
//	filter: warn
//	sampleRates:
//	  warn: 0.25
//	  info: 0.05
//	rateLimit: 100
//	rateBurst: 20
//	disabledProviders:
//	  - process
//	output:
//	  format: yaml
//
// FRAMESIGHT_FILTER and FRAMESIGHT_RATE_LIMIT override the file values
// when set.
package config

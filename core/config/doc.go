// Package config provides configuration management for the host.
//
// It uses Viper to read environment variables (optionally loaded from a .env
// file) into a single Config struct. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: furniture placement database connection
//   - Storage: S3/MinIO credentials and the bucket holding region definitions
//   - Log: logging level and format
//   - Integration: available companion components and adapter settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	probe := loader.ParseComponents(cfg.Integration.Components)
package config

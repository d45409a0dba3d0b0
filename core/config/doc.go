// Package config provides configuration management for blog-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live in the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: driver (sqlite, mysql, postgres) and connection details
//   - Remote: remote API endpoints and transport timeouts
//   - Jobs: bootstrap chunk size, reconcile schedule, report directory
//   - Storage: S3/MinIO report archive
//   - Log: logging level, format and optional rotating file
//
// Environment variables map to nested keys: REMOTE_POSTS_URL sets remote.posts_url.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

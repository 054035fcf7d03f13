package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// CatalogConfig contains the settings for the on-disk catalog content.
type CatalogConfig struct {
	// ContentDir is the content root holding the Decks, Visuals, Sounds,
	// Covers, Categories, and Themes directories.
	ContentDir string `mapstructure:"content_dir" validate:"required"`

	// ValidateAssets makes startup run the full referential-integrity
	// scan after loading the catalog and fail on any dangling asset
	// reference. Off by default: missing assets then surface lazily as
	// not-found at request time.
	ValidateAssets bool `mapstructure:"validate_assets"`
}

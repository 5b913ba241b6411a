package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Billing  BillingConfig  `mapstructure:"billing"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// StorageConfig contains the file-area settings. Root is the directory
// under which logical folders (collection archives, user avatars) live.
type StorageConfig struct {
	Root string `mapstructure:"root" validate:"required"`
}

// BillingConfig contains the billing provider settings. The billing
// integration is optional per deployment: when StripeSecretKey is empty
// the account service runs without a billing capability.
type BillingConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key"`
}

// BillingEnabled reports whether a billing provider credential is
// configured for this deployment.
func (c BillingConfig) BillingEnabled() bool {
	return c.StripeSecretKey != ""
}

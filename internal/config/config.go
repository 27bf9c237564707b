package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Dev      DevConfig      `mapstructure:"dev"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// BaseURL, when set, is used to build Location headers instead of the request host.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver                 string `mapstructure:"driver"                    validate:"required,oneof=postgres memory"`
	URL                    string `mapstructure:"url"                       validate:"required_if=Driver postgres"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}

// DevConfig drives the dev:setup bootstrap command.
type DevConfig struct {
	UserName     string `mapstructure:"user_name"     validate:"required"`
	UserEmail    string `mapstructure:"user_email"    validate:"required,email"`
	UserPassword string `mapstructure:"user_password" validate:"required,max=72"`
	SeedAuthors  int    `mapstructure:"seed_authors"  validate:"gte=0"`
}

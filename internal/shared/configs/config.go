package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and configures the event store backend.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	DSN      string `mapstructure:"dsn" validate:"required"`
	MaxConns int    `mapstructure:"max_conns" validate:"omitempty,min=1,max=512"`
}

// ArchiveConfig controls the raw batch archive. RootDir is only needed when enabled.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	RootDir string `mapstructure:"root_dir" validate:"required_if=Enabled true"`
	Workers int    `mapstructure:"workers" validate:"omitempty,min=1,max=64"`
}

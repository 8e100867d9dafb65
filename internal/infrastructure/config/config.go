package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "helpdesk/internal/shared/config"
)

const envPrefix = "HELPDESK"

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
	Storage  sharedConfig.StorageConfig  `mapstructure:"storage"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configFile may be empty, in which case configs/config.yaml is searched for
// and its absence is not an error.
func Load(env string, configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	// Set environment variable prefix and replacer
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is the conventional override used by container platforms
	if err := v.BindEnv("server.port", envPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3001"})
	v.SetDefault("server.web_dir", "")

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.path", "helpdesk.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "helpdesk")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 7*24*60)

	// Storage defaults
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.url_prefix", "/uploads")
	v.SetDefault("storage.max_file_size", 10<<20)
	v.SetDefault("storage.max_files", 10)

	// Email defaults; an empty host disables notifications
	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@helpdesk.local")
	v.SetDefault("email.from_name", "Helpdesk")
}

package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// WebDir points at a built single-page frontend; empty disables SPA serving.
	WebDir string `mapstructure:"web_dir"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GetBaseURL returns the public base URL, falling back to the listen address.
func (s *ServerConfig) GetBaseURL() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	host := s.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	URLPrefix   string `mapstructure:"url_prefix"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
	MaxFiles    int    `mapstructure:"max_files"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// Enabled reports whether outgoing mail is configured.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

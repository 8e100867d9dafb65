package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3001"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxFileSize)
	assert.Equal(t, 10, cfg.Storage.MaxFiles)
	assert.False(t, cfg.Email.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "4000")
	t.Setenv("HELPDESK_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("HELPDESK_DATABASE_DRIVER", "mysql")

	cfg, err := Load("release", "")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWT.Secret)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "server:\n  port: 9090\nstorage:\n  upload_dir: /var/helpdesk/uploads\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/helpdesk/uploads", cfg.Storage.UploadDir)

	_, err = Load("", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

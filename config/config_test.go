package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"crm-web-server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
serverAddr: ":9000"
databaseConfig:
  dsn: "postgres://crm@localhost/crm?sslmode=disable"
s3Config:
  bucket: "documents"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, "postgres", cfg.DatabaseConfig.Driver)
	assert.Equal(t, "documents", cfg.S3Config.Bucket)
	assert.Equal(t, time.Hour, cfg.SignedURLTTL())
	assert.Equal(t, 5*time.Minute, cfg.MinSignedURLTTL())
	assert.Equal(t, "*/30 * * * *", cfg.Links.PurgeCron)
	assert.Equal(t, 60, cfg.RateLimit.PerMinute)
	assert.Equal(t, int64(50<<20), cfg.Upload.MaxRequestBytes)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret_key: "from-file"
admin:
  admin_token: "file-token"
`)
	t.Setenv("CRM_JWT_SECRET", "from-env")
	t.Setenv("CRM_ADMIN_TOKEN", "env-token")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, "env-token", cfg.Admin.AdminToken)
}

func TestLoadConfig_ExplicitValuesKept(t *testing.T) {
	path := writeConfig(t, `
databaseConfig:
  driver: "mongo"
links:
  defaultSignedURLTTL: 600
  minSignedURLTTL: 120
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.DatabaseConfig.Driver)
	assert.Equal(t, 10*time.Minute, cfg.SignedURLTTL())
	assert.Equal(t, 2*time.Minute, cfg.MinSignedURLTTL())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "serverAddr: [unterminated")
	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

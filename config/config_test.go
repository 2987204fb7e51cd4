package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: userapi
  log:
    level: info
http:
  port: 8080
database:
  driver: sqlite
  sqlitePath: ":memory:"
secretKey:
  access: from-yaml
auth:
  bcryptCost: 4
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)

	return dir
}

func TestNew_LoadsYAMLAndAppliesDefaults(t *testing.T) {
	writeTestConfig(t, testConfigYAML)
	t.Setenv(envJWTSecret, "")
	t.Setenv(envPort, "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.SQLitePath)
	assert.Equal(t, "from-yaml", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.ProtectUserRoutes)
	assert.Nil(t, cfg.Postgres)
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	writeTestConfig(t, testConfigYAML)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_PROTECTUSERROUTES", "true")
	t.Setenv("AUTH_TOKENTTL", "30m")
	t.Setenv(envJWTSecret, "")
	t.Setenv(envPort, "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.True(t, cfg.Auth.ProtectUserRoutes)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestNew_LegacyAliasesWin(t *testing.T) {
	writeTestConfig(t, testConfigYAML)
	t.Setenv(envJWTSecret, "legacy-secret")
	t.Setenv(envPort, "5000")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.SecretKey.Access)
	assert.Equal(t, 5000, cfg.HTTP.Port)
}

func TestNew_InvalidPortAlias(t *testing.T) {
	writeTestConfig(t, testConfigYAML)
	t.Setenv(envPort, "not-a-port")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT value")
}

func TestNew_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = " SQLite "

	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLitePath)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)

	empty := &Config{}
	applyDefaults(empty)
	assert.Equal(t, DriverPostgres, empty.Database.Driver)
	assert.Empty(t, empty.Database.SQLitePath)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
user = "booking"
dbname = "fideslex"

[auth]
jwt_secret = "from-file"

[mail]
from_email = "citas@fideslex.es"

[sweeper]
enabled = true
cron = "0 * * * *"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// .env ищется в рабочей директории
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, sample)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "Europe/Madrid", cfg.Schedule.Timezone)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "0 * * * *", cfg.Sweeper.Cron)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	path := writeConfig(t, sample)
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("IDENTITY_URL", "https://auth.fideslex.es/api/auth")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "https://auth.fideslex.es/api/auth", cfg.Identity.URL)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeConfig(t, sample)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte("SENDGRID_API_KEY=SG.test\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SENDGRID_API_KEY") })

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "SG.test", cfg.Mail.SendGridAPIKey)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt_secret")
	assert.Contains(t, err.Error(), "database.host")

	cfg.Database.User, cfg.Database.DBName, cfg.Auth.JWTSecret = "u", "d", "s"
	require.NoError(t, cfg.Validate())

	cfg.Schedule.Timezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestValidate_TrustedProxies(t *testing.T) {
	cfg := defaults()
	cfg.Database.User, cfg.Database.DBName, cfg.Auth.JWTSecret = "u", "d", "s"

	cfg.RateLimit.TrustedProxies = []string{"10.0.0.0/8", "192.0.2.10", "::1"}
	require.NoError(t, cfg.Validate())

	cfg.RateLimit.TrustedProxies = []string{"lb.internal"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit.trusted_proxies")
}

package config_test

import (
	"testing"
	"time"

	"kanban/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("ADMIN_SESSION_TTL_HOURS", "not-a-number")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := config.Load()

	assert.Equal(t, "db.local", cfg.DBHost)
	assert.Equal(t, 24*time.Hour, cfg.AdminSessionTTL)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestConfig_ConnectionStrings(t *testing.T) {
	cfg := &config.Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p",
		DBName: "kanban", DBSSLMode: "disable",
	}

	assert.Equal(t, "host=localhost user=u password=p dbname=kanban port=5432 sslmode=disable", cfg.DSN())
	assert.Equal(t, "pgx5://u:p@localhost:5432/kanban?sslmode=disable", cfg.MigrateURL())
}

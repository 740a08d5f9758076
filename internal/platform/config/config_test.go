package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_SQLiteForcesGorm(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REPOSITORY_BACKEND", "pgx")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, BackendGorm, cfg.RepositoryBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 240, cfg.MaxReportMonths)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadConfig()
	assert.Error(t, err)
}

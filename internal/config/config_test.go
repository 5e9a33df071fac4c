package config

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_MODE", "PORT", "DATABASE_URL", "DATABASE_NAME", "JWT_SECRET", "PLATFORM_PHONE", "AUDIT_DB_DRIVER", "RECONCILE_SCHEDULE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(quietLogger())
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.False(t, cfg.Database.URLSet)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "+263 778 864 239", cfg.Platform.Phone)
	assert.Equal(t, 0.05, cfg.Platform.FeeRate)
	assert.False(t, cfg.Audit.Enabled())
	assert.True(t, cfg.ReconcilerEnabled())
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DATABASE_NAME", "rentals")
	t.Setenv("ACCESS_TOKEN_HOURS", "2")
	t.Setenv("AUDIT_DB_DRIVER", "Postgres")
	t.Setenv("AUDIT_DB_DSN", "host=db user=audit")
	t.Setenv("RECONCILE_SCHEDULE", "off")

	cfg, err := Load(quietLogger())
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "rentals", cfg.Database.Name)
	assert.True(t, cfg.Database.NameSet)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "postgres", cfg.Audit.Driver)
	assert.True(t, cfg.Audit.Enabled())
	assert.False(t, cfg.ReconcilerEnabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_MODE":           "staging",
		"BCRYPT_COST":        "abc",
		"BCRYPT_COST=32":     "32",
		"BCRYPT_COST=3":      "3",
		"PLATFORM_FEE_RATE":  "1.5",
		"AUDIT_DB_DRIVER":    "sqlite",
		"ACCESS_TOKEN_HOURS": "-1",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(strings.SplitN(name, "=", 2)[0], value)
			_, err := Load(quietLogger())
			assert.Error(t, err)
		})
	}
}

func TestConnectAuditDisabled(t *testing.T) {
	db, err := ConnectAudit(Default(), quietLogger())
	require.NoError(t, err)
	assert.Nil(t, db)
}

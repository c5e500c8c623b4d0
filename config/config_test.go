package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("USER_CACHE_TTL", "")
	t.Setenv("RABBITMQ_USER_EVENTS_QUEUE", "")
	t.Setenv("MAIL_SEND_ENABLED", "")

	c := Load()
	assert.Equal(t, "user-registry", c.AppName)
	assert.Equal(t, 5*time.Minute, c.UserCacheTTL)
	assert.Equal(t, "user-events", c.RabbitMQUserEventsQueue)
	assert.False(t, c.MailSendEnabled)
	assert.False(t, c.MailConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("USER_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	c := Load()
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, int32(25), c.DBMaxConns)
	assert.Equal(t, 30*time.Second, c.UserCacheTTL)
	assert.Equal(t, 0, c.RateLimitPerMinute)
	assert.True(t, c.HTTPLogEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("USER_CACHE_TTL", "soon")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	c := Load()
	assert.Equal(t, int32(10), c.DBMaxConns)
	assert.Equal(t, 5*time.Minute, c.UserCacheTTL)
	assert.False(t, c.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	c := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "users", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/users?sslmode=disable", c.PostgresDSN())
}

func TestListSplitting(t *testing.T) {
	c := &Config{
		CORSAllowedOrigins: " http://a.test, ,http://b.test ",
		ElasticsearchAddrs: "",
		TrustedProxies:     "10.0.0.0/8,192.0.2.1",
	}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins())
	assert.Empty(t, c.ESAddrs())
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, c.TrustedProxyList())
}

func TestMailConfigured(t *testing.T) {
	c := &Config{
		MailSendEnabled: true,
		MailgunDomain:   "mg.example.com",
		MailgunAPIKey:   "key",
		MailgunSender:   "registry@example.com",
	}
	assert.False(t, c.MailConfigured())
	c.MailNotifyTo = "ops@example.com"
	assert.True(t, c.MailConfigured())
}

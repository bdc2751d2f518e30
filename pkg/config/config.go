package config

// SystemIdentityConfig drives the synthetic system identity: the bearer
// token value that resolves to a fixed admin without a store lookup. The
// defaults preserve the historical "Bearer 0 is the superuser" behavior.
type SystemIdentityConfig struct {
	Token int32  `env:"SYSTEM_IDENTITY_TOKEN" env-default:"0"`
	Email string `env:"SYSTEM_IDENTITY_EMAIL" env-default:"superuser"`
}

// EmailConfig holds SMTP settings for the account notifier
type EmailConfig struct {
	Enabled  bool   `env:"EMAIL_ENABLED" env-default:"false"`
	Host     string `env:"EMAIL_HOST" env-default:"localhost"`
	Port     int    `env:"EMAIL_PORT" env-default:"1025"`
	Username string `env:"EMAIL_USERNAME" env-default:""`
	Password string `env:"EMAIL_PASSWORD" env-default:""`
	From     string `env:"EMAIL_FROM" env-default:"noreply@example.com"`
	TLS      bool   `env:"EMAIL_TLS" env-default:"false"`
}

package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "BADGERCHAT_PORT"
	EnvLogLevel        = "BADGERCHAT_LOG_LEVEL"
	EnvShutdownTimeout = "BADGERCHAT_SHUTDOWN_TIMEOUT"

	// Message service (required)
	EnvAPIBaseURL      = "BADGERCHAT_API_BASE_URL"
	EnvAPIKey          = "BADGERCHAT_API_KEY"
	EnvWebBaseURL      = "BADGERCHAT_WEB_BASE_URL"
	EnvUpstreamTimeout = "BADGERCHAT_UPSTREAM_TIMEOUT"

	// Rendering
	EnvDisplayTimezone = "BADGERCHAT_DISPLAY_TIMEZONE"
	EnvDefaultLanguage = "BADGERCHAT_DEFAULT_LANGUAGE"

	// Sentry Feature
	EnvSentryDSN         = "BADGERCHAT_SENTRY_DSN"
	EnvSentryEnvironment = "BADGERCHAT_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "BADGERCHAT_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "BADGERCHAT_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "BADGERCHAT_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsAuthEnabled = "BADGERCHAT_METRICS_AUTH_ENABLED"
	EnvMetricsUsername    = "BADGERCHAT_METRICS_USERNAME"
	EnvMetricsPassword    = "BADGERCHAT_METRICS_PASSWORD"
)

// fileSuffix marks a variable holding the path of a secret file.
const fileSuffix = "_FILE"

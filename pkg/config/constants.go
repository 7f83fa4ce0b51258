package config

const (
	EnvPrefix = "SHOPSBUZZ"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced by tests and tooling.
const (
	EnvAppEnv   = "SHOPSBUZZ_APP_ENV"
	EnvPort     = "SHOPSBUZZ_APP_PORT"
	EnvLogLevel = "SHOPSBUZZ_LOG_LEVEL"
	EnvRedisURL = "SHOPSBUZZ_REDIS_URL"
)

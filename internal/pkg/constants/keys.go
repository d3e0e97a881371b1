package constants

// viper keys
const (
	ViperListenAddr     = "listen_addr"
	ViperPostgresDSN    = "postgres_dsn"
	ViperRedisAddr      = "redis_addr"
	ViperRedisPassword  = "redis_password"
	ViperRedisDB        = "redis_db"
	ViperCacheTTL       = "cache_ttl"
	ViperStreamInterval = "stream_interval"
	ViperCORSOrigins    = "cors_origins"
	ViperSecretKey      = "admin_secret"

	ViperUrgencyCriticalDays  = "urgency.critical_days"
	ViperUrgencyWarningDays   = "urgency.warning_days"
	ViperUrgencyCriticalLevel = "urgency.critical_level"
	ViperUrgencyWarningLevel  = "urgency.warning_level"

	ViperWeightSafety      = "score_weights.safety"
	ViperWeightEfficiency  = "score_weights.efficiency"
	ViperWeightUtilization = "score_weights.utilization"
	ViperWeightEvents      = "score_weights.events"
)

// cookie keys
const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"
)

package configkey

const (
	LogLevel      = "log.level"
	DebugMode     = "debug"
	RequestLogger = "request.logger"

	ServerPort = "server.port"

	MinioAccessKey = "minio.access.key"
	MinioSecretKey = "minio.secret.key"
	MinioHost      = "minio.host"
	MinioSecure    = "minio.secure"
	MinioBucket    = "minio.bucket"

	DatabaseUsername = "database.username"
	DatabaseDatabase = "database.database"
	DatabaseHost     = "database.host"
	DatabasePort     = "database.port"
	DatabaseSSLMode  = "database.sslmode"
	DatabaseTimezone = "database.timezone"
	DatabasePassword = "database.password"

	JWTSecret        = "jwt.secret"
	JWTValidityHours = "jwt.validity.hours"

	SummaryAPIURL = "summary.api.url"
	SummaryAPIKey = "summary.api.key"
	SummaryModel  = "summary.model"

	AdmissionWindowSeconds = "admission.window.seconds"

	AdminAPIURL = "admin.api.url"
	AdminToken  = "admin.api.token"
)

package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	Redis struct {
		Password string
		Database int
		Host     string
		Port     string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint      string
		RootUser      string
		RootPassword  string
		UseSSL        bool
		AssetsBucket  string
		PublicBaseURL string
	}
	JWT struct {
		SecretKey string
		Expire    int
	}
	CORS struct {
		AllowDomains string
	}
	Upload struct {
		MaxConcurrent   int
		ProgressTTLSecs int
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")

	// Redis
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	config.Minio.AssetsBucket = os.Getenv("MINIO_ASSETS_BUCKET")
	if config.Minio.AssetsBucket == "" {
		config.Minio.AssetsBucket = "assets"
	}
	config.Minio.PublicBaseURL = os.Getenv("MINIO_PUBLIC_BASE_URL")

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		config.JWT.Expire, _ = strconv.Atoi(val)
	} else {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	// Upload pipeline
	config.Upload.MaxConcurrent, _ = strconv.Atoi(os.Getenv("UPLOAD_MAX_CONCURRENT"))
	if config.Upload.MaxConcurrent <= 0 {
		config.Upload.MaxConcurrent = 4
	}
	config.Upload.ProgressTTLSecs, _ = strconv.Atoi(os.Getenv("UPLOAD_PROGRESS_TTL"))
	if config.Upload.ProgressTTLSecs <= 0 {
		config.Upload.ProgressTTLSecs = 3600
	}

	// Observability
	config.Grafana.OTLPEndpoint = os.Getenv("GRAFANA_OTLP_ENDPOINT")
	config.Grafana.ServiceName = os.Getenv("OTLP_SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "gau-dam-service"
	}

	config.Environment.Mode = os.Getenv("ENVIRONMENT_MODE")

	return &config
}

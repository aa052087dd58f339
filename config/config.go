package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"5001"  env:"APP_PORT"`
		BodyLimitMb int    `default:"20" env:"APP_BODY_LIMIT_MB"`
		CorsOrigins string `default:"http://localhost:5173, http://127.0.0.1:5173" env:"APP_CORS_ORIGINS"`
		LogLevel    string `default:"info" env:"LOG_LEVEL"`
	}
	Database struct {
		Host                   string `default:"127.0.0.1" env:"DB_HOST"`
		Port                   string `default:"5432" env:"DB_PORT"`
		Name                   string `default:"ats_system" env:"DB_NAME"`
		User                   string `default:"postgres" env:"DB_USER"`
		Password               string `default:"postgres" env:"DB_PASSWORD"`
		DebugMode              *bool  `default:"false" env:"DB_DEBUG_MODE"`
		MaxOpenConns           int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns           int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxLifetimeSec     int    `default:"1800" env:"DB_CONN_MAX_LIFETIME_SEC"`
		HealthCheckIntervalSec int    `default:"30" env:"DB_HEALTH_CHECK_INTERVAL_SEC"`
		MigrationLockFile      string `default:"/tmp/ats-backend-migrate.lock" env:"DB_MIGRATION_LOCK_FILE"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Name     string `default:"Admin" env:"ADMIN_NAME"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"ats-resumes" env:"S3_BUCKET_NAME"`
	}
	AI struct {
		Provider        string `default:"gemini" env:"AI_PROVIDER"` // gemini | yandex
		GeminiAPIKey    string `default:"" env:"GEMINI_API_KEY"`
		GeminiModel     string `default:"gemini-2.5-flash" env:"GEMINI_MODEL"`
		YandexIAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		YandexCatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		MaxConcurrent   int    `default:"4" env:"AI_MAX_CONCURRENT"`
	}
	Notify struct {
		WebhookURL string `default:"" env:"N8N_WEBHOOK_URL"`
		TimeoutSec int    `default:"2" env:"N8N_WEBHOOK_TIMEOUT_SEC"`
		ErrorsURL  string `default:"" env:"NOTIFY_ERRORS_URL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	loadDotEnv()
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// .env first, config.env as the local-dev fallback
func loadDotEnv() {
	for _, name := range []string{".env", "config.env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Overload(name); err != nil {
			log.WithError(err).WithField("file", name).Warn("failed to load env file")
			continue
		}
		log.WithField("file", name).Info("environment loaded")
		return
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string

	// StateBackend selects the persister: memory, file, sqlite, postgres,
	// redis or mongo.
	StateBackend  string
	StatePath     string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MongoURI      string
	MongoDB       string

	AuthSecret            string
	AccessTokenTTLMinutes int
	ManagerPIN            string

	BackupCron     string
	BackupDir      string
	BackupS3Bucket string
	BackupS3Prefix string
}

func Load() Config {
	// missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	tokenTTL, err := strconv.Atoi(getEnv("ACCESS_TOKEN_TTL_MINUTES", "480"))
	if err != nil || tokenTTL < 1 {
		tokenTTL = 480
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://127.0.0.1:3000"),

		StateBackend:  getEnv("STATE_BACKEND", "file"),
		StatePath:     getEnv("STATE_PATH", ""),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnv("MONGO_DB", "teknikservis"),

		AuthSecret:            strings.TrimSpace(os.Getenv("AUTH_SECRET")),
		AccessTokenTTLMinutes: tokenTTL,
		ManagerPIN:            strings.TrimSpace(os.Getenv("MANAGER_PIN")),

		BackupCron:     getEnv("BACKUP_CRON", ""),
		BackupDir:      getEnv("BACKUP_DIR", "backups"),
		BackupS3Bucket: os.Getenv("BACKUP_S3_BUCKET"),
		BackupS3Prefix: getEnv("BACKUP_S3_PREFIX", "teknikservis"),
	}

	return cfg
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

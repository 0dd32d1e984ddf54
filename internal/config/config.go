package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageFile  = "file"
	StorageMySQL = "mysql"
	StorageMongo = "mongo"
)

type Config struct {
	HTTPAddr  string
	StaticDir string

	Storage     string
	DataFile    string
	MySQLDSN    string
	MongoURI    string
	MongoDBName string

	AdminUsername string
	AdminPassword string

	SessionTTL           time.Duration
	SessionPruneInterval time.Duration
	CookieSecure         bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	LogLevel  string
	LogFormat string

	TelegramBotToken string
	TelegramChatID   string
	RemindDaysAhead  int
}

/*
Load reads the environment, first applying the dotenv file named by ENV_FILE
(.env by default). A missing dotenv file is fine, variables already set in the
process environment win over the file.
*/
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	return FromEnv()
}

func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8082"),
		StaticDir: getEnv("STATIC_DIR", "./static"),

		Storage:     strings.ToLower(getEnv("STORAGE", StorageFile)),
		DataFile:    getEnv("DATA_FILE", "data/birthdays.json"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "1232"),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}

	cfg.SessionTTL = getEnvDuration("SESSION_TTL", 24*time.Hour, &errs)
	cfg.SessionPruneInterval = getEnvDuration("SESSION_PRUNE_INTERVAL", time.Hour, &errs)
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", false, &errs)
	cfg.ReadTimeout = getEnvDuration("READ_TIMEOUT", 10*time.Second, &errs)
	cfg.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", 10*time.Second, &errs)
	cfg.IdleTimeout = getEnvDuration("IDLE_TIMEOUT", 60*time.Second, &errs)
	cfg.RemindDaysAhead = getEnvInt("REMIND_DAYS_AHEAD", 7, &errs)

	switch cfg.Storage {
	case StorageFile:
		if cfg.DataFile == "" {
			errs = append(errs, errors.New("DATA_FILE is empty"))
		}
	case StorageMySQL:
		if cfg.MySQLDSN == "" {
			errs = append(errs, errors.New("MYSQL_DSN is not set in environment"))
		}
	case StorageMongo:
		if cfg.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is not set in environment"))
		}
		if cfg.MongoDBName == "" {
			errs = append(errs, errors.New("MONGO_DB_NAME is not set in environment"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE %q", cfg.Storage))
	}

	if cfg.SessionPruneInterval <= 0 {
		errs = append(errs, errors.New("SESSION_PRUNE_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func getEnvBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func getEnvInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

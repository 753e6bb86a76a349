package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	PageSize  int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "littlelemon.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,
		PageSize:  getEnvInt("DEFAULT_PAGE_SIZE", 10),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 애플리케이션 설정
type Config struct {
	APIPort        int
	LogLevel       string
	LogFile        LogFileConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	AdminTokenHash string // bcrypt 해시, 비어 있으면 관리자 토큰 검사를 하지 않음
}

// DatabaseConfig MySQL 데이터베이스 설정
type DatabaseConfig struct {
	Host    string
	Port    int
	DBName  string
	Read    Credentials // 조회 전용 계정
	Service Credentials // 쓰기 가능 계정 (선택)
}

// Credentials 데이터베이스 접속 계정
type Credentials struct {
	User     string
	Password string
}

// Configured 계정이 설정되어 있는지 여부
func (c Credentials) Configured() bool {
	return c.User != ""
}

// RedisConfig Redis 설정 (Host가 비어 있으면 캐시를 사용하지 않음)
type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

// Enabled Redis 캐시 사용 여부
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// LogFileConfig 로그 파일 설정
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // 단일 파일 최대 크기(MB)
	MaxBackups int
	MaxAge     int // 보관 일수
	Compress   bool
}

// Load 환경 변수에서 설정을 읽어온다.
// .env 파일은 있으면 읽고, 없으면 프로세스 환경 변수만 사용한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		APIPort:  envInt("API_PORT", 8080),
		LogLevel: os.Getenv("LOG_LEVEL"),
		LogFile: LogFileConfig{
			Enabled:    envBool("LOG_FILE_ENABLED"),
			Path:       os.Getenv("LOG_FILE_PATH"),
			MaxSize:    envInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: envInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     envInt("LOG_FILE_MAX_AGE", 30),
			Compress:   envBool("LOG_FILE_COMPRESS"),
		},
		Database: DatabaseConfig{
			Host:   os.Getenv("DB_HOST"),
			Port:   envInt("DB_PORT", 3306),
			DBName: os.Getenv("DB_NAME"),
			Read: Credentials{
				User:     os.Getenv("DB_USER"),
				Password: os.Getenv("DB_PASSWORD"),
			},
			Service: Credentials{
				User:     os.Getenv("DB_SERVICE_USER"),
				Password: os.Getenv("DB_SERVICE_PASSWORD"),
			},
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     envInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
	}, nil
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}

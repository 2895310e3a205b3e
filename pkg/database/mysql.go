package database

import (
	"fmt"
	"time"

	"freenotice/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// NewReadConnection 조회 전용 계정으로 MySQL에 연결한다.
func NewReadConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	return connect(cfg, cfg.Read)
}

// NewWriteConnection 쓰기 가능 계정으로 MySQL에 연결한다.
// 서비스 계정이 설정되지 않았으면 (nil, nil)을 반환하고,
// 쓰기 작업은 상위 계층에서 차단된다.
func NewWriteConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if !cfg.Service.Configured() {
		return nil, nil
	}
	return connect(cfg, cfg.Service)
}

func connect(cfg config.DatabaseConfig, creds config.Credentials) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		creds.User, creds.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 확인 실패: %w", err)
	}

	return db, nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freenotice/config"
	"freenotice/internal/api"
	"freenotice/pkg/async"
	"freenotice/pkg/database"
	"freenotice/pkg/logger"
)

func main() {
	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 로거 초기화
	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	// 조회 전용 데이터베이스 연결
	readDB, err := database.NewReadConnection(cfg.Database)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", err)
	}
	defer readDB.Close()

	// 쓰기 가능 데이터베이스 연결 (서비스 계정이 없으면 nil)
	writeDB, err := database.NewWriteConnection(cfg.Database)
	if err != nil {
		logger.Fatal("서비스 계정 데이터베이스 연결 실패", err)
	}
	if writeDB == nil {
		logger.Warn("서비스 자격 증명이 없어 변경 API가 차단됩니다")
	} else {
		defer writeDB.Close()
	}

	// Redis 연결 (설정이 없으면 캐시 비활성)
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Redis 연결 실패", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 비동기 워커 시작
	worker := async.NewWorker(100, logger)
	worker.Start(2)
	defer worker.Stop()

	// API 라우터 초기화
	router := api.SetupRouter(cfg, logger, readDB, writeDB, redisClient, worker)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.APIPort),
		Handler: router,
	}

	// 서버 시작 (비차단)
	go func() {
		logger.Info(fmt.Sprintf("서버 시작, 포트: %d", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("서버 시작 실패", err)
		}
	}()

	// 정상 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("서버를 종료하는 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("서버 강제 종료", err)
	}

	logger.Info("서버가 정상 종료되었습니다")
}

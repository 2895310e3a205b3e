package api

import (
	"freenotice/config"
	"freenotice/internal/api/handler"
	"freenotice/internal/middleware"
	"freenotice/internal/repository"
	"freenotice/internal/service"
	"freenotice/pkg/async"
	"freenotice/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SetupRouter API 라우터를 구성한다.
// writeDB가 nil이면 변경 API는 자격 증명 오류로 차단된다.
func SetupRouter(cfg *config.Config, logger *logger.Logger, readDB, writeDB *sqlx.DB, redisClient *redis.Client, worker *async.Worker) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// 저장소: 조회와 쓰기는 계정이 분리된 별도 핸들을 사용한다.
	noticeReader := repository.NewNoticeReader(readDB)
	var noticeWriter *repository.NoticeWriter
	if writeDB != nil {
		noticeWriter = repository.NewNoticeWriter(writeDB)
	}

	noticeService := service.NewNoticeService(noticeReader, noticeWriter, redisClient, worker, logger)
	noticeHandler := handler.NewNoticeHandler(noticeService, logger)

	// 헬스 체크
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	RegisterNoticeRoutes(router, noticeHandler, middleware.AdminAuth(cfg.AdminTokenHash))

	return router
}

// RegisterNoticeRoutes 공지 관련 라우트를 등록한다.
func RegisterNoticeRoutes(router *gin.Engine, noticeHandler *handler.NoticeHandler, adminAuth gin.HandlerFunc) {
	blogs := router.Group("/api/blogs")

	// 조회 라우트
	blogs.GET("", noticeHandler.ListNotices)
	blogs.GET("/:id", noticeHandler.GetNotice)

	// 변경 라우트
	blogs.POST("", adminAuth, noticeHandler.CreateNotice)
	blogs.PATCH("/:id", adminAuth, noticeHandler.UpdateNotice)
	blogs.DELETE("/:id", adminAuth, noticeHandler.DeleteNotice)
}

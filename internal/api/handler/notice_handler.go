package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"freenotice/internal/constants"
	"freenotice/internal/model"
	"freenotice/internal/service"
	"freenotice/internal/types"
	"freenotice/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NoticeHandler 공지 API 처리기
type NoticeHandler struct {
	noticeService *service.NoticeService
	logger        *logger.Logger
}

// NewNoticeHandler 공지 처리기 인스턴스를 생성한다.
func NewNoticeHandler(noticeService *service.NoticeService, logger *logger.Logger) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
		logger:        logger,
	}
}

// maxListLimit 목록 조회 한도 상한
const maxListLimit = 100

// ListNotices 공지 목록 조회
// GET /api/blogs?homepage=&category=&highlight=&limit=
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	var filter model.NoticeFilter

	if v := c.Query("homepage"); v != "" {
		homepage := model.Homepage(v)
		filter.Homepage = &homepage
	}
	if v := c.Query("category"); v != "" {
		category := model.Category(v)
		filter.Category = &category
	}
	if v := c.Query("highlight"); v != "" {
		// 인식할 수 없는 토큰이면 조건을 걸지 않는다.
		if val, ok := types.ParseBoolToken(v); ok {
			filter.Highlight = &val
		}
	}
	if v := c.Query("limit"); v != "" {
		// 숫자가 아니거나 양수가 아니면 무시한다.
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			if limit > maxListLimit {
				limit = maxListLimit
			}
			filter.Limit = limit
		}
	}

	notices, err := h.noticeService.ListNotices(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.ErrListFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notices})
}

// GetNotice 공지 단건 조회
// GET /api/blogs/:id
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	id, ok := parseNoticeID(c)
	if !ok {
		return
	}

	notice, err := h.noticeService.GetNoticeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": constants.ErrNoticeNotFound})
			return
		}
		h.logger.Error("공지 조회 실패", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.ErrGetFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notice})
}

// CreateNotice 공지 등록
// POST /api/blogs
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	// 저장소 접근 전에 쓰기 자격을 먼저 확인한다.
	if err := h.noticeService.Writable(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var req types.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidBody})
		return
	}

	notice, err := req.Normalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.noticeService.CreateNotice(c.Request.Context(), notice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.ErrCreateFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// UpdateNotice 공지 부분 수정
// PATCH /api/blogs/:id
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, ok := parseNoticeID(c)
	if !ok {
		return
	}

	if err := h.noticeService.Writable(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var req types.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidBody})
		return
	}

	update, err := req.Normalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.noticeService.UpdateNotice(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": constants.ErrNoticeNotFound})
			return
		}
		h.logger.Error("공지 수정 실패", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.ErrUpdateFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// DeleteNotice 공지 삭제
// DELETE /api/blogs/:id
// 대상이 없어도 성공으로 응답한다.
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, ok := parseNoticeID(c)
	if !ok {
		return
	}

	if err := h.noticeService.Writable(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": constants.ErrDeleteFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": constants.SuccessDelete}})
}

// parseNoticeID 경로의 ID를 양의 정수로 해석한다.
// 실패하면 400 응답을 쓰고 false를 반환한다.
func parseNoticeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return 0, false
	}
	return id, true
}

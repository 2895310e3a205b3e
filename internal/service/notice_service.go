package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freenotice/internal/constants"
	"freenotice/internal/model"
	"freenotice/internal/repository"
	"freenotice/pkg/async"
	"freenotice/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrWriteStoreUnavailable 서비스 계정이 설정되지 않아 쓰기 작업을 할 수 없음
var ErrWriteStoreUnavailable = errors.New(constants.ErrServiceCredentials)

const cacheTTL = 5 * time.Minute

// NoticeService 공지 서비스.
// 조회는 reader, 변경은 writer를 통해서만 수행하고,
// writer가 없으면 변경 작업은 시도 전에 차단된다.
type NoticeService struct {
	reader      *repository.NoticeReader
	writer      *repository.NoticeWriter // nil이면 쓰기 불가
	redisClient *redis.Client            // nil이면 캐시 비활성
	worker      *async.Worker
	logger      *logger.Logger
}

// NewNoticeService 공지 서비스 인스턴스를 생성한다.
func NewNoticeService(reader *repository.NoticeReader, writer *repository.NoticeWriter, redisClient *redis.Client, worker *async.Worker, logger *logger.Logger) *NoticeService {
	return &NoticeService{
		reader:      reader,
		writer:      writer,
		redisClient: redisClient,
		worker:      worker,
		logger:      logger,
	}
}

// Writable 쓰기 저장소 사용 가능 여부를 확인한다.
// 변경 핸들러는 저장소 접근 전에 반드시 이 검사를 통과해야 한다.
func (s *NoticeService) Writable() error {
	if s.writer == nil {
		return ErrWriteStoreUnavailable
	}
	return nil
}

// ListNotices 조건에 맞는 공지 목록을 조회한다.
func (s *NoticeService) ListNotices(ctx context.Context, filter model.NoticeFilter) ([]model.BlogNotice, error) {
	cacheKey := listCacheKey(filter)
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var notices []model.BlogNotice
			if err := json.Unmarshal(cached, &notices); err == nil {
				return notices, nil
			}
		}
	}

	notices, err := s.reader.List(ctx, filter)
	if err != nil {
		s.logger.Error("공지 목록 조회 실패", "error", err)
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(notices); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return notices, nil
}

// GetNoticeByID ID로 공지 하나를 조회한다.
func (s *NoticeService) GetNoticeByID(ctx context.Context, id int64) (*model.BlogNotice, error) {
	cacheKey := fmt.Sprintf("notices:detail:%d", id)
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
			var notice model.BlogNotice
			if err := json.Unmarshal(cached, &notice); err == nil {
				return &notice, nil
			}
		}
	}

	notice, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(notice); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return notice, nil
}

// CreateNotice 공지를 등록하고 저장된 행을 반환한다.
func (s *NoticeService) CreateNotice(ctx context.Context, notice *model.BlogNotice) (*model.BlogNotice, error) {
	if s.writer == nil {
		return nil, ErrWriteStoreUnavailable
	}
	created, err := s.writer.Create(ctx, notice)
	if err != nil {
		s.logger.Error("공지 등록 실패", "error", err)
		return nil, err
	}
	s.scheduleInvalidate()
	return created, nil
}

// UpdateNotice 포함된 필드만 수정하고 수정된 행을 반환한다.
// 대상 행이 없으면 sql.ErrNoRows를 그대로 반환한다.
func (s *NoticeService) UpdateNotice(ctx context.Context, id int64, update model.NoticeUpdate) (*model.BlogNotice, error) {
	if s.writer == nil {
		return nil, ErrWriteStoreUnavailable
	}
	updated, err := s.writer.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.scheduleInvalidate()
	return updated, nil
}

// DeleteNotice ID로 공지를 삭제한다. 대상 행이 없어도 성공으로 처리한다.
func (s *NoticeService) DeleteNotice(ctx context.Context, id int64) error {
	if s.writer == nil {
		return ErrWriteStoreUnavailable
	}
	if err := s.writer.Delete(ctx, id); err != nil {
		s.logger.Error("공지 삭제 실패", "id", id, "error", err)
		return err
	}
	s.scheduleInvalidate()
	return nil
}

// scheduleInvalidate 변경 성공 후 캐시 무효화를 요청 경로 밖에서 수행한다.
func (s *NoticeService) scheduleInvalidate() {
	if s.redisClient == nil {
		return
	}
	task := async.Task{
		Name:    "notices:cache-invalidate",
		Handler: s.invalidateCache,
		Timeout: 10 * time.Second,
	}
	if s.worker != nil {
		s.worker.Submit(task)
		return
	}
	if err := s.invalidateCache(context.Background()); err != nil {
		s.logger.Error("캐시 무효화 실패", "error", err)
	}
}

// invalidateCache 공지 관련 캐시 키를 모두 삭제한다.
func (s *NoticeService) invalidateCache(ctx context.Context) error {
	iter := s.redisClient.Scan(ctx, 0, "notices:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("캐시 키 삭제 실패", "key", iter.Val(), "error", err)
		}
	}
	return iter.Err()
}

func listCacheKey(filter model.NoticeFilter) string {
	homepage, category, highlight := "-", "-", "-"
	if filter.Homepage != nil {
		homepage = string(*filter.Homepage)
	}
	if filter.Category != nil {
		category = string(*filter.Category)
	}
	if filter.Highlight != nil {
		highlight = fmt.Sprintf("%t", *filter.Highlight)
	}
	return fmt.Sprintf("notices:list:%s:%s:%s:%d", homepage, category, highlight, filter.Limit)
}

package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"freenotice/internal/model"
	"freenotice/internal/repository"
	"freenotice/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, withWriter bool) (*NoticeService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	reader := repository.NewNoticeReader(sqlxDB)
	var writer *repository.NoticeWriter
	if withWriter {
		writer = repository.NewNoticeWriter(sqlxDB)
	}
	return NewNoticeService(reader, writer, nil, nil, logger.NewLogger("error")), mock
}

// writer가 없으면 어떤 변경 작업도 저장소에 닿기 전에 실패해야 한다.
func TestMutationsFailClosedWithoutWriter(t *testing.T) {
	svc, mock := newTestService(t, false)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Writable(), ErrWriteStoreUnavailable)

	_, err := svc.CreateNotice(ctx, &model.BlogNotice{})
	assert.ErrorIs(t, err, ErrWriteStoreUnavailable)

	title := "제목"
	_, err = svc.UpdateNotice(ctx, 1, model.NoticeUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrWriteStoreUnavailable)

	assert.ErrorIs(t, svc.DeleteNotice(ctx, 1), ErrWriteStoreUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWritableWithWriter(t *testing.T) {
	svc, _ := newTestService(t, true)
	assert.NoError(t, svc.Writable())
}

// 캐시가 없어도 조회는 저장소로 바로 내려가야 한다.
func TestListWithoutCache(t *testing.T) {
	svc, mock := newTestService(t, false)

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM blog_notices ORDER BY highlight DESC, created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "homepage", "category", "title", "content", "created_at", "highlight"}).
			AddRow(int64(1), "freeconvert", "공지", "제목", "내용", createdAt, false))

	notices, err := svc.ListNotices(context.Background(), model.NoticeFilter{})
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, int64(1), notices[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCacheKeyPerFilter(t *testing.T) {
	homepage := model.HomepageFreeRecord
	highlight := true

	base := listCacheKey(model.NoticeFilter{})
	filtered := listCacheKey(model.NoticeFilter{Homepage: &homepage, Highlight: &highlight, Limit: 2})

	assert.Equal(t, "notices:list:-:-:-:0", base)
	assert.Equal(t, "notices:list:freerecord:-:true:2", filtered)
	assert.NotEqual(t, base, filtered)
}

package repository

import (
	"context"
	"strings"

	"freenotice/internal/model"

	"github.com/jmoiron/sqlx"
)

// NoticeReader 조회 전용 공지 저장소
type NoticeReader struct {
	db *sqlx.DB
}

// NewNoticeReader 조회 전용 저장소 인스턴스를 생성한다.
func NewNoticeReader(db *sqlx.DB) *NoticeReader {
	return &NoticeReader{db: db}
}

// List 조건에 맞는 공지 목록을 조회한다.
// 고정 공지 우선, 최신순으로 정렬한다.
func (r *NoticeReader) List(ctx context.Context, filter model.NoticeFilter) ([]model.BlogNotice, error) {
	query := "SELECT * FROM blog_notices"
	var conds []string
	var args []interface{}

	if filter.Homepage != nil {
		conds = append(conds, "homepage = ?")
		args = append(args, *filter.Homepage)
	}
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Highlight != nil {
		conds = append(conds, "highlight = ?")
		args = append(args, *filter.Highlight)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY highlight DESC, created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	notices := []model.BlogNotice{}
	if err := r.db.SelectContext(ctx, &notices, query, args...); err != nil {
		return nil, err
	}
	return notices, nil
}

// GetByID ID로 공지 하나를 조회한다.
func (r *NoticeReader) GetByID(ctx context.Context, id int64) (*model.BlogNotice, error) {
	var notice model.BlogNotice
	query := "SELECT * FROM blog_notices WHERE id = ?"
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

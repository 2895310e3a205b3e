package repository

import (
	"context"
	"strings"

	"freenotice/internal/model"

	"github.com/jmoiron/sqlx"
)

// NoticeWriter 쓰기 가능 공지 저장소.
// 서비스 계정 연결로만 생성되며, 조회 전용 핸들러에는 주입되지 않는다.
type NoticeWriter struct {
	db *sqlx.DB
}

// NewNoticeWriter 쓰기 저장소 인스턴스를 생성한다.
func NewNoticeWriter(db *sqlx.DB) *NoticeWriter {
	return &NoticeWriter{db: db}
}

// Create 공지를 저장하고 저장된 행을 다시 읽어 반환한다.
func (w *NoticeWriter) Create(ctx context.Context, notice *model.BlogNotice) (*model.BlogNotice, error) {
	query := `
		INSERT INTO blog_notices (homepage, category, title, content, created_at, highlight)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := w.db.ExecContext(ctx, query,
		notice.Homepage, notice.Category, notice.Title, notice.Content, notice.CreatedAt, notice.Highlight)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return w.getByID(ctx, id)
}

// Update 포함된 필드만 수정하고 수정된 행을 다시 읽어 반환한다.
// 행이 없으면 재조회에서 sql.ErrNoRows가 반환된다.
func (w *NoticeWriter) Update(ctx context.Context, id int64, update model.NoticeUpdate) (*model.BlogNotice, error) {
	var sets []string
	var args []interface{}

	if update.Homepage != nil {
		sets = append(sets, "homepage = ?")
		args = append(args, *update.Homepage)
	}
	if update.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *update.Category)
	}
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *update.Content)
	}
	if update.CreatedAt != nil {
		sets = append(sets, "created_at = ?")
		args = append(args, *update.CreatedAt)
	}
	if update.Highlight != nil {
		sets = append(sets, "highlight = ?")
		args = append(args, *update.Highlight)
	}

	query := "UPDATE blog_notices SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return w.getByID(ctx, id)
}

// Delete ID로 공지를 삭제한다.
// 대상 행이 없어도 오류로 취급하지 않는다.
func (w *NoticeWriter) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM blog_notices WHERE id = ?"
	_, err := w.db.ExecContext(ctx, query, id)
	return err
}

func (w *NoticeWriter) getByID(ctx context.Context, id int64) (*model.BlogNotice, error) {
	var notice model.BlogNotice
	query := "SELECT * FROM blog_notices WHERE id = ?"
	if err := w.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

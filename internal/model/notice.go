package model

import "time"

// Homepage 공지가 속한 사이트 구분
type Homepage string

// Homepage 값 목록
const (
	HomepageFreeConvert Homepage = "freeconvert"
	HomepageFreeRecord  Homepage = "freerecord"
)

// Valid 닫힌 집합의 멤버인지 검사한다.
func (h Homepage) Valid() bool {
	switch h {
	case HomepageFreeConvert, HomepageFreeRecord:
		return true
	}
	return false
}

// Category 공지 분류
type Category string

// Category 값 목록
const (
	CategoryNotice Category = "공지"
	CategoryNews   Category = "뉴스"
	CategoryEvent  Category = "이벤트"
	CategoryEtc    Category = "기타"
)

// Valid 닫힌 집합의 멤버인지 검사한다.
func (c Category) Valid() bool {
	switch c {
	case CategoryNotice, CategoryNews, CategoryEvent, CategoryEtc:
		return true
	}
	return false
}

// BlogNotice 공지 모델
type BlogNotice struct {
	ID        int64     `db:"id" json:"id"`
	Homepage  Homepage  `db:"homepage" json:"homepage"`
	Category  Category  `db:"category" json:"category"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Highlight bool      `db:"highlight" json:"highlight"`
}

// NoticeUpdate 부분 수정 내용. nil 필드는 변경하지 않는다.
type NoticeUpdate struct {
	Homepage  *Homepage
	Category  *Category
	Title     *string
	Content   *string
	CreatedAt *time.Time
	Highlight *bool
}

// Empty 변경할 필드가 하나도 없는지 여부
func (u NoticeUpdate) Empty() bool {
	return u.Homepage == nil && u.Category == nil && u.Title == nil &&
		u.Content == nil && u.CreatedAt == nil && u.Highlight == nil
}

// NoticeFilter 목록 조회 조건. nil/0 값은 조건을 걸지 않는다.
type NoticeFilter struct {
	Homepage  *Homepage
	Category  *Category
	Highlight *bool
	Limit     int
}

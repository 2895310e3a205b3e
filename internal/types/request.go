package types

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"freenotice/internal/constants"
	"freenotice/internal/model"
)

// FlexBool 문자열/숫자로 들어와도 불리언으로 강제 변환되는 필드.
// 인식할 수 없는 값은 false로 처리한다.
type FlexBool bool

// UnmarshalJSON bool, 숫자, 문자열 토큰을 모두 허용한다.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = FlexBool(t)
	case float64:
		*b = FlexBool(t != 0)
	case string:
		val, ok := ParseBoolToken(t)
		*b = FlexBool(ok && val)
	default:
		*b = false
	}
	return nil
}

// ParseBoolToken 불리언 토큰을 해석한다.
// true/1/yes → true, false/0/no → false, 그 외에는 ok=false.
func ParseBoolToken(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// 허용하는 created_at 입력 형식
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseNoticeDate created_at 문자열을 해석해 UTC로 정규화한다.
func ParseNoticeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New(constants.ErrInvalidDate)
}

// CreateNoticeRequest 공지 등록 요청
type CreateNoticeRequest struct {
	Homepage  string   `json:"homepage"`
	Category  string   `json:"category"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Highlight FlexBool `json:"highlight"`
}

// Normalize 필드를 검증하고 저장할 모델로 변환한다.
// 검증은 선언 순서대로 진행하며 첫 번째 위반에서 바로 실패한다.
func (r *CreateNoticeRequest) Normalize() (*model.BlogNotice, error) {
	homepage := model.Homepage(r.Homepage)
	if !homepage.Valid() {
		return nil, errors.New(constants.ErrInvalidHomepage)
	}

	category := model.Category(r.Category)
	if !category.Valid() {
		return nil, errors.New(constants.ErrInvalidCategory)
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, errors.New(constants.ErrTitleRequired)
	}

	content := strings.TrimSpace(r.Content)
	if content == "" {
		return nil, errors.New(constants.ErrContentRequired)
	}

	createdAt, err := ParseNoticeDate(r.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &model.BlogNotice{
		Homepage:  homepage,
		Category:  category,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		Highlight: bool(r.Highlight),
	}, nil
}

// UpdateNoticeRequest 공지 부분 수정 요청. 포함된 필드만 변경한다.
type UpdateNoticeRequest struct {
	Homepage  *string   `json:"homepage"`
	Category  *string   `json:"category"`
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt *string   `json:"created_at"`
	Highlight *FlexBool `json:"highlight"`
}

// Normalize 포함된 필드를 등록과 같은 규칙으로 검증해 변경 내용으로 변환한다.
// 변경할 필드가 하나도 없으면 실패한다.
func (r *UpdateNoticeRequest) Normalize() (model.NoticeUpdate, error) {
	var update model.NoticeUpdate

	if r.Homepage == nil && r.Category == nil && r.Title == nil &&
		r.Content == nil && r.CreatedAt == nil && r.Highlight == nil {
		return update, errors.New(constants.ErrNoUpdateFields)
	}

	if r.Homepage != nil {
		homepage := model.Homepage(*r.Homepage)
		if !homepage.Valid() {
			return update, errors.New(constants.ErrInvalidHomepage)
		}
		update.Homepage = &homepage
	}

	if r.Category != nil {
		category := model.Category(*r.Category)
		if !category.Valid() {
			return update, errors.New(constants.ErrInvalidCategory)
		}
		update.Category = &category
	}

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return update, errors.New(constants.ErrTitleRequired)
		}
		update.Title = &title
	}

	if r.Content != nil {
		content := strings.TrimSpace(*r.Content)
		if content == "" {
			return update, errors.New(constants.ErrContentRequired)
		}
		update.Content = &content
	}

	if r.CreatedAt != nil {
		createdAt, err := ParseNoticeDate(*r.CreatedAt)
		if err != nil {
			return update, err
		}
		update.CreatedAt = &createdAt
	}

	if r.Highlight != nil {
		highlight := bool(*r.Highlight)
		update.Highlight = &highlight
	}

	return update, nil
}

package types

import (
	"encoding/json"
	"testing"
	"time"

	"freenotice/internal/constants"
	"freenotice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolToken(t *testing.T) {
	cases := []struct {
		input string
		value bool
		ok    bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"1", true, true},
		{"yes", true, true},
		{"false", false, true},
		{"0", false, true},
		{"no", false, true},
		{" yes ", true, true},
		{"maybe", false, false},
		{"", false, false},
		{"2", false, false},
	}

	for _, tc := range cases {
		value, ok := ParseBoolToken(tc.input)
		assert.Equal(t, tc.ok, ok, "토큰 %q", tc.input)
		assert.Equal(t, tc.value, value, "토큰 %q", tc.input)
	}
}

func TestFlexBoolUnmarshal(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{`true`, true},
		{`false`, false},
		{`"yes"`, true},
		{`"no"`, false},
		{`"1"`, true},
		{`1`, true},
		{`0`, false},
		{`"glitter"`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(tc.input), &b), "입력 %s", tc.input)
		assert.Equal(t, tc.expected, bool(b), "입력 %s", tc.input)
	}
}

func TestParseNoticeDate(t *testing.T) {
	cases := []struct {
		input    string
		expected time.Time
	}{
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-01-01T09:30:00Z", time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-01-01T18:30:00+09:00", time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-01-01 09:30:00", time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)},
		{" 2025-01-01 ", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		parsed, err := ParseNoticeDate(tc.input)
		require.NoError(t, err, "입력 %q", tc.input)
		assert.True(t, parsed.Equal(tc.expected), "입력 %q: %v", tc.input, parsed)
		assert.Equal(t, time.UTC, parsed.Location())
	}

	_, err := ParseNoticeDate("어제")
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidDate, err.Error())

	_, err = ParseNoticeDate("")
	require.Error(t, err)
}

func TestCreateNormalize(t *testing.T) {
	req := CreateNoticeRequest{
		Homepage:  "freeconvert",
		Category:  "공지",
		Title:     "  Hello  ",
		Content:   "World",
		CreatedAt: "2025-01-01",
		Highlight: FlexBool(true),
	}

	notice, err := req.Normalize()
	require.NoError(t, err)
	assert.Equal(t, model.HomepageFreeConvert, notice.Homepage)
	assert.Equal(t, model.CategoryNotice, notice.Category)
	assert.Equal(t, "Hello", notice.Title)
	assert.Equal(t, "World", notice.Content)
	assert.True(t, notice.CreatedAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, notice.Highlight)
}

// 첫 번째로 위반한 필드의 메시지가 반환되어야 한다.
func TestCreateNormalizeFailFast(t *testing.T) {
	valid := CreateNoticeRequest{
		Homepage:  "freerecord",
		Category:  "뉴스",
		Title:     "제목",
		Content:   "내용",
		CreatedAt: "2025-03-01",
	}

	cases := []struct {
		name    string
		mutate  func(r *CreateNoticeRequest)
		message string
	}{
		{"homepage", func(r *CreateNoticeRequest) { r.Homepage = "blog" }, constants.ErrInvalidHomepage},
		{"category", func(r *CreateNoticeRequest) { r.Category = "잡담" }, constants.ErrInvalidCategory},
		{"title 공백", func(r *CreateNoticeRequest) { r.Title = "   " }, constants.ErrTitleRequired},
		{"title 빈 문자열", func(r *CreateNoticeRequest) { r.Title = "" }, constants.ErrTitleRequired},
		{"content", func(r *CreateNoticeRequest) { r.Content = "" }, constants.ErrContentRequired},
		{"created_at", func(r *CreateNoticeRequest) { r.CreatedAt = "not-a-date" }, constants.ErrInvalidDate},
		{
			// homepage와 title이 동시에 틀리면 homepage 메시지가 우선한다.
			"검증 순서",
			func(r *CreateNoticeRequest) { r.Homepage = "blog"; r.Title = "" },
			constants.ErrInvalidHomepage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := req.Normalize()
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestUpdateNormalize(t *testing.T) {
	title := "  수정된 제목  "
	highlight := FlexBool(true)
	req := UpdateNoticeRequest{Title: &title, Highlight: &highlight}

	update, err := req.Normalize()
	require.NoError(t, err)
	require.NotNil(t, update.Title)
	assert.Equal(t, "수정된 제목", *update.Title)
	require.NotNil(t, update.Highlight)
	assert.True(t, *update.Highlight)
	// 포함되지 않은 필드는 변경 대상이 아니다.
	assert.Nil(t, update.Homepage)
	assert.Nil(t, update.Category)
	assert.Nil(t, update.Content)
	assert.Nil(t, update.CreatedAt)
}

func TestUpdateNormalizeRejectsEmptyBody(t *testing.T) {
	var req UpdateNoticeRequest
	_, err := req.Normalize()
	require.Error(t, err)
	assert.Equal(t, constants.ErrNoUpdateFields, err.Error())
}

func TestUpdateNormalizeValidatesPresentFields(t *testing.T) {
	bad := "blog"
	_, err := (&UpdateNoticeRequest{Homepage: &bad}).Normalize()
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidHomepage, err.Error())

	badCategory := "잡담"
	_, err = (&UpdateNoticeRequest{Category: &badCategory}).Normalize()
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidCategory, err.Error())

	blank := "   "
	_, err = (&UpdateNoticeRequest{Title: &blank}).Normalize()
	require.Error(t, err)
	assert.Equal(t, constants.ErrTitleRequired, err.Error())

	badDate := "not-a-date"
	_, err = (&UpdateNoticeRequest{CreatedAt: &badDate}).Normalize()
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidDate, err.Error())
}

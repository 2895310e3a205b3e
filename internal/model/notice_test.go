package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomepageValid(t *testing.T) {
	cases := []struct {
		value Homepage
		valid bool
	}{
		{HomepageFreeConvert, true},
		{HomepageFreeRecord, true},
		{Homepage("freeconvert "), false},
		{Homepage("FREECONVERT"), false},
		{Homepage("blog"), false},
		{Homepage(""), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.value.Valid(), "homepage %q", tc.value)
	}
}

func TestCategoryValid(t *testing.T) {
	cases := []struct {
		value Category
		valid bool
	}{
		{CategoryNotice, true},
		{CategoryNews, true},
		{CategoryEvent, true},
		{CategoryEtc, true},
		{Category("notice"), false},
		{Category("공지사항"), false},
		{Category(""), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.value.Valid(), "category %q", tc.value)
	}
}

func TestNoticeUpdateEmpty(t *testing.T) {
	var update NoticeUpdate
	assert.True(t, update.Empty())

	title := "새 제목"
	update.Title = &title
	assert.False(t, update.Empty())

	highlight := true
	update = NoticeUpdate{Highlight: &highlight}
	assert.False(t, update.Empty())
}

package model

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 30))
	assert.Equal(t, strings.Repeat("a", 30), TruncateString(strings.Repeat("a", 40), 30))
	assert.Equal(t, "", TruncateString("", 30))
}

func TestTruncateStringMultiByte(t *testing.T) {
	// Tên nhiều ký tự multi-byte: đếm theo rune thì vẫn trong giới hạn,
	// không được cắt dù số byte vượt quá
	name := "a" + strings.Repeat("é", 20)
	assert.Equal(t, name, TruncateString(name, 30))

	// Vượt giới hạn rune: cắt đúng 30 rune và chuỗi vẫn là UTF-8 hợp lệ
	long := strings.Repeat("é", 40)
	got := TruncateString(long, 30)
	assert.Equal(t, 30, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 30), got)
}

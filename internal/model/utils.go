package model

import "unicode/utf8"

// TruncateString cắt chuỗi xuống độ dài tối đa cho phép nếu chuỗi dài hơn
// giới hạn. Cắt theo rune chứ không theo byte: tên summoner có thể chứa
// ký tự multi-byte, cắt giữa một rune sẽ tạo ra chuỗi UTF-8 không hợp lệ
// và MySQL strict mode sẽ reject cả insert.
func TruncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength])
}

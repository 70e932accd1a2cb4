package format

import "unicode/utf8"

// TruncateMiddle は文字列の中央を省略して切り詰める。
// 例: "0x0123456789" -> "0x0...6789" (maxLen=10)
func TruncateMiddle(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen <= 5 {
		return string(runes[:maxLen])
	}

	remaining := maxLen - 3
	frontLen := remaining / 2
	backLen := remaining - frontLen
	return string(runes[:frontLen]) + "..." + string(runes[len(runes)-backLen:])
}

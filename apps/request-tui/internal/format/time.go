// Package format は表示用のフォーマットユーティリティを提供する。
package format

import (
	"fmt"
	"time"
)

// DateTimeShort はRFC3339文字列を "01-02 15:04" 形式にフォーマットする。
// 解釈できない場合は元の文字列を返す。
func DateTimeShort(rfc3339 string) string {
	if rfc3339 == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Local().Format("01-02 15:04")
}

// DateTime は時刻を "2006-01-02 15:04:05" 形式にフォーマットする。ゼロ値は "-"。
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// Duration は時間を人間が読みやすい形式にフォーマットする。
// 例: 3661s -> "1h 1m 1s"
func Duration(d time.Duration) string {
	if d < 0 {
		return "-"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// Until はdueまでの残り時間をフォーマットする。期限超過なら "overdue"。
func Until(due, now time.Time) string {
	if due.IsZero() {
		return "-"
	}
	if !due.After(now) {
		return "overdue"
	}
	return Duration(due.Sub(now))
}

// DurationMins は分単位の期間をフォーマットする。0以下は自動失効なし。
func DurationMins(mins int) string {
	if mins <= 0 {
		return "none"
	}
	return Duration(time.Duration(mins) * time.Minute)
}

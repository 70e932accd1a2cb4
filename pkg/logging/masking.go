// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskIMSI はIMSIをマスキングする。
// 先頭6桁（MCC+MNC）と末尾1桁を残す。
// 例: 001010000000001 → 001010********1
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskIMSI(imsi string, enabled bool) string {
	if !enabled {
		return imsi
	}
	return MaskPartial(imsi, 6, 1, '*')
}

// MaskPartial は文字列の先頭keepPrefix文字と末尾keepSuffix文字以外をmaskCharで置き換える。
// 文字列が短すぎる場合はそのまま返す。
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)
	if length <= keepPrefix+keepSuffix {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(string(runes[:keepPrefix]))
	b.WriteString(strings.Repeat(string(maskChar), length-keepPrefix-keepSuffix))
	b.WriteString(string(runes[length-keepSuffix:]))
	return b.String()
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// IMSI はIMSIをマスキングする。
func (m *Masker) IMSI(imsi string) string {
	return MaskIMSI(imsi, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}

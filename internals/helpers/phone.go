package helper

import "strings"

// NormalizePhone menyamakan format nomor HP sebelum lookup/simpan:
// buang semua non-digit, lalu buang SATU nol di depan (08xx → 8xx).
// Nomor disimpan dalam bentuk ternormalisasi supaya lookup kiosk konsisten.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	return digits
}

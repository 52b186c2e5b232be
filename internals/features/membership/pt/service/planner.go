package service

import (
	"fmt"
	"math"
	"time"
)

// DurationOption adalah satu pilihan perpanjangan PT (ephemeral, tidak
// disimpan). Opsi invalid tetap dikirim supaya UI bisa menampilkannya
// disabled, bukan disembunyikan.
type DurationOption struct {
	Label   string    `json:"label"`
	EndDate time.Time `json:"end_date"`
	Days    int       `json:"days"`
	Fee     int64     `json:"fee"`
	IsValid bool      `json:"is_valid"`
}

// bulan proration dianggap 30 hari flat; ini penyederhanaan tarif yang
// disengaja, bukan kalender-akurat
const prorationDaysPerMonth = 30

const maxPlanMonths = 3

// PlanStart menentukan tanggal mulai window PT baru.
// Urutan fallback ini load-bearing: kalau masih ada PT berjalan, window baru
// WAJIB mulai tepat sehari setelah window lama supaya tidak ada gap/overlap.
func PlanStart(existingPTEnd, membershipStart *time.Time, today time.Time) time.Time {
	if existingPTEnd != nil {
		return atMidnight(*existingPTEnd).AddDate(0, 0, 1)
	}
	if membershipStart != nil {
		return atMidnight(*membershipStart)
	}
	return atMidnight(today)
}

// Plan menghasilkan opsi durasi 1–3 bulan + opsi sintetis "Till <end>" bila
// tidak ada opsi bulat yang mendarat dekat akhir membership.
// existingPTEnd hanya diisi kalau masih ada PT yang belum expired.
func Plan(existingPTEnd, membershipStart *time.Time, membershipEnd time.Time, monthlyFee int64, today time.Time) []DurationOption {
	start := PlanStart(existingPTEnd, membershipStart, today)
	end := atMidnight(membershipEnd)
	dailyRate := float64(monthlyFee) / prorationDaysPerMonth

	options := make([]DurationOption, 0, maxPlanMonths+1)
	nearMembershipEnd := false

	for months := 1; months <= maxPlanMonths; months++ {
		candidateEnd := start.AddDate(0, months, 0)
		days := daysBetween(start, candidateEnd)

		label := fmt.Sprintf("%d Month", months)
		if months > 1 {
			label = fmt.Sprintf("%d Months", months)
		}

		options = append(options, DurationOption{
			Label:   label,
			EndDate: candidateEnd,
			Days:    days,
			Fee:     ceilFee(dailyRate, days),
			IsValid: !candidateEnd.After(end),
		})

		// Hanya opsi yang mendarat PADA atau tepat sebelum akhir membership
		// yang dianggap sudah meng-cover sisa periode; opsi yang overshoot
		// (invalid) tidak menggugurkan opsi "Till".
		if diff := daysBetween(candidateEnd, end); diff >= 0 && diff <= 1 {
			nearMembershipEnd = true
		}
	}

	// Opsi "sampai akhir membership" hanya kalau belum ada opsi yang mendarat
	// dalam 1 hari dari end date, dan sisa coverage masih > 0 hari.
	if !nearMembershipEnd {
		remaining := daysBetween(start, end)
		if remaining > 0 {
			options = append(options, DurationOption{
				Label:   "Till " + end.Format("2006-01-02"),
				EndDate: end,
				Days:    remaining,
				Fee:     ceilFee(dailyRate, remaining),
				IsValid: true,
			})
		}
	}

	return options
}

// ValidOptions memfilter opsi yang boleh dipilih. Kosong ⇒ membership
// berakhir terlalu cepat; caller wajib menampilkan hard error, bukan
// opsi yang bisa diklik.
// ChainCutoff batas bawah end_date supaya sebuah window PT masih dihitung
// "berjalan" untuk chaining: tengah malam LOKAL hari ini. Window yang berakhir
// hari ini tetap chain sampai hari berganti. Jangan pakai Truncate(24h):
// itu tengah malam UTC dan bikin window lepas lebih awal di timezone timur.
func ChainCutoff(now time.Time) time.Time {
	return atMidnight(now)
}

func ValidOptions(options []DurationOption) []DurationOption {
	out := make([]DurationOption, 0, len(options))
	for _, o := range options {
		if o.IsValid {
			out = append(out, o)
		}
	}
	return out
}

// Pembulatan fee selalu ke atas supaya proration pecahan hari tidak pernah
// menagih kurang.
func ceilFee(dailyRate float64, days int) int64 {
	return int64(math.Ceil(dailyRate * float64(days)))
}

func daysBetween(from, to time.Time) int {
	return int(atMidnight(to).Sub(atMidnight(from)) / (24 * time.Hour))
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

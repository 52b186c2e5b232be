package service

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Skenario lengkap: member baru (belum punya PT), membership 2025-01-01 s/d
// 2025-03-31, tarif trainer 3000/bulan.
func TestPlanFreshMember(t *testing.T) {
	start := d("2025-01-01")
	today := d("2025-01-10")

	opts := Plan(nil, &start, d("2025-03-31"), 3000, today)
	if len(opts) != 4 {
		t.Fatalf("expected 4 options (3 bulan + Till), got %d", len(opts))
	}

	// 1 bulan: 2025-01-01 → 2025-02-01 = 31 hari, fee ceil(100×31)
	one := opts[0]
	if !one.EndDate.Equal(d("2025-02-01")) || one.Days != 31 || one.Fee != 3100 || !one.IsValid {
		t.Fatalf("opsi 1 bulan salah: %+v", one)
	}

	// 2 bulan: → 2025-03-01 = 59 hari
	two := opts[1]
	if !two.EndDate.Equal(d("2025-03-01")) || two.Days != 59 || two.Fee != 5900 || !two.IsValid {
		t.Fatalf("opsi 2 bulan salah: %+v", two)
	}

	// 3 bulan: → 2025-04-01, melewati membership ⇒ invalid tapi tetap dikirim
	three := opts[2]
	if !three.EndDate.Equal(d("2025-04-01")) || three.IsValid {
		t.Fatalf("opsi 3 bulan harus invalid: %+v", three)
	}

	// Sintetis "Till 2025-03-31": 89 hari, fee 8900, selalu valid
	till := opts[3]
	if till.Label != "Till 2025-03-31" || till.Days != 89 || till.Fee != 8900 || !till.IsValid {
		t.Fatalf("opsi Till salah: %+v", till)
	}
}

// Perpanjangan: window baru WAJIB mulai tepat E+1 hari — tidak boleh gap
// atau overlap dengan window lama.
func TestPlanStartChainsExistingPT(t *testing.T) {
	existing := d("2025-02-15")
	memStart := d("2025-01-01")

	got := PlanStart(&existing, &memStart, d("2025-02-10"))
	if !got.Equal(d("2025-02-16")) {
		t.Fatalf("PlanStart=%s, want 2025-02-16", got.Format("2006-01-02"))
	}

	// fallback: tanpa PT berjalan pakai awal membership
	if got := PlanStart(nil, &memStart, d("2025-02-10")); !got.Equal(d("2025-01-01")) {
		t.Fatalf("fallback membership start salah: %s", got.Format("2006-01-02"))
	}

	// fallback terakhir: hari ini (dinormalisasi ke tengah malam)
	today := time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)
	if got := PlanStart(nil, nil, today); !got.Equal(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("fallback today salah: %s", got)
	}
}

// Cutoff chaining harus tengah malam LOKAL. Dengan Truncate(24h) cutoff
// jatuh di 07:00 WIB, PT yang berakhir hari ini lepas dari chaining setelah
// jam itu dan window baru bisa overlap dengan PT yang masih berjalan.
func TestChainCutoffUsesLocalMidnight(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, wib)

	cutoff := ChainCutoff(now)
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, wib)
	if !cutoff.Equal(want) {
		t.Fatalf("ChainCutoff=%s, want %s", cutoff, want)
	}

	// PT yang end_date-nya hari ini masih lolos cutoff...
	runningEnd := time.Date(2025, 3, 15, 0, 0, 0, 0, wib)
	if runningEnd.Before(cutoff) {
		t.Fatalf("PT berakhir hari ini tidak boleh lepas dari chaining")
	}

	// ...sehingga window baru mulai besoknya, bukan mundur ke awal membership.
	memStart := time.Date(2025, 1, 1, 0, 0, 0, 0, wib)
	start := PlanStart(&runningEnd, &memStart, now)
	if !start.Equal(time.Date(2025, 3, 16, 0, 0, 0, 0, wib)) {
		t.Fatalf("PlanStart=%s, want 2025-03-16", start.Format("2006-01-02"))
	}
	if !start.After(runningEnd) {
		t.Fatalf("window baru overlap dengan PT berjalan: start=%s end=%s", start, runningEnd)
	}
}

// Setiap opsi: is_valid ⟺ end_date <= membershipEnd.
func TestPlanValidityBound(t *testing.T) {
	memStart := d("2025-01-01")
	memEnd := d("2025-02-20")

	opts := Plan(nil, &memStart, memEnd, 1500, d("2025-01-05"))
	for _, o := range opts {
		wantValid := !o.EndDate.After(memEnd)
		if o.IsValid != wantValid {
			t.Fatalf("opsi %q: is_valid=%v, want %v (end=%s)", o.Label, o.IsValid, wantValid, o.EndDate.Format("2006-01-02"))
		}
	}
	for _, o := range ValidOptions(opts) {
		if o.EndDate.After(memEnd) {
			t.Fatalf("opsi valid melewati membership: %+v", o)
		}
	}
}

// Opsi bulat yang mendarat pas di akhir membership ⇒ tidak ada opsi Till.
func TestPlanNoSyntheticWhenMonthLandsOnEnd(t *testing.T) {
	memStart := d("2025-01-01")

	opts := Plan(nil, &memStart, d("2025-02-01"), 3000, d("2025-01-02"))
	for _, o := range opts {
		if o.Label == "Till 2025-02-01" {
			t.Fatalf("opsi Till tidak boleh muncul saat opsi 1 bulan sudah pas: %+v", opts)
		}
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
}

// Membership berakhir hari ini / besok ⇒ tidak ada opsi valid sama sekali;
// caller harus tampilkan hard error.
func TestPlanMembershipEndsTooSoon(t *testing.T) {
	today := d("2025-03-31")

	opts := Plan(nil, nil, d("2025-03-31"), 3000, today)
	if valid := ValidOptions(opts); len(valid) != 0 {
		t.Fatalf("expected zero valid options, got %+v", valid)
	}
}

// Pembulatan fee selalu ke atas (ceil) pada proration pecahan.
func TestPlanFeeRoundsUp(t *testing.T) {
	memStart := d("2025-01-01")

	// 1000/30 = 33.33../hari; 31 hari = 1033.33.. ⇒ 1034
	opts := Plan(nil, &memStart, d("2025-12-31"), 1000, d("2025-01-01"))
	if opts[0].Fee != 1034 {
		t.Fatalf("fee 1 bulan = %d, want 1034", opts[0].Fee)
	}
}

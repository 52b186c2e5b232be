package service

import (
	"testing"
	"time"

	"gymku_backend/internals/features/attendance/checkin/model"
	subservice "gymku_backend/internals/features/membership/subscriptions/service"
)

var base = time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

func openRow(checkIn time.Time) *model.AttendanceLogModel {
	return &model.AttendanceLogModel{
		AttendanceLogCheckInAt: checkIn,
		AttendanceLogStatus:    model.AttendanceStatusCheckedIn,
	}
}

func closedRow(checkIn, checkOut time.Time) *model.AttendanceLogModel {
	return &model.AttendanceLogModel{
		AttendanceLogCheckInAt:  checkIn,
		AttendanceLogCheckOutAt: &checkOut,
		AttendanceLogStatus:     model.AttendanceStatusCheckedOut,
	}
}

func TestDecideNoOpenVisit(t *testing.T) {
	dec, wait := Decide(nil, base)
	if dec != DecisionOpen || wait != 0 {
		t.Fatalf("Decide(nil)=%v,%d; want open", dec, wait)
	}
}

// Skenario spek: dua scan selang 3 menit ⇒ duplicate dengan hint tunggu 7 menit.
func TestDecideAntiPassback(t *testing.T) {
	row := openRow(base)

	dec, wait := Decide(row, base.Add(3*time.Minute))
	if dec != DecisionDuplicate {
		t.Fatalf("scan 3 menit setelah check-in harus duplicate, got %v", dec)
	}
	if wait != 7 {
		t.Fatalf("hint tunggu = %d menit, want 7", wait)
	}
}

func TestDecideAntiPassbackCeil(t *testing.T) {
	row := openRow(base)

	// 9m30d berlalu ⇒ sisa 30 detik ⇒ ceil = 1 menit
	dec, wait := Decide(row, base.Add(9*time.Minute+30*time.Second))
	if dec != DecisionDuplicate || wait != 1 {
		t.Fatalf("got %v,%d; want duplicate,1", dec, wait)
	}

	// tepat 10 menit: window sudah lewat, jadi transisi state
	dec, _ = Decide(row, base.Add(10*time.Minute))
	if dec != DecisionClose {
		t.Fatalf("scan tepat di batas window harus close, got %v", dec)
	}
}

// Window dihitung dari scan TERAKHIR: habis checkout pun tetap disupresi.
func TestDecideAntiPassbackAfterCheckout(t *testing.T) {
	out := base.Add(2 * time.Hour)
	row := closedRow(base, out)

	dec, wait := Decide(row, out.Add(4*time.Minute))
	if dec != DecisionDuplicate || wait != 6 {
		t.Fatalf("got %v,%d; want duplicate,6", dec, wait)
	}
}

// Toggle in → out → in baru (row ditutup tidak pernah dibuka ulang).
func TestDecideToggling(t *testing.T) {
	row := openRow(base)

	dec, _ := Decide(row, base.Add(2*time.Hour))
	if dec != DecisionClose {
		t.Fatalf("scan setelah window dengan row open harus close, got %v", dec)
	}

	out := base.Add(2 * time.Hour)
	closed := closedRow(base, out)
	dec, _ = Decide(closed, out.Add(30*time.Minute))
	if dec != DecisionOpen {
		t.Fatalf("scan setelah row ditutup harus buka kunjungan BARU, got %v", dec)
	}
}

// Gating membership: status yang memblokir tetap membuka kunjungan, tapi
// baris tercatat "expired" dan respons membawa redirect renewal.
func TestOpenOutcomeExpiredGating(t *testing.T) {
	cases := []struct {
		subStatus    subservice.SubscriptionStatus
		wantStatus   string
		wantCode     string
		wantRedirect string
	}{
		{subservice.StatusActive, model.AttendanceStatusCheckedIn, "checked_in", ""},
		{subservice.StatusExpiringSoon, model.AttendanceStatusCheckedIn, "checked_in", ""},
		{subservice.StatusExpired, model.AttendanceStatusExpired, "expired", "/membership/renew"},
		{subservice.StatusNoSubscription, model.AttendanceStatusExpired, "expired", "/membership/renew"},
	}

	for _, tt := range cases {
		t.Run(string(tt.subStatus), func(t *testing.T) {
			status := EntryStatus(tt.subStatus)
			if status != tt.wantStatus {
				t.Fatalf("EntryStatus(%s)=%s, want %s", tt.subStatus, status, tt.wantStatus)
			}

			row := &model.AttendanceLogModel{
				AttendanceLogCheckInAt:          base,
				AttendanceLogStatus:             status,
				AttendanceLogSubscriptionStatus: string(tt.subStatus),
			}
			out := OpenOutcome(row, tt.subStatus)
			if out.Code != tt.wantCode {
				t.Fatalf("Code=%s, want %s", out.Code, tt.wantCode)
			}
			if out.Redirect != tt.wantRedirect {
				t.Fatalf("Redirect=%q, want %q", out.Redirect, tt.wantRedirect)
			}
			if out.SubscriptionStatus != tt.subStatus {
				t.Fatalf("SubscriptionStatus=%s, want %s", out.SubscriptionStatus, tt.subStatus)
			}
			if out.Log != row {
				t.Fatalf("Log harus baris yang baru dibuka")
			}
		})
	}
}

func TestTotalHoursRounding(t *testing.T) {
	cases := []struct {
		dur  time.Duration
		want float64
	}{
		{2 * time.Hour, 2.0},
		{90 * time.Minute, 1.5},
		{100 * time.Minute, 1.67},
		{7 * time.Minute, 0.12},
		{45 * time.Second, 0.01},
	}
	for _, tt := range cases {
		if got := TotalHours(base, base.Add(tt.dur)); got != tt.want {
			t.Fatalf("TotalHours(%s)=%v, want %v", tt.dur, got, tt.want)
		}
	}
}

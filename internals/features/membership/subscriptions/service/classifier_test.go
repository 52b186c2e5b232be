package service

import (
	"testing"
	"time"

	"gymku_backend/internals/features/membership/subscriptions/model"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyWindow(t *testing.T) {
	asOf := d("2025-03-15")

	cases := []struct {
		name   string
		end    string
		stored string
		want   SubscriptionStatus
	}{
		{"jauh di depan", "2025-06-30", model.SubscriptionStatusActive, StatusActive},
		{"tepat 8 hari lagi", "2025-03-23", model.SubscriptionStatusActive, StatusActive},
		{"tepat 7 hari lagi", "2025-03-22", model.SubscriptionStatusActive, StatusExpiringSoon},
		{"berakhir hari ini", "2025-03-15", model.SubscriptionStatusActive, StatusExpiringSoon},
		{"kemarin", "2025-03-14", model.SubscriptionStatusActive, StatusExpired},
		{"lama lewat", "2024-01-01", model.SubscriptionStatusActive, StatusExpired},
		// status tersimpan basi tidak dipercaya: tanggal yang menang
		{"stored expired tapi tanggal masih jalan", "2025-06-30", model.SubscriptionStatusExpired, StatusActive},
		// KECUALI inactive eksplisit: otoritatif apapun tanggalnya
		{"inactive override", "2025-06-30", model.SubscriptionStatusInactive, StatusExpired},
	}

	for _, tt := range cases {
		if got := ClassifyWindow(d(tt.end), tt.stored, asOf); got != tt.want {
			t.Fatalf("%s: ClassifyWindow(end=%s, stored=%s)=%s, want %s", tt.name, tt.end, tt.stored, got, tt.want)
		}
	}
}

func TestStatusBlocks(t *testing.T) {
	if !StatusExpired.Blocks() || !StatusNoSubscription.Blocks() {
		t.Fatal("expired dan no_subscription harus memblokir check-in normal")
	}
	if StatusActive.Blocks() || StatusExpiringSoon.Blocks() {
		t.Fatal("active dan expiring_soon tidak boleh memblokir check-in")
	}
}

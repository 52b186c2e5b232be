package service

import (
	"testing"

	"gymku_backend/internals/features/attendance/devices/model"
)

func TestDecideBind(t *testing.T) {
	active := &model.DeviceBindingModel{DeviceBindingFingerprint: "fp-aaa", DeviceBindingIsActive: true}

	cases := []struct {
		name        string
		existing    *model.DeviceBindingModel
		fingerprint string
		want        BindOutcome
	}{
		{"belum ada binding", nil, "fp-aaa", BindCreated},
		{"fingerprint sama (idempoten)", active, "fp-aaa", BindMatched},
		{"fingerprint beda", active, "fp-bbb", BindConflict},
		// setelah reset, ActiveBinding balikan nil → dianggap registrasi baru
		// walaupun fingerprint berbeda dari yang lama
		{"rebind setelah reset", nil, "fp-bbb", BindCreated},
	}

	for _, tt := range cases {
		if got := DecideBind(tt.existing, tt.fingerprint); got != tt.want {
			t.Fatalf("%s: DecideBind=%v, want %v", tt.name, got, tt.want)
		}
	}
}

// Idempoten: dua kali bind fingerprint sama harus dua-duanya Matched, bukan
// membuat baris kedua.
func TestDecideBindIdempotent(t *testing.T) {
	active := &model.DeviceBindingModel{DeviceBindingFingerprint: "fp-aaa", DeviceBindingIsActive: true}
	for i := 0; i < 2; i++ {
		if got := DecideBind(active, "fp-aaa"); got != BindMatched {
			t.Fatalf("bind ke-%d: got %v, want BindMatched", i+1, got)
		}
	}
}

package helper

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"081234567890", "81234567890"},
		{"+62 812-3456-7890", "6281234567890"},
		{"(0812) 3456 789", "8123456789"},
		{"9876543210", "9876543210"},
		{"0", "0"},
		{"00812", "0812"}, // hanya satu nol di depan yang dibuang
		{"abc", ""},
	}

	for _, tt := range cases {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

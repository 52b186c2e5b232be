package helper

import (
	"strings"
	"testing"
)

func TestObjectKeyExtension(t *testing.T) {
	cases := []struct {
		name string
		ext  string
	}{
		{"dengan titik depan", ".webp"},
		{"tanpa titik depan", "webp"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			key := objectKey("members", tt.ext)

			if !strings.HasPrefix(key, "members/") {
				t.Fatalf("key tidak pakai prefix folder: %s", key)
			}
			if !strings.HasSuffix(key, ".webp") {
				t.Fatalf("key tidak berakhiran .webp: %s", key)
			}
			if strings.Contains(key, "..") {
				t.Fatalf("key mengandung titik ganda: %s", key)
			}
		})
	}
}

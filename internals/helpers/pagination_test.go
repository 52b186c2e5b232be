package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		count      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"halaman pertama dari tiga", 45, 1, 20, 20, 3, true, false},
		{"halaman tengah", 45, 2, 20, 20, 3, true, true},
		{"halaman terakhir tidak penuh", 45, 3, 20, 5, 3, false, true},
		{"kosong", 0, 1, 20, 0, 0, false, false},
		{"pas satu halaman", 20, 1, 20, 20, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paging{Page: tc.page, PerPage: tc.perPage}
			got := BuildPagination(tc.total, p, tc.count)

			if got.TotalPages != tc.totalPages {
				t.Fatalf("TotalPages = %d, want %d", got.TotalPages, tc.totalPages)
			}
			if got.HasNext != tc.hasNext {
				t.Fatalf("HasNext = %v, want %v", got.HasNext, tc.hasNext)
			}
			if got.HasPrev != tc.hasPrev {
				t.Fatalf("HasPrev = %v, want %v", got.HasPrev, tc.hasPrev)
			}
			if got.Count != tc.count {
				t.Fatalf("Count = %d, want %d", got.Count, tc.count)
			}
		})
	}
}

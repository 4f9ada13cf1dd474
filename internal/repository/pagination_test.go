package repository

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		total    int64
		pageSize int
		want     int
	}{
		{"first page", 1, 25, 10, 1},
		{"middle page", 2, 25, 10, 2},
		{"last page", 3, 25, 10, 3},
		{"beyond last page", 99, 25, 10, 3},
		{"zero page", 0, 25, 10, 1},
		{"negative page", -5, 25, 10, 1},
		{"empty result", 7, 0, 10, 1},
		{"exact boundary", 3, 30, 10, 3},
		{"one past boundary", 4, 30, 10, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPage(tc.page, tc.total, tc.pageSize); got != tc.want {
				t.Fatalf("ClampPage(%d, %d, %d) = %d, want %d", tc.page, tc.total, tc.pageSize, got, tc.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(0, 10); got != 1 {
		t.Fatalf("empty total should be 1 page, got %d", got)
	}
	if got := TotalPages(25, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := TotalPages(30, 10); got != 3 {
		t.Fatalf("expected 3 pages on exact boundary, got %d", got)
	}
	// 返回值直接充当分页元信息里的 total_page 字段
	var totalPage int64 = TotalPages(101, 10)
	if totalPage != 11 {
		t.Fatalf("expected 11 pages, got %d", totalPage)
	}
}

package admin

import "testing"

func TestListPaginationClampsEchoedPage(t *testing.T) {
	p := listPagination(99, 10, 25)
	if p.Page != 3 {
		t.Fatalf("page beyond last should echo last page, got %d", p.Page)
	}
	if p.TotalPage != 3 {
		t.Fatalf("total_page want 3 got %d", p.TotalPage)
	}
	if p.Total != 25 || p.PageSize != 10 {
		t.Fatalf("meta passthrough broken: total %d page_size %d", p.Total, p.PageSize)
	}

	p = listPagination(1, 20, 0)
	if p.Page != 1 || p.TotalPage != 1 {
		t.Fatalf("empty result should report page 1 of 1, got %d of %d", p.Page, p.TotalPage)
	}
}

package catalog

import (
	"fmt"
	"reflect"
	"testing"
)

func testCatalog(n int) []DiagnosticItem {
	items := make([]DiagnosticItem, 0, n)
	for i := 1; i <= n; i++ {
		tier := 1
		if i%2 == 0 {
			tier = 2
		}
		items = append(items, DiagnosticItem{
			ID:       fmt.Sprintf("CRI-%02d", i),
			Title:    fmt.Sprintf("Diagnostic %d", i),
			Tiers:    []int{tier},
			Tags:     []string{fmt.Sprintf("tag%d", tier)},
			Position: i,
		})
	}
	return items
}

func TestFilterPageTierOne(t *testing.T) {
	items := testCatalog(30)

	result := FilterPage(items, []int{1}, "", 1, 10)
	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if !item.InTier(1) {
			t.Fatalf("item %s is not tier 1", item.ID)
		}
	}
	// Catalog order is preserved: odd IDs ascending.
	if result.Items[0].ID != "CRI-01" || result.Items[1].ID != "CRI-03" {
		t.Fatalf("filtered order broken: %s, %s", result.Items[0].ID, result.Items[1].ID)
	}
	if result.TotalPages != 2 {
		t.Fatalf("expected 2 pages of tier-1 items, got %d", result.TotalPages)
	}
}

func TestFilterPageTierOrSemantics(t *testing.T) {
	items := testCatalog(6)
	result := FilterPage(items, []int{1, 2}, "", 1, 10)
	if len(result.Items) != 6 {
		t.Fatalf("expected every item with OR tier match, got %d", len(result.Items))
	}
}

func TestFilterPageTagFilter(t *testing.T) {
	items := testCatalog(10)
	result := FilterPage(items, []int{1, 2}, "tag2", 1, 10)
	if len(result.Items) != 5 {
		t.Fatalf("expected 5 tag2 items, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if !item.HasTag("tag2") {
			t.Fatalf("item %s missing tag2", item.ID)
		}
	}
}

func TestFilterPageClampsOutOfRange(t *testing.T) {
	items := testCatalog(15)

	result := FilterPage(items, []int{1, 2}, "", 99, 10)
	if result.Page != 2 {
		t.Fatalf("expected clamp to last page 2, got %d", result.Page)
	}
	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items on last page, got %d", len(result.Items))
	}

	result = FilterPage(items, []int{1, 2}, "", 0, 10)
	if result.Page != 1 {
		t.Fatalf("expected clamp to first page, got %d", result.Page)
	}
}

func TestFilterPageEmptyResult(t *testing.T) {
	items := testCatalog(4)
	result := FilterPage(items, []int{3}, "", 1, 10)
	if len(result.Items) != 0 {
		t.Fatalf("expected no tier-3 items, got %d", len(result.Items))
	}
	if result.TotalPages != 1 {
		t.Fatalf("expected minimum 1 page, got %d", result.TotalPages)
	}
	if result.Page != 1 {
		t.Fatalf("expected page 1, got %d", result.Page)
	}
}

func TestVisiblePagesWindow(t *testing.T) {
	cases := []struct {
		current, total int
		want           []int
	}{
		{1, 1, []int{1}},
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{2, 10, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		got := VisiblePages(tc.current, tc.total)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("VisiblePages(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
		}
	}
}

package request

import "testing"

func TestPaginatedRequestOffset(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		perPage  int
		expected int
	}{
		{name: "first page starts at zero", page: 1, perPage: 10, expected: 0},
		{name: "third page skips two pages", page: 3, perPage: 10, expected: 20},
		{name: "unset page clamps to zero", page: 0, perPage: 10, expected: 0},
		{name: "negative page clamps to zero", page: -1, perPage: 10, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := PaginatedRequest{Page: tt.page, PerPage: tt.perPage}
			if result := req.Offset(); result != tt.expected {
				t.Errorf("Offset() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestPaginatedRequestLimit(t *testing.T) {
	testCases := []struct {
		name     string
		perPage  int
		expected int
	}{
		{name: "returns requested size", perPage: 25, expected: 25},
		{name: "unset size defaults to ten", perPage: 0, expected: 10},
		{name: "negative size defaults to ten", perPage: -5, expected: 10},
		{name: "oversized request caps at one hundred", perPage: 500, expected: 100},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := PaginatedRequest{Page: 1, PerPage: tt.perPage}
			if result := req.Limit(); result != tt.expected {
				t.Errorf("Limit() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

package utils

import "testing"

func TestCalculateTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		perPage  int
		expected int
	}{
		{name: "should round up partial pages", total: 25, perPage: 10, expected: 3},
		{name: "should handle exact division", total: 30, perPage: 10, expected: 3},
		{name: "should handle a single short page", total: 3, perPage: 10, expected: 1},
		{name: "should return zero for no rows", total: 0, perPage: 10, expected: 0},
		{name: "should return zero for invalid per page", total: 10, perPage: 0, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateTotalPages(tt.total, tt.perPage)
			if result != tt.expected {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, expected %d", tt.total, tt.perPage, result, tt.expected)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		perPage  int
		expected int
	}{
		{name: "should return zero for first page", page: 1, perPage: 10, expected: 0},
		{name: "should skip previous pages", page: 3, perPage: 10, expected: 20},
		{name: "should clamp invalid page to zero", page: 0, perPage: 10, expected: 0},
		{name: "should clamp negative page to zero", page: -2, perPage: 10, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateOffset(tt.page, tt.perPage)
			if result != tt.expected {
				t.Errorf("CalculateOffset(%d, %d) = %d, expected %d", tt.page, tt.perPage, result, tt.expected)
			}
		})
	}
}

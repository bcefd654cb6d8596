package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
		ok       bool
	}{
		{name: "single id", input: "12", expected: []int{12}, ok: true},
		{name: "two ids", input: "3|7", expected: []int{3, 7}, ok: true},
		{name: "trailing whitespace", input: " 3|7\n", expected: []int{3, 7}, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "not a number", input: "3|x", ok: false},
		{name: "empty part", input: "3|", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := parseInts(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseSessionPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		id    string
		index int
		ok    bool
	}{
		{name: "id only", input: "abc", id: "abc", ok: true},
		{name: "id and index", input: "abc|2", id: "abc", index: 2, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "bad index", input: "abc|x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, index, ok := parseSessionPayload(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "2, 5, 9", joinInts([]int{2, 5, 9}))
	assert.Equal(t, "", joinInts(nil))
}

package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	words, err := Default()
	require.NoError(t, err)
	assert.Len(t, words, 10)

	seen := make(map[int]bool)
	for _, w := range words {
		assert.Positive(t, w.ID)
		assert.NotEmpty(t, w.Word)
		assert.NotEmpty(t, w.Translation)
		assert.False(t, seen[w.ID], "duplicate id %d", w.ID)
		seen[w.ID] = true
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "json document",
			input:         `{"words": [{"id": 3, "word": "gate", "translation": "cổng", "example": ""}]}`,
			expectedCount: 1,
		},
		{
			name: "yaml document",
			input: `words:
  - id: 1
    word: hello
    translation: xin chào
  - id: 2
    word: bye
    translation: tạm biệt
    example: Bye for now.
`,
			expectedCount: 2,
		},
		{
			name:          "empty list",
			input:         `{"words": []}`,
			expectedCount: 0,
		},
		{
			name:          "missing translation",
			input:         `{"words": [{"id": 1, "word": "gate"}]}`,
			expectedError: true,
		},
		{
			name:          "malformed",
			input:         `{"words": [`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Parse([]byte(tt.input))

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedCount)
			}
		})
	}
}

func TestParse_KeepsFields(t *testing.T) {
	words, err := Parse([]byte(`{"words": [{"id": 7, "word": "gate", "translation": "cổng", "example": "Go to gate 5."}]}`))
	require.NoError(t, err)
	require.Len(t, words, 1)

	assert.Equal(t, 7, words[0].ID)
	assert.Equal(t, "gate", words[0].Word)
	assert.Equal(t, "cổng", words[0].Translation)
	assert.Equal(t, "Go to gate 5.", words[0].Example)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - id: 1\n    word: sun\n    translation: mặt trời\n"), 0o600))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, words, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

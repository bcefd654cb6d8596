package importer

import (
	"testing"

	"flashword/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedWords   []domain.WordInput
		expectedSkipped []int
	}{
		{
			name:    "full lines",
			content: "gate, cổng, Go to gate 5\nticket,vé,",
			expectedWords: []domain.WordInput{
				{Word: "gate", Translation: "cổng", Example: "Go to gate 5"},
				{Word: "ticket", Translation: "vé"},
			},
		},
		{
			name:    "blank lines and windows endings",
			content: "\r\nsun,mặt trời\r\n\r\n   \nmoon,mặt trăng\r\n",
			expectedWords: []domain.WordInput{
				{Word: "sun", Translation: "mặt trời"},
				{Word: "moon", Translation: "mặt trăng"},
			},
		},
		{
			name:    "example keeps commas",
			content: "tea,trà,Milk, sugar, and tea",
			expectedWords: []domain.WordInput{
				{Word: "tea", Translation: "trà", Example: "Milk, sugar, and tea"},
			},
		},
		{
			name:            "incomplete lines are skipped",
			content:         "lonely\n,missing word\nok,được\n  ,  ",
			expectedWords:   []domain.WordInput{{Word: "ok", Translation: "được"}},
			expectedSkipped: []int{1, 2, 4},
		},
		{
			name:    "empty content",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.content)
			assert.Equal(t, tt.expectedWords, res.Words)
			assert.Equal(t, tt.expectedSkipped, res.Skipped)
		})
	}
}

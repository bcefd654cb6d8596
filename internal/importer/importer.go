// Package importer parses bulk word lists in the "word,translation,example" line format.
package importer

import (
	"strings"

	"flashword/internal/domain"
)

// Result is the outcome of parsing an import text
type Result struct {
	Words []domain.WordInput
	// Skipped holds 1-based line numbers lacking a word or translation
	Skipped []int
}

// Parse reads one entry per line. Blank lines are ignored, missing fields are
// left empty and extra commas beyond the example are kept in the example.
func Parse(content string) Result {
	var res Result

	content = strings.ReplaceAll(content, "\r\n", "\n")
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}

		input := domain.WordInput{Word: parts[0]}
		if len(parts) > 1 {
			input.Translation = parts[1]
		}
		if len(parts) > 2 {
			input.Example = parts[2]
		}

		if input.Word == "" || input.Translation == "" {
			res.Skipped = append(res.Skipped, i+1)
			continue
		}
		res.Words = append(res.Words, input)
	}

	return res
}

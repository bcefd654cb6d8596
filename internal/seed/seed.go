// Package seed provides the static word list the vocabulary store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"flashword/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.json
var bundled []byte

type record struct {
	ID          int    `yaml:"id"`
	Word        string `yaml:"word"`
	Translation string `yaml:"translation"`
	Example     string `yaml:"example"`
}

type document struct {
	Words []record `yaml:"words"`
}

// Default returns the bundled word list
func Default() ([]domain.Word, error) {
	return Parse(bundled)
}

// Load reads a word list from a JSON or YAML file
func Load(path string) ([]domain.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a word list. JSON input is accepted since it is valid YAML.
func Parse(data []byte) ([]domain.Word, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	words := make([]domain.Word, 0, len(doc.Words))
	for i, r := range doc.Words {
		if strings.TrimSpace(r.Word) == "" || strings.TrimSpace(r.Translation) == "" {
			return nil, fmt.Errorf("seed record %d: word and translation are required", i+1)
		}
		words = append(words, domain.Word{
			ID:          r.ID,
			Word:        r.Word,
			Translation: r.Translation,
			Example:     r.Example,
		})
	}

	return words, nil
}

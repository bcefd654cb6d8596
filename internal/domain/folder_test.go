package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFolder_Clone(t *testing.T) {
	original := Folder{
		ID:   1,
		Name: "Travel",
		Modules: []Module{
			{ID: 2, Name: "Airport", Words: []Word{{ID: 3, Word: "gate", Translation: "cổng"}}},
		},
	}

	clone := original.Clone()
	clone.Name = "Changed"
	clone.Modules[0].Name = "Changed"
	clone.Modules[0].Words[0].Word = "changed"
	clone.Modules = append(clone.Modules, Module{ID: 4})

	assert.Equal(t, "Travel", original.Name)
	assert.Len(t, original.Modules, 1)
	assert.Equal(t, "Airport", original.Modules[0].Name)
	assert.Equal(t, "gate", original.Modules[0].Words[0].Word)
}

func TestFolder_WordCount(t *testing.T) {
	f := Folder{Modules: []Module{
		{Words: []Word{{ID: 1}, {ID: 2}}},
		{},
		{Words: []Word{{ID: 3}}},
	}}
	assert.Equal(t, 3, f.WordCount())
	assert.Equal(t, 0, Folder{}.WordCount())
}

func TestQuizMode_Valid(t *testing.T) {
	assert.True(t, ModeFlashcard.Valid())
	assert.True(t, ModeMultipleChoice.Valid())
	assert.True(t, ModeMatching.Valid())
	assert.False(t, QuizMode("spelling").Valid())
}

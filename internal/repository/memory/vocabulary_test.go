package memory

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"flashword/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWords(n int) []domain.Word {
	words := make([]domain.Word, n)
	for i := range words {
		words[i] = domain.Word{
			ID:          i + 1,
			Word:        fmt.Sprintf("word%d", i+1),
			Translation: fmt.Sprintf("translation%d", i+1),
		}
	}
	return words
}

func newTestStore(t *testing.T, n int) *VocabularyStore {
	t.Helper()
	return NewVocabularyStore(seedWords(n), Options{Rand: rand.New(rand.NewPCG(1, 2))})
}

func ids(words []domain.Word) []int {
	out := make([]int, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestNewVocabularyStore_DefaultTree(t *testing.T) {
	store := newTestStore(t, 10)

	folders := store.GetAllFolders()
	require.Len(t, folders, 1)
	assert.Equal(t, 1, folders[0].ID)
	assert.Equal(t, DefaultFolderName, folders[0].Name)
	require.Len(t, folders[0].Modules, 1)
	assert.Equal(t, DefaultModuleName, folders[0].Modules[0].Name)
	assert.Len(t, folders[0].Modules[0].Words, 10)
	assert.Len(t, store.GetAllWords(), 10)
}

func TestNewVocabularyStore_CustomNames(t *testing.T) {
	store := NewVocabularyStore(nil, Options{FolderName: "Inbox", ModuleName: "Starter"})

	folders := store.GetAllFolders()
	require.Len(t, folders, 1)
	assert.Equal(t, "Inbox", folders[0].Name)
	assert.Equal(t, "Starter", folders[0].Modules[0].Name)
	assert.Empty(t, store.GetAllWords())
}

func TestNewVocabularyStore_CountersStartAfterSeed(t *testing.T) {
	store := NewVocabularyStore([]domain.Word{
		{ID: 4, Word: "a", Translation: "a"},
		{ID: 42, Word: "b", Translation: "b"},
	}, Options{})

	module := store.GetAllModules()[0]
	word := store.AddWordToModule(module.ID, domain.WordInput{Word: "c", Translation: "c"})
	require.NotNil(t, word)
	assert.Equal(t, 43, word.ID)

	folder := store.CreateFolder("next")
	assert.Equal(t, 2, folder.ID)
}

func TestNewVocabularyStore_ReassignsBadSeedIDs(t *testing.T) {
	store := NewVocabularyStore([]domain.Word{
		{ID: 5, Word: "a", Translation: "a"},
		{ID: 5, Word: "b", Translation: "b"},
		{ID: 0, Word: "c", Translation: "c"},
	}, Options{})

	assert.Equal(t, []int{5, 6, 7}, ids(store.GetAllWords()))
}

func TestVocabularyStore_IDsNeverReused(t *testing.T) {
	store := newTestStore(t, 3)

	f1 := store.CreateFolder("one")
	require.True(t, store.DeleteFolder(f1.ID))
	f2 := store.CreateFolder("two")
	assert.Greater(t, f2.ID, f1.ID)

	m1 := store.CreateModule(f2.ID, "m1")
	require.NotNil(t, m1)
	require.True(t, store.DeleteModule(m1.ID))
	m2 := store.CreateModule(f2.ID, "m2")
	require.NotNil(t, m2)
	assert.Greater(t, m2.ID, m1.ID)

	w1 := store.AddWordToModule(m2.ID, domain.WordInput{Word: "x", Translation: "y"})
	require.NotNil(t, w1)
	require.True(t, store.DeleteWordFromModule(m2.ID, w1.ID))
	w2 := store.AddWordToModule(m2.ID, domain.WordInput{Word: "x", Translation: "y"})
	require.NotNil(t, w2)
	assert.Greater(t, w2.ID, w1.ID)
	assert.Equal(t, 5, w2.ID)
}

func TestVocabularyStore_TravelScenario(t *testing.T) {
	store := newTestStore(t, 10)
	assert.Len(t, store.GetAllWords(), 10)

	travel := store.CreateFolder("Travel")
	assert.Len(t, store.GetAllFolders(), 2)

	airport := store.CreateModule(travel.ID, "Airport")
	require.NotNil(t, airport)

	gate := store.AddWordToModule(airport.ID, domain.WordInput{Word: "gate", Translation: "cổng"})
	require.NotNil(t, gate)

	words := store.GetWordsByModuleID(airport.ID)
	require.Len(t, words, 1)
	assert.Equal(t, gate.ID, words[0].ID)
	assert.Equal(t, "gate", words[0].Word)

	assert.True(t, store.DeleteModule(airport.ID))
	assert.Nil(t, store.GetModuleByID(airport.ID))

	folder := store.GetFolderByID(travel.ID)
	require.NotNil(t, folder)
	assert.Empty(t, folder.Modules)
	assert.Nil(t, store.GetWordByID(gate.ID))
}

func TestVocabularyStore_DeleteUnknownFolder(t *testing.T) {
	store := newTestStore(t, 10)
	before := store.GetAllFolders()

	assert.False(t, store.DeleteFolder(999))
	assert.Equal(t, before, store.GetAllFolders())
}

func TestVocabularyStore_DeleteFolderCascades(t *testing.T) {
	store := newTestStore(t, 4)

	folder := store.CreateFolder("Food")
	m1 := store.CreateModule(folder.ID, "Fruit")
	m2 := store.CreateModule(folder.ID, "Vegetables")
	require.NotNil(t, m1)
	require.NotNil(t, m2)

	var removed []int
	for _, in := range []domain.WordInput{{Word: "pear", Translation: "lê"}, {Word: "plum", Translation: "mận"}} {
		removed = append(removed, store.AddWordToModule(m1.ID, in).ID)
	}
	removed = append(removed, store.AddWordToModule(m2.ID, domain.WordInput{Word: "leek", Translation: "tỏi tây"}).ID)

	require.True(t, store.DeleteFolder(folder.ID))

	remaining := ids(store.GetAllWords())
	for _, id := range removed {
		assert.NotContains(t, remaining, id)
		assert.Nil(t, store.GetWordByID(id))
	}
	assert.Len(t, remaining, 4)
	assert.Nil(t, store.GetModuleByID(m1.ID))
	assert.Nil(t, store.GetModuleByID(m2.ID))
	assert.Empty(t, store.GetModulesByFolderID(folder.ID))
	assert.Nil(t, store.GetFolderByID(folder.ID))
}

func TestVocabularyStore_UpdateFolder(t *testing.T) {
	store := newTestStore(t, 1)

	updated := store.UpdateFolder(1, "Renamed")
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Renamed", store.GetFolderByID(1).Name)

	assert.Nil(t, store.UpdateFolder(99, "x"))
}

func TestVocabularyStore_Modules(t *testing.T) {
	store := newTestStore(t, 2)

	assert.Nil(t, store.CreateModule(99, "orphan"))

	second := store.CreateFolder("Second")
	a := store.CreateModule(second.ID, "A")
	b := store.CreateModule(1, "B")
	require.NotNil(t, a)
	require.NotNil(t, b)

	all := store.GetAllModules()
	require.Len(t, all, 3)
	assert.Equal(t, []string{DefaultModuleName, "B", "A"}, []string{all[0].Name, all[1].Name, all[2].Name})

	assert.Len(t, store.GetModulesByFolderID(1), 2)
	assert.NotNil(t, store.GetModulesByFolderID(99))
	assert.Empty(t, store.GetModulesByFolderID(99))

	renamed := store.UpdateModule(a.ID, "A2")
	require.NotNil(t, renamed)
	assert.Equal(t, "A2", store.GetModuleByID(a.ID).Name)
	assert.Nil(t, store.UpdateModule(99, "x"))

	assert.False(t, store.DeleteModule(99))
}

func TestVocabularyStore_UpdateWordKeepsPosition(t *testing.T) {
	store := newTestStore(t, 5)

	updated := store.UpdateWordInModule(1, 3, domain.WordInput{Word: "new", Translation: "mới", Example: "brand new"})
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.ID)

	words := store.GetWordsByModuleID(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(words))
	assert.Equal(t, "new", words[2].Word)
	assert.Equal(t, "mới", words[2].Translation)
	assert.Equal(t, "brand new", words[2].Example)
}

func TestVocabularyStore_WordNotFound(t *testing.T) {
	store := newTestStore(t, 2)
	other := store.CreateModule(1, "Other")
	require.NotNil(t, other)

	in := domain.WordInput{Word: "x", Translation: "y"}
	assert.Nil(t, store.AddWordToModule(99, in))
	assert.Nil(t, store.UpdateWordInModule(99, 1, in))
	assert.Nil(t, store.UpdateWordInModule(1, 99, in))
	// word exists but in another module
	assert.Nil(t, store.UpdateWordInModule(other.ID, 1, in))
	assert.False(t, store.DeleteWordFromModule(other.ID, 1))
	assert.False(t, store.DeleteWordFromModule(99, 1))
	assert.False(t, store.DeleteWordFromModule(1, 99))
	assert.Nil(t, store.GetWordByID(99))
	assert.NotNil(t, store.GetWordsByModuleID(99))
	assert.Empty(t, store.GetWordsByModuleID(99))

	assert.Len(t, store.GetAllWords(), 2)
}

func TestVocabularyStore_DeleteWord(t *testing.T) {
	store := newTestStore(t, 3)

	assert.True(t, store.DeleteWordFromModule(1, 2))
	assert.Equal(t, []int{1, 3}, ids(store.GetWordsByModuleID(1)))
	assert.False(t, store.DeleteWordFromModule(1, 2))
}

func TestVocabularyStore_ReturnsCopies(t *testing.T) {
	store := newTestStore(t, 3)

	folders := store.GetAllFolders()
	folders[0].Name = "hacked"
	folders[0].Modules[0].Words[0].Word = "hacked"
	folders[0].Modules = nil
	_ = append(folders, domain.Folder{ID: 50})

	words := store.GetWordsByModuleID(1)
	words[1].Translation = "hacked"

	word := store.GetWordByID(3)
	word.Word = "hacked"

	fresh := store.GetAllFolders()
	require.Len(t, fresh, 1)
	assert.Equal(t, DefaultFolderName, fresh[0].Name)
	require.Len(t, fresh[0].Modules, 1)
	assert.Equal(t, "word1", fresh[0].Modules[0].Words[0].Word)
	assert.Equal(t, "translation2", fresh[0].Modules[0].Words[1].Translation)
	assert.Equal(t, "word3", store.GetWordByID(3).Word)
}

func TestVocabularyStore_GetRandomWords(t *testing.T) {
	store := newTestStore(t, 10)
	all := ids(store.GetAllWords())

	for n := 0; n <= 10; n++ {
		got := store.GetRandomWords(n)
		require.Len(t, got, n)

		seen := make(map[int]bool)
		for _, w := range got {
			assert.Contains(t, all, w.ID)
			assert.False(t, seen[w.ID], "duplicate id %d", w.ID)
			seen[w.ID] = true
		}
	}

	assert.ElementsMatch(t, all, ids(store.GetRandomWords(25)))
	assert.Empty(t, store.GetRandomWords(-1))
}

func TestVocabularyStore_GetRandomWordsExcluding(t *testing.T) {
	store := newTestStore(t, 6)

	for n := 0; n <= 8; n++ {
		for exclude := 1; exclude <= 6; exclude++ {
			got := ids(store.GetRandomWordsExcluding(n, exclude))
			assert.NotContains(t, got, exclude)
			if n <= 5 {
				assert.Len(t, got, n)
			} else {
				assert.Len(t, got, 5)
			}
		}
	}

	// unknown id leaves the pool intact
	assert.Len(t, store.GetRandomWordsExcluding(10, 99), 6)
}

func TestVocabularyStore_GetRandomWordsDoesNotReorderStore(t *testing.T) {
	store := newTestStore(t, 8)

	for i := 0; i < 5; i++ {
		store.GetRandomWords(8)
		store.GetRandomWordsExcluding(8, 1)
		store.GetRandomWordsFromModule(1, 8)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(store.GetAllWords()))
}

func TestVocabularyStore_GetRandomWordsFromModule(t *testing.T) {
	store := newTestStore(t, 5)
	other := store.CreateModule(1, "Other")
	require.NotNil(t, other)
	extra := store.AddWordToModule(other.ID, domain.WordInput{Word: "x", Translation: "y"})
	require.NotNil(t, extra)

	got := store.GetRandomWordsFromModule(other.ID, 3)
	assert.Equal(t, []int{extra.ID}, ids(got))

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, ids(store.GetRandomWordsFromModule(1, 10)))
	assert.Empty(t, store.GetRandomWordsFromModule(99, 3))
}

func TestVocabularyStore_GetRandomWordsCoversPool(t *testing.T) {
	store := newTestStore(t, 5)

	firsts := make(map[int]int)
	for i := 0; i < 500; i++ {
		firsts[store.GetRandomWords(1)[0].ID]++
	}

	assert.Len(t, firsts, 5)
	for id, n := range firsts {
		assert.Greater(t, n, 40, "word %d picked only %d times", id, n)
	}
}

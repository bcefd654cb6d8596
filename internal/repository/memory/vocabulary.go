// Package memory holds the in-process vocabulary store.
package memory

import (
	"math/rand/v2"
	"sync"

	"flashword/internal/domain"
)

const (
	DefaultFolderName = "Default Folder"
	DefaultModuleName = "Default Module"
)

// Options tunes store construction. The zero value is usable.
type Options struct {
	FolderName string
	ModuleName string
	// Rand drives sampling; seeded from the runtime when nil
	Rand *rand.Rand
}

type folderEntry struct {
	id      int
	name    string
	modules []*moduleEntry
}

type moduleEntry struct {
	id       int
	name     string
	folderID int
	words    []*domain.Word
}

type wordRef struct {
	word     *domain.Word
	moduleID int
}

// VocabularyStore implements repository.VocabularyRepository.
// Ordered slices keep display order, the maps index entities by id.
type VocabularyStore struct {
	mu sync.RWMutex

	folders     []*folderEntry
	folderIndex map[int]*folderEntry
	moduleIndex map[int]*moduleEntry
	wordIndex   map[int]wordRef

	lastFolderID int
	lastModuleID int
	lastWordID   int

	rng *rand.Rand
}

// NewVocabularyStore creates a store holding one default folder with one
// default module filled with the seed words
func NewVocabularyStore(seed []domain.Word, opts Options) *VocabularyStore {
	if opts.FolderName == "" {
		opts.FolderName = DefaultFolderName
	}
	if opts.ModuleName == "" {
		opts.ModuleName = DefaultModuleName
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &VocabularyStore{
		folderIndex: make(map[int]*folderEntry),
		moduleIndex: make(map[int]*moduleEntry),
		wordIndex:   make(map[int]wordRef),
		rng:         opts.Rand,
	}

	for _, w := range seed {
		if w.ID > s.lastWordID {
			s.lastWordID = w.ID
		}
	}

	folder := s.insertFolder(opts.FolderName)
	module := s.insertModule(folder, opts.ModuleName)

	for _, w := range seed {
		word := w
		if _, taken := s.wordIndex[word.ID]; word.ID <= 0 || taken {
			s.lastWordID++
			word.ID = s.lastWordID
		}
		s.insertWord(module, word)
	}

	return s
}

func (s *VocabularyStore) insertFolder(name string) *folderEntry {
	s.lastFolderID++
	f := &folderEntry{id: s.lastFolderID, name: name}
	s.folders = append(s.folders, f)
	s.folderIndex[f.id] = f
	return f
}

func (s *VocabularyStore) insertModule(f *folderEntry, name string) *moduleEntry {
	s.lastModuleID++
	m := &moduleEntry{id: s.lastModuleID, name: name, folderID: f.id}
	f.modules = append(f.modules, m)
	s.moduleIndex[m.id] = m
	return m
}

func (s *VocabularyStore) insertWord(m *moduleEntry, w domain.Word) *domain.Word {
	word := &w
	m.words = append(m.words, word)
	s.wordIndex[word.ID] = wordRef{word: word, moduleID: m.id}
	return word
}

// purgeModule drops index entries for the module and its words
func (s *VocabularyStore) purgeModule(m *moduleEntry) {
	for _, w := range m.words {
		delete(s.wordIndex, w.ID)
	}
	delete(s.moduleIndex, m.id)
}

func (f *folderEntry) snapshot() domain.Folder {
	modules := make([]domain.Module, len(f.modules))
	for i, m := range f.modules {
		modules[i] = m.snapshot()
	}
	return domain.Folder{ID: f.id, Name: f.name, Modules: modules}
}

func (m *moduleEntry) snapshot() domain.Module {
	return domain.Module{ID: m.id, FolderID: m.folderID, Name: m.name, Words: m.wordList()}
}

func (m *moduleEntry) wordList() []domain.Word {
	words := make([]domain.Word, len(m.words))
	for i, w := range m.words {
		words[i] = *w
	}
	return words
}

// CreateFolder appends a new empty folder
func (s *VocabularyStore) CreateFolder(name string) domain.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertFolder(name).snapshot()
}

// UpdateFolder renames a folder
func (s *VocabularyStore) UpdateFolder(id int, name string) *domain.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.folderIndex[id]
	if !ok {
		return nil
	}
	f.name = name

	folder := f.snapshot()
	return &folder
}

// DeleteFolder removes a folder together with its modules and words
func (s *VocabularyStore) DeleteFolder(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.folderIndex[id]
	if !ok {
		return false
	}

	for i, candidate := range s.folders {
		if candidate.id == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			break
		}
	}
	for _, m := range f.modules {
		s.purgeModule(m)
	}
	delete(s.folderIndex, id)

	return true
}

// GetAllFolders returns copies of every folder in creation order
func (s *VocabularyStore) GetAllFolders() []domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders := make([]domain.Folder, len(s.folders))
	for i, f := range s.folders {
		folders[i] = f.snapshot()
	}
	return folders
}

// GetFolderByID returns a folder or nil
func (s *VocabularyStore) GetFolderByID(id int) *domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.folderIndex[id]
	if !ok {
		return nil
	}
	folder := f.snapshot()
	return &folder
}

// CreateModule appends a new module to a folder
func (s *VocabularyStore) CreateModule(folderID int, name string) *domain.Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.folderIndex[folderID]
	if !ok {
		return nil
	}
	module := s.insertModule(f, name).snapshot()
	return &module
}

// UpdateModule renames a module
func (s *VocabularyStore) UpdateModule(id int, name string) *domain.Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.moduleIndex[id]
	if !ok {
		return nil
	}
	m.name = name

	module := m.snapshot()
	return &module
}

// DeleteModule removes a module together with its words
func (s *VocabularyStore) DeleteModule(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.moduleIndex[id]
	if !ok {
		return false
	}

	f := s.folderIndex[m.folderID]
	for i, candidate := range f.modules {
		if candidate.id == id {
			f.modules = append(f.modules[:i], f.modules[i+1:]...)
			break
		}
	}
	s.purgeModule(m)

	return true
}

// GetAllModules returns every module, folder order then module order
func (s *VocabularyStore) GetAllModules() []domain.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	modules := make([]domain.Module, 0, len(s.moduleIndex))
	for _, f := range s.folders {
		for _, m := range f.modules {
			modules = append(modules, m.snapshot())
		}
	}
	return modules
}

// GetModuleByID returns a module or nil
func (s *VocabularyStore) GetModuleByID(id int) *domain.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.moduleIndex[id]
	if !ok {
		return nil
	}
	module := m.snapshot()
	return &module
}

// GetModulesByFolderID returns the modules of a folder, empty when the folder is unknown
func (s *VocabularyStore) GetModulesByFolderID(folderID int) []domain.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.folderIndex[folderID]
	if !ok {
		return []domain.Module{}
	}
	modules := make([]domain.Module, len(f.modules))
	for i, m := range f.modules {
		modules[i] = m.snapshot()
	}
	return modules
}

// AddWordToModule appends a word with a fresh id
func (s *VocabularyStore) AddWordToModule(moduleID int, input domain.WordInput) *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.moduleIndex[moduleID]
	if !ok {
		return nil
	}

	s.lastWordID++
	word := *s.insertWord(m, domain.Word{
		ID:          s.lastWordID,
		Word:        input.Word,
		Translation: input.Translation,
		Example:     input.Example,
	})
	return &word
}

// UpdateWordInModule replaces the content of a word, keeping its id and position
func (s *VocabularyStore) UpdateWordInModule(moduleID, wordID int, input domain.WordInput) *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.wordIndex[wordID]
	if !ok || ref.moduleID != moduleID {
		return nil
	}

	ref.word.Word = input.Word
	ref.word.Translation = input.Translation
	ref.word.Example = input.Example

	word := *ref.word
	return &word
}

// DeleteWordFromModule removes a word from its module
func (s *VocabularyStore) DeleteWordFromModule(moduleID, wordID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.wordIndex[wordID]
	if !ok || ref.moduleID != moduleID {
		return false
	}

	m := s.moduleIndex[moduleID]
	for i, w := range m.words {
		if w.ID == wordID {
			m.words = append(m.words[:i], m.words[i+1:]...)
			break
		}
	}
	delete(s.wordIndex, wordID)

	return true
}

// GetAllWords returns every word in display order
func (s *VocabularyStore) GetAllWords() []domain.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allWords()
}

func (s *VocabularyStore) allWords() []domain.Word {
	words := make([]domain.Word, 0, len(s.wordIndex))
	for _, f := range s.folders {
		for _, m := range f.modules {
			for _, w := range m.words {
				words = append(words, *w)
			}
		}
	}
	return words
}

// GetWordByID returns a word or nil
func (s *VocabularyStore) GetWordByID(id int) *domain.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.wordIndex[id]
	if !ok {
		return nil
	}
	word := *ref.word
	return &word
}

// GetWordsByModuleID returns the words of a module, empty when the module is unknown
func (s *VocabularyStore) GetWordsByModuleID(moduleID int) []domain.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.moduleIndex[moduleID]
	if !ok {
		return []domain.Word{}
	}
	return m.wordList()
}

// GetRandomWords returns up to count distinct words chosen uniformly
func (s *VocabularyStore) GetRandomWords(count int) []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sample(s.allWords(), count)
}

// GetRandomWordsExcluding is GetRandomWords with one word id left out of the pool
func (s *VocabularyStore) GetRandomWordsExcluding(count, excludeID int) []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.allWords()
	pool := all[:0]
	for _, w := range all {
		if w.ID != excludeID {
			pool = append(pool, w)
		}
	}
	return s.sample(pool, count)
}

// GetRandomWordsFromModule samples only among the words of one module
func (s *VocabularyStore) GetRandomWordsFromModule(moduleID, count int) []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.moduleIndex[moduleID]
	if !ok {
		return []domain.Word{}
	}
	return s.sample(m.wordList(), count)
}

// sample shuffles pool in place (Fisher-Yates) and returns its prefix.
// Callers hold the write lock since rng is not safe for concurrent use.
func (s *VocabularyStore) sample(pool []domain.Word, count int) []domain.Word {
	if count <= 0 || len(pool) == 0 {
		return []domain.Word{}
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

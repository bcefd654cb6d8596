package service

import (
	"fmt"
	"strings"

	"flashword/internal/domain"
	"flashword/internal/importer"
	"flashword/internal/repository"

	"go.uber.org/zap"
)

// VocabularyService validates input before it reaches the vocabulary store
type VocabularyService struct {
	repo   repository.VocabularyRepository
	logger *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(repo repository.VocabularyRepository, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		repo:   repo,
		logger: logger,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

func normalizeWord(input domain.WordInput) (domain.WordInput, error) {
	input.Word = strings.TrimSpace(input.Word)
	input.Translation = strings.TrimSpace(input.Translation)
	input.Example = strings.TrimSpace(input.Example)
	if input.Word == "" || input.Translation == "" {
		return input, ErrEmptyWord
	}
	return input, nil
}

// Folders returns every folder with its modules and words
func (s *VocabularyService) Folders() []domain.Folder {
	return s.repo.GetAllFolders()
}

// Folder returns a folder by id
func (s *VocabularyService) Folder(id int) (*domain.Folder, error) {
	folder := s.repo.GetFolderByID(id)
	if folder == nil {
		return nil, fmt.Errorf("folder %d: %w", id, ErrFolderNotFound)
	}
	return folder, nil
}

// CreateFolder creates an empty folder
func (s *VocabularyService) CreateFolder(name string) (domain.Folder, error) {
	name, err := normalizeName(name)
	if err != nil {
		return domain.Folder{}, err
	}

	folder := s.repo.CreateFolder(name)
	s.logger.Info("Folder created", zap.Int("folder_id", folder.ID), zap.String("name", name))
	return folder, nil
}

// RenameFolder changes the name of a folder
func (s *VocabularyService) RenameFolder(id int, name string) (*domain.Folder, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	folder := s.repo.UpdateFolder(id, name)
	if folder == nil {
		return nil, fmt.Errorf("folder %d: %w", id, ErrFolderNotFound)
	}
	return folder, nil
}

// DeleteFolder removes a folder with all its modules and words
func (s *VocabularyService) DeleteFolder(id int) error {
	if !s.repo.DeleteFolder(id) {
		return fmt.Errorf("folder %d: %w", id, ErrFolderNotFound)
	}
	s.logger.Info("Folder deleted", zap.Int("folder_id", id))
	return nil
}

// Modules returns every module across all folders
func (s *VocabularyService) Modules() []domain.Module {
	return s.repo.GetAllModules()
}

// Module returns a module by id
func (s *VocabularyService) Module(id int) (*domain.Module, error) {
	module := s.repo.GetModuleByID(id)
	if module == nil {
		return nil, fmt.Errorf("module %d: %w", id, ErrModuleNotFound)
	}
	return module, nil
}

// CreateModule creates an empty module inside a folder
func (s *VocabularyService) CreateModule(folderID int, name string) (*domain.Module, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	module := s.repo.CreateModule(folderID, name)
	if module == nil {
		return nil, fmt.Errorf("folder %d: %w", folderID, ErrFolderNotFound)
	}
	s.logger.Info("Module created",
		zap.Int("folder_id", folderID),
		zap.Int("module_id", module.ID),
		zap.String("name", name),
	)
	return module, nil
}

// CreateModuleWithWords creates a module and fills it with every complete input.
// Incomplete inputs are dropped; at least one complete input is required.
func (s *VocabularyService) CreateModuleWithWords(folderID int, name string, inputs []domain.WordInput) (*domain.Module, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	valid := make([]domain.WordInput, 0, len(inputs))
	for _, in := range inputs {
		if in, err := normalizeWord(in); err == nil {
			valid = append(valid, in)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidWords
	}

	module, err := s.CreateModule(folderID, name)
	if err != nil {
		return nil, err
	}
	for _, in := range valid {
		s.repo.AddWordToModule(module.ID, in)
	}

	return s.Module(module.ID)
}

// CreateModuleFromText creates a module filled from bulk import text.
// It returns the skipped line numbers next to the module.
func (s *VocabularyService) CreateModuleFromText(folderID int, name, content string) (*domain.Module, []int, error) {
	parsed := importer.Parse(content)
	module, err := s.CreateModuleWithWords(folderID, name, parsed.Words)
	if err != nil {
		return nil, parsed.Skipped, err
	}
	return module, parsed.Skipped, nil
}

// RenameModule changes the name of a module
func (s *VocabularyService) RenameModule(id int, name string) (*domain.Module, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	module := s.repo.UpdateModule(id, name)
	if module == nil {
		return nil, fmt.Errorf("module %d: %w", id, ErrModuleNotFound)
	}
	return module, nil
}

// DeleteModule removes a module with all its words
func (s *VocabularyService) DeleteModule(id int) error {
	if !s.repo.DeleteModule(id) {
		return fmt.Errorf("module %d: %w", id, ErrModuleNotFound)
	}
	s.logger.Info("Module deleted", zap.Int("module_id", id))
	return nil
}

// AllWords returns every word in the store
func (s *VocabularyService) AllWords() []domain.Word {
	return s.repo.GetAllWords()
}

// Word returns a word by id
func (s *VocabularyService) Word(id int) (*domain.Word, error) {
	word := s.repo.GetWordByID(id)
	if word == nil {
		return nil, fmt.Errorf("word %d: %w", id, ErrWordNotFound)
	}
	return word, nil
}

// AddWord adds a word to a module
func (s *VocabularyService) AddWord(moduleID int, input domain.WordInput) (*domain.Word, error) {
	input, err := normalizeWord(input)
	if err != nil {
		return nil, err
	}

	word := s.repo.AddWordToModule(moduleID, input)
	if word == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleNotFound)
	}
	s.logger.Debug("Word added", zap.Int("module_id", moduleID), zap.Int("word_id", word.ID))
	return word, nil
}

// UpdateWord replaces the content of a word
func (s *VocabularyService) UpdateWord(moduleID, wordID int, input domain.WordInput) (*domain.Word, error) {
	input, err := normalizeWord(input)
	if err != nil {
		return nil, err
	}

	word := s.repo.UpdateWordInModule(moduleID, wordID, input)
	if word == nil {
		return nil, fmt.Errorf("word %d in module %d: %w", wordID, moduleID, ErrWordNotFound)
	}
	return word, nil
}

// DeleteWord removes a word from a module
func (s *VocabularyService) DeleteWord(moduleID, wordID int) error {
	if !s.repo.DeleteWordFromModule(moduleID, wordID) {
		return fmt.Errorf("word %d in module %d: %w", wordID, moduleID, ErrWordNotFound)
	}
	return nil
}

// ImportWords adds every complete line of a bulk import text to a module.
// It returns the number of added words and the skipped line numbers.
func (s *VocabularyService) ImportWords(moduleID int, content string) (int, []int, error) {
	if s.repo.GetModuleByID(moduleID) == nil {
		return 0, nil, fmt.Errorf("module %d: %w", moduleID, ErrModuleNotFound)
	}

	parsed := importer.Parse(content)
	if len(parsed.Words) == 0 {
		return 0, parsed.Skipped, ErrNoValidWords
	}

	added := 0
	for _, in := range parsed.Words {
		if _, err := s.AddWord(moduleID, in); err != nil {
			return added, parsed.Skipped, err
		}
		added++
	}

	s.logger.Info("Words imported",
		zap.Int("module_id", moduleID),
		zap.Int("added", added),
		zap.Int("skipped", len(parsed.Skipped)),
	)
	return added, parsed.Skipped, nil
}

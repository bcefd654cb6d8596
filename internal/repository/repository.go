package repository

import (
	"time"

	"flashword/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// VocabularyRepository defines the folder/module/word tree operations.
// Lookups return nil and deletes return false when the id is unknown.
type VocabularyRepository interface {
	CreateFolder(name string) domain.Folder
	UpdateFolder(id int, name string) *domain.Folder
	DeleteFolder(id int) bool
	GetAllFolders() []domain.Folder
	GetFolderByID(id int) *domain.Folder

	CreateModule(folderID int, name string) *domain.Module
	UpdateModule(id int, name string) *domain.Module
	DeleteModule(id int) bool
	GetAllModules() []domain.Module
	GetModuleByID(id int) *domain.Module
	GetModulesByFolderID(folderID int) []domain.Module

	AddWordToModule(moduleID int, input domain.WordInput) *domain.Word
	UpdateWordInModule(moduleID, wordID int, input domain.WordInput) *domain.Word
	DeleteWordFromModule(moduleID, wordID int) bool
	GetAllWords() []domain.Word
	GetWordByID(id int) *domain.Word
	GetWordsByModuleID(moduleID int) []domain.Word

	GetRandomWords(count int) []domain.Word
	GetRandomWordsExcluding(count, excludeID int) []domain.Word
	GetRandomWordsFromModule(moduleID, count int) []domain.Word
}

// ResultRepository defines quiz result operations
type ResultRepository interface {
	SaveResult(result domain.QuizResult) error
	GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error)
	CleanOldResults(days int) error
}

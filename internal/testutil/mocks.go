package testutil

import (
	"time"

	"flashword/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockResultRepository is a mock for ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(result domain.QuizResult) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepository) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockResultRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockResultRepository) GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

func (m *MockResultRepository) CleanOldResults(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

// folder and module hand out copies, like the real store does
func (m *MockVocabularyRepository) folder(args mock.Arguments) *domain.Folder {
	if args.Get(0) == nil {
		return nil
	}
	clone := args.Get(0).(*domain.Folder).Clone()
	return &clone
}

func (m *MockVocabularyRepository) module(args mock.Arguments) *domain.Module {
	if args.Get(0) == nil {
		return nil
	}
	clone := args.Get(0).(*domain.Module).Clone()
	return &clone
}

func (m *MockVocabularyRepository) word(args mock.Arguments) *domain.Word {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Word)
}

func (m *MockVocabularyRepository) words(args mock.Arguments) []domain.Word {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Word)
}

func (m *MockVocabularyRepository) CreateFolder(name string) domain.Folder {
	args := m.Called(name)
	return args.Get(0).(domain.Folder)
}

func (m *MockVocabularyRepository) UpdateFolder(id int, name string) *domain.Folder {
	return m.folder(m.Called(id, name))
}

func (m *MockVocabularyRepository) DeleteFolder(id int) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockVocabularyRepository) GetAllFolders() []domain.Folder {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Folder)
}

func (m *MockVocabularyRepository) GetFolderByID(id int) *domain.Folder {
	return m.folder(m.Called(id))
}

func (m *MockVocabularyRepository) CreateModule(folderID int, name string) *domain.Module {
	return m.module(m.Called(folderID, name))
}

func (m *MockVocabularyRepository) UpdateModule(id int, name string) *domain.Module {
	return m.module(m.Called(id, name))
}

func (m *MockVocabularyRepository) DeleteModule(id int) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockVocabularyRepository) GetAllModules() []domain.Module {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Module)
}

func (m *MockVocabularyRepository) GetModuleByID(id int) *domain.Module {
	return m.module(m.Called(id))
}

func (m *MockVocabularyRepository) GetModulesByFolderID(folderID int) []domain.Module {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Module)
}

func (m *MockVocabularyRepository) AddWordToModule(moduleID int, input domain.WordInput) *domain.Word {
	return m.word(m.Called(moduleID, input))
}

func (m *MockVocabularyRepository) UpdateWordInModule(moduleID, wordID int, input domain.WordInput) *domain.Word {
	return m.word(m.Called(moduleID, wordID, input))
}

func (m *MockVocabularyRepository) DeleteWordFromModule(moduleID, wordID int) bool {
	args := m.Called(moduleID, wordID)
	return args.Bool(0)
}

func (m *MockVocabularyRepository) GetAllWords() []domain.Word {
	return m.words(m.Called())
}

func (m *MockVocabularyRepository) GetWordByID(id int) *domain.Word {
	return m.word(m.Called(id))
}

func (m *MockVocabularyRepository) GetWordsByModuleID(moduleID int) []domain.Word {
	return m.words(m.Called(moduleID))
}

func (m *MockVocabularyRepository) GetRandomWords(count int) []domain.Word {
	return m.words(m.Called(count))
}

func (m *MockVocabularyRepository) GetRandomWordsExcluding(count, excludeID int) []domain.Word {
	return m.words(m.Called(count, excludeID))
}

func (m *MockVocabularyRepository) GetRandomWordsFromModule(moduleID, count int) []domain.Word {
	return m.words(m.Called(moduleID, count))
}

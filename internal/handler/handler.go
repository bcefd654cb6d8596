package handler

import (
	"fmt"
	"sync"

	"flashword/internal/domain"
	"flashword/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// QuizSettings holds the sizes of quiz rounds
type QuizSettings struct {
	Questions     int
	Options       int
	MatchingPairs int
}

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	vocabService *service.VocabularyService
	quizService  *service.QuizService
	statsService *service.StatsService
	quiz         QuizSettings
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Running learning rounds, one per user
	sessions   map[int64]*session
	sessionMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	vocabService *service.VocabularyService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	quiz QuizSettings,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		vocabService: vocabService,
		quizService:  quizService,
		statsService: statsService,
		quiz:         quiz,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
		sessions:     make(map[int64]*session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/folders", h.handleFolders)
	h.bot.Handle("/quiz", h.handleQuiz)
	h.bot.Handle("/match", h.handleMatching)
	h.bot.Handle("/cards", h.handleAllFlashcards)
	h.bot.Handle("/stats", h.handleStats)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Static buttons
	h.bot.Handle(&btnFolders, h.handleFolders)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnMatching, h.handleMatching)
	h.bot.Handle(&btnAllCards, h.handleAllFlashcards)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnNewFolder, h.handleNewFolder)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Buttons with payload
	h.bot.Handle(&tele.Btn{Unique: uqFolder}, h.handleFolder)
	h.bot.Handle(&tele.Btn{Unique: uqModule}, h.handleModule)
	h.bot.Handle(&tele.Btn{Unique: uqNewModule}, h.handleNewModule)
	h.bot.Handle(&tele.Btn{Unique: uqNewModuleList}, h.handleNewModuleFromList)
	h.bot.Handle(&tele.Btn{Unique: uqRenameFolder}, h.handleRename)
	h.bot.Handle(&tele.Btn{Unique: uqRenameModule}, h.handleRename)
	h.bot.Handle(&tele.Btn{Unique: uqDeleteFolder}, h.handleDeleteFolder)
	h.bot.Handle(&tele.Btn{Unique: uqDeleteModule}, h.handleDeleteModule)
	h.bot.Handle(&tele.Btn{Unique: uqAddWord}, h.handleAddWord)
	h.bot.Handle(&tele.Btn{Unique: uqImport}, h.handleImport)
	h.bot.Handle(&tele.Btn{Unique: uqWords}, h.handleWordList)
	h.bot.Handle(&tele.Btn{Unique: uqEditWord}, h.handleEditWord)
	h.bot.Handle(&tele.Btn{Unique: uqDeleteWord}, h.handleDeleteWord)
	h.bot.Handle(&tele.Btn{Unique: uqStudy}, h.handleModuleFlashcards)
	h.bot.Handle(&tele.Btn{Unique: uqAnswer}, h.handleAnswer)
	h.bot.Handle(&tele.Btn{Unique: uqNextQuestion}, h.handleNextQuestion)
	h.bot.Handle(&tele.Btn{Unique: uqMatch}, h.handleMatchPick)
	h.bot.Handle(&tele.Btn{Unique: uqFlip}, h.handleFlip)
	h.bot.Handle(&tele.Btn{Unique: uqNextCard}, h.handleNextCard)
	h.bot.Handle(&tele.Btn{Unique: uqHistoryPage}, h.handleHistoryPage)
	h.bot.Handle(&tele.Btn{Unique: uqDay}, h.handleDay)

	// Generic callback handler for stale or unknown buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func (h *Handler) startSession(userID int64, s *session) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	h.sessions[userID] = s
}

// withSession runs fn on the user's session if its id matches.
// The session lock is held while fn runs.
func (h *Handler) withSession(userID int64, id string, fn func(s *session)) bool {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	s, ok := h.sessions[userID]
	if !ok || s.id != id {
		return false
	}
	fn(s)
	return true
}

func (h *Handler) endSession(userID int64, id string) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	if s, ok := h.sessions[userID]; ok && s.id == id {
		delete(h.sessions, userID)
	}
}

// Callback uniques for buttons carrying a payload
const (
	uqFolder        = "folder"
	uqModule        = "module"
	uqNewModule     = "new_module"
	uqNewModuleList = "new_module_list"
	uqRenameFolder  = "ren_folder"
	uqRenameModule  = "ren_module"
	uqDeleteFolder  = "del_folder"
	uqDeleteModule  = "del_module"
	uqAddWord       = "add_word"
	uqImport        = "import"
	uqWords         = "words"
	uqEditWord      = "edit_word"
	uqDeleteWord    = "del_word"
	uqStudy         = "study"
	uqAnswer        = "ans"
	uqNextQuestion  = "next_q"
	uqMatch         = "match"
	uqFlip          = "flip"
	uqNextCard      = "next_card"
	uqHistoryPage   = "hist"
	uqDay           = "day"
)

// Inline keyboard buttons
var (
	btnFolders = tele.Btn{
		Unique: "folders",
		Text:   "📂 Folders",
	}
	btnAllCards = tele.Btn{
		Unique: "cards_all",
		Text:   "🃏 Flashcards",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "✅ Multiple choice",
	}
	btnMatching = tele.Btn{
		Unique: "matching",
		Text:   "🔀 Matching",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnNewFolder = tele.Btn{
		Unique: "new_folder",
		Text:   "➕ New folder",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const (
	msgPasswordPrompt = "Hi! This bot is private. Send the password to continue:"
	msgError          = "Something went wrong. Please try again later."
	msgStale          = "This round is over. Start a new one from the menu."
	msgImportFormat   = "📥 Send the words, one per line:\n\nword,translation,example\n\nThe example is optional."
)

// mainMenuText returns the main menu header with vocabulary totals
func (h *Handler) mainMenuText() string {
	return fmt.Sprintf("🏠 Main menu\n\n📚 %d words in %d modules\n\nChoose a mode:",
		len(h.vocabService.AllWords()), len(h.vocabService.Modules()))
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnFolders),
		menu.Row(btnAllCards, btnQuiz),
		menu.Row(btnMatching, btnStats),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

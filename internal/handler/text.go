package handler

import (
	"errors"
	"fmt"
	"strings"

	"flashword/internal/domain"
	"flashword/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// skipReply keeps the current value while editing a word.
// While adding, it leaves the example empty.
const skipReply = "-"

// handleText handles plain text according to the user's state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	authorized, err := h.isAuthorized(c)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}
	if !authorized {
		return h.handlePassword(c, text)
	}

	state := h.GetState(userID)

	h.logger.Debug("Handling text message",
		zap.Int64("user_id", userID),
		zap.String("state", string(state.State)),
	)

	switch state.State {
	case domain.StateWaitingFolderName:
		return h.handleFolderNameInput(c, text)
	case domain.StateWaitingModuleName:
		return h.handleModuleNameInput(c, state, text)
	case domain.StateWaitingRename:
		return h.handleRenameInput(c, state, text)
	case domain.StateWaitingWord:
		return h.handleWordInput(c, state, text)
	case domain.StateWaitingTranslation:
		return h.handleTranslationInput(c, state, text)
	case domain.StateWaitingExample:
		return h.handleExampleInput(c, state, text)
	case domain.StateWaitingImport:
		return h.handleImportInput(c, state, c.Text())
	case domain.StateWaitingModuleWords:
		return h.handleModuleWordsInput(c, state, c.Text())
	default:
		return c.Send("Use the menu to choose what to do.", mainMenuMarkup())
	}
}

// handlePassword checks the password sent by an unauthorized user
func (h *Handler) handlePassword(c tele.Context, password string) error {
	userID := c.Sender().ID

	if !h.authService.CheckPassword(password) {
		h.logger.Info("Wrong password", zap.Int64("user_id", userID))
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send("❌ Wrong password. Try again:")
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Access granted!\n\n"+h.mainMenuText(), mainMenuMarkup())
}

func (h *Handler) handleFolderNameInput(c tele.Context, name string) error {
	folder, err := h.vocabService.CreateFolder(name)
	if errors.Is(err, service.ErrEmptyName) {
		return c.Send("The name cannot be empty. Send the folder name:", cancelMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to create folder", zap.Error(err))
		return c.Send(msgError)
	}

	h.ResetState(c.Sender().ID)
	return h.showFolder(c, folder.ID)
}

func (h *Handler) handleModuleNameInput(c tele.Context, state *domain.StateData, name string) error {
	if state.FromList {
		if name == "" {
			return c.Send("The name cannot be empty. Send the module name:", cancelMarkup())
		}
		h.SetState(c.Sender().ID, &domain.StateData{
			State:      domain.StateWaitingModuleWords,
			FolderID:   state.FolderID,
			ModuleName: name,
		})
		return c.Send(msgImportFormat, cancelMarkup())
	}

	module, err := h.vocabService.CreateModule(state.FolderID, name)
	switch {
	case errors.Is(err, service.ErrEmptyName):
		return c.Send("The name cannot be empty. Send the module name:", cancelMarkup())
	case errors.Is(err, service.ErrFolderNotFound):
		h.ResetState(c.Sender().ID)
		return c.Send("This folder no longer exists.", mainMenuMarkup())
	case err != nil:
		h.logger.Error("Failed to create module", zap.Error(err))
		return c.Send(msgError)
	}

	h.ResetState(c.Sender().ID)
	return h.showModule(c, module.ID)
}

func (h *Handler) handleRenameInput(c tele.Context, state *domain.StateData, name string) error {
	var err error
	if state.RenameKind == "folder" {
		_, err = h.vocabService.RenameFolder(state.RenameID, name)
	} else {
		_, err = h.vocabService.RenameModule(state.RenameID, name)
	}

	switch {
	case errors.Is(err, service.ErrEmptyName):
		return c.Send("The name cannot be empty. Send the new name:", cancelMarkup())
	case err != nil:
		h.ResetState(c.Sender().ID)
		return c.Send(fmt.Sprintf("This %s no longer exists.", state.RenameKind), mainMenuMarkup())
	}

	h.ResetState(c.Sender().ID)
	if state.RenameKind == "folder" {
		return h.showFolder(c, state.RenameID)
	}
	return h.showModule(c, state.RenameID)
}

func (h *Handler) handleWordInput(c tele.Context, state *domain.StateData, word string) error {
	editing := state.WordID != 0
	if word == "" {
		return c.Send("The word cannot be empty. Send the word:", doneMarkup(state.ModuleID))
	}

	pending := state.Pending
	if !editing || word != skipReply {
		pending.Word = word
	}

	next := *state
	next.State = domain.StateWaitingTranslation
	next.Pending = pending
	h.SetState(c.Sender().ID, &next)

	if editing {
		return c.Send(fmt.Sprintf("🔄 Send the new translation, or %s to keep «%s»:", skipReply, pending.Translation), cancelMarkup())
	}
	return c.Send(fmt.Sprintf("🔄 Send the translation of «%s»:", pending.Word), cancelMarkup())
}

func (h *Handler) handleTranslationInput(c tele.Context, state *domain.StateData, translation string) error {
	editing := state.WordID != 0
	if translation == "" {
		return c.Send("The translation cannot be empty. Send the translation:", cancelMarkup())
	}

	next := *state
	next.State = domain.StateWaitingExample
	if !editing || translation != skipReply {
		next.Pending.Translation = translation
	}
	h.SetState(c.Sender().ID, &next)

	if editing && next.Pending.Example != "" {
		return c.Send(fmt.Sprintf("💬 Send a new example sentence, or %s to keep «%s»:", skipReply, next.Pending.Example), cancelMarkup())
	}
	return c.Send(fmt.Sprintf("💬 Send an example sentence, or %s to skip:", skipReply), cancelMarkup())
}

func (h *Handler) handleExampleInput(c tele.Context, state *domain.StateData, example string) error {
	pending := state.Pending
	if example != skipReply {
		pending.Example = example
	}

	if state.WordID != 0 {
		return h.finishEditWord(c, state, pending)
	}
	return h.finishAddWord(c, state, pending)
}

func (h *Handler) finishAddWord(c tele.Context, state *domain.StateData, input domain.WordInput) error {
	userID := c.Sender().ID

	word, err := h.vocabService.AddWord(state.ModuleID, input)
	if errors.Is(err, service.ErrModuleNotFound) {
		h.ResetState(userID)
		return c.Send("This module no longer exists.", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to add word", zap.Error(err), zap.Int("module_id", state.ModuleID))
		h.ResetState(userID)
		return c.Send(msgError)
	}

	h.SetState(userID, &domain.StateData{
		State:    domain.StateWaitingWord,
		ModuleID: state.ModuleID,
	})
	text := fmt.Sprintf("✅ Added: %s — %s\n\n📝 Send the next word, or press Done:", word.Word, word.Translation)
	return c.Send(text, doneMarkup(state.ModuleID))
}

func (h *Handler) finishEditWord(c tele.Context, state *domain.StateData, input domain.WordInput) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	word, err := h.vocabService.UpdateWord(state.ModuleID, state.WordID, input)
	if errors.Is(err, service.ErrWordNotFound) {
		return c.Send("This word no longer exists.", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to update word",
			zap.Error(err),
			zap.Int("module_id", state.ModuleID),
			zap.Int("word_id", state.WordID),
		)
		return c.Send(msgError)
	}

	if err := c.Send(fmt.Sprintf("✅ Updated: %s — %s", word.Word, word.Translation)); err != nil {
		return err
	}
	return h.showWordList(c, state.ModuleID)
}

func (h *Handler) handleModuleWordsInput(c tele.Context, state *domain.StateData, content string) error {
	module, skipped, err := h.vocabService.CreateModuleFromText(state.FolderID, state.ModuleName, content)
	switch {
	case errors.Is(err, service.ErrNoValidWords):
		return c.Send("No valid lines found. Use word,translation,example and try again:", cancelMarkup())
	case errors.Is(err, service.ErrFolderNotFound):
		h.ResetState(c.Sender().ID)
		return c.Send("This folder no longer exists.", mainMenuMarkup())
	case err != nil:
		h.logger.Error("Failed to create module from list", zap.Error(err), zap.Int("folder_id", state.FolderID))
		h.ResetState(c.Sender().ID)
		return c.Send(msgError)
	}

	h.ResetState(c.Sender().ID)
	if err := c.Send(importSummary(len(module.Words), skipped)); err != nil {
		return err
	}
	return h.showModule(c, module.ID)
}

func (h *Handler) handleImportInput(c tele.Context, state *domain.StateData, content string) error {
	added, skipped, err := h.vocabService.ImportWords(state.ModuleID, content)
	switch {
	case errors.Is(err, service.ErrModuleNotFound):
		h.ResetState(c.Sender().ID)
		return c.Send("This module no longer exists.", mainMenuMarkup())
	case errors.Is(err, service.ErrNoValidWords):
		return c.Send("No valid lines found. Use word,translation,example and try again:", cancelMarkup())
	case err != nil:
		h.logger.Error("Failed to import words", zap.Error(err), zap.Int("module_id", state.ModuleID))
		h.ResetState(c.Sender().ID)
		return c.Send(msgError)
	}

	h.ResetState(c.Sender().ID)
	if err := c.Send(importSummary(added, skipped)); err != nil {
		return err
	}
	return h.showModule(c, state.ModuleID)
}

func importSummary(added int, skipped []int) string {
	text := fmt.Sprintf("📥 Imported %d words.", added)
	if len(skipped) > 0 {
		text += fmt.Sprintf("\nSkipped lines: %s", joinInts(skipped))
	}
	return text
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

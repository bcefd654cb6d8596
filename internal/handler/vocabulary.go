package handler

import (
	"fmt"
	"strconv"
	"strings"

	"flashword/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	maxListedWords = 50
	maxWordRows    = 40
)

// handleFolders shows the list of folders
func (h *Handler) handleFolders(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.showFolders(c)
}

func (h *Handler) showFolders(c tele.Context) error {
	folders := h.vocabService.Folders()

	text := "📂 Folders"
	if len(folders) == 0 {
		text += "\n\nNo folders yet."
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(folders)+2)
	for _, f := range folders {
		label := fmt.Sprintf("📁 %s (%d)", f.Name, len(f.Modules))
		rows = append(rows, markup.Row(markup.Data(label, uqFolder, strconv.Itoa(f.ID))))
	}
	rows = append(rows, markup.Row(btnNewFolder), markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.show(c, text, markup)
}

// handleFolder shows one folder with its modules
func (h *Handler) handleFolder(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	return h.showFolder(c, ids[0])
}

func (h *Handler) showFolder(c tele.Context, folderID int) error {
	folder, err := h.vocabService.Folder(folderID)
	if err != nil {
		h.logger.Debug("Folder not found", zap.Int("folder_id", folderID))
		return h.notify(c, "This folder no longer exists.")
	}

	text := fmt.Sprintf("📁 %s\n\nModules: %d\nWords: %d", folder.Name, len(folder.Modules), folder.WordCount())

	id := strconv.Itoa(folder.ID)
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(folder.Modules)+3)
	for _, m := range folder.Modules {
		label := fmt.Sprintf("📘 %s (%d)", m.Name, len(m.Words))
		rows = append(rows, markup.Row(markup.Data(label, uqModule, strconv.Itoa(m.ID))))
	}
	rows = append(rows,
		markup.Row(markup.Data("➕ New module", uqNewModule, id)),
		markup.Row(markup.Data("📥 New module from list", uqNewModuleList, id)),
		markup.Row(
			markup.Data("✏️ Rename", uqRenameFolder, id),
			markup.Data("🗑 Delete", uqDeleteFolder, id),
		),
		markup.Row(btnFolders, btnMainMenu),
	)
	markup.Inline(rows...)

	return h.show(c, text, markup)
}

// handleModule shows one module with its actions
func (h *Handler) handleModule(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.ResetState(c.Sender().ID)
	return h.showModule(c, ids[0])
}

func (h *Handler) showModule(c tele.Context, moduleID int) error {
	module, err := h.vocabService.Module(moduleID)
	if err != nil {
		h.logger.Debug("Module not found", zap.Int("module_id", moduleID))
		return h.notify(c, "This module no longer exists.")
	}

	text := fmt.Sprintf("📘 %s\n\nWords: %d", module.Name, len(module.Words))

	id := strconv.Itoa(module.ID)
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("📖 Words", uqWords, id),
			markup.Data("🃏 Study", uqStudy, id),
		),
		markup.Row(
			markup.Data("➕ Add word", uqAddWord, id),
			markup.Data("📥 Import", uqImport, id),
		),
		markup.Row(
			markup.Data("✏️ Rename", uqRenameModule, id),
			markup.Data("🗑 Delete", uqDeleteModule, id),
		),
		markup.Row(markup.Data("◀️ Back", uqFolder, strconv.Itoa(module.FolderID))),
	)

	return h.show(c, text, markup)
}

// handleNewFolder asks for the name of a new folder
func (h *Handler) handleNewFolder(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingFolderName})
	return h.show(c, "📁 Send the name of the new folder:", cancelMarkup())
}

// handleNewModule asks for the name of a new module in a folder
func (h *Handler) handleNewModule(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateWaitingModuleName,
		FolderID: ids[0],
	})
	return h.show(c, "📘 Send the name of the new module:", cancelMarkup())
}

// handleNewModuleFromList asks for a module name, then for its word list
func (h *Handler) handleNewModuleFromList(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateWaitingModuleName,
		FolderID: ids[0],
		FromList: true,
	})
	return h.show(c, "📘 Send the name of the new module:", cancelMarkup())
}

// handleRename asks for a new folder or module name
func (h *Handler) handleRename(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}

	kind := "module"
	if c.Callback().Unique == uqRenameFolder {
		kind = "folder"
	}
	h.SetState(c.Sender().ID, &domain.StateData{
		State:      domain.StateWaitingRename,
		RenameKind: kind,
		RenameID:   ids[0],
	})
	return h.show(c, fmt.Sprintf("✏️ Send the new %s name:", kind), cancelMarkup())
}

// handleDeleteFolder removes a folder with everything inside it
func (h *Handler) handleDeleteFolder(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	if err := h.vocabService.DeleteFolder(ids[0]); err != nil {
		return h.notify(c, "This folder no longer exists.")
	}
	return h.showFolders(c)
}

// handleDeleteModule removes a module with all its words
func (h *Handler) handleDeleteModule(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}

	module, err := h.vocabService.Module(ids[0])
	if err != nil {
		return h.notify(c, "This module no longer exists.")
	}
	if err := h.vocabService.DeleteModule(module.ID); err != nil {
		return h.notify(c, "This module no longer exists.")
	}
	return h.showFolder(c, module.FolderID)
}

// handleAddWord starts the add-word dialog for a module
func (h *Handler) handleAddWord(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateWaitingWord,
		ModuleID: ids[0],
	})
	return h.show(c, "📝 Send the word:", doneMarkup(ids[0]))
}

// handleImport asks for bulk "word,translation,example" lines
func (h *Handler) handleImport(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateWaitingImport,
		ModuleID: ids[0],
	})
	return h.show(c, msgImportFormat, cancelMarkup())
}

// handleEditWord starts the edit dialog for one word of a module
func (h *Handler) handleEditWord(c tele.Context) error {
	ids, ok := callbackIDs(c, 2)
	if !ok {
		return c.Respond()
	}
	moduleID, wordID := ids[0], ids[1]

	word, err := h.vocabService.Word(wordID)
	if err != nil {
		return h.notify(c, "This word no longer exists.")
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:    domain.StateWaitingWord,
		ModuleID: moduleID,
		WordID:   word.ID,
		Pending:  word.Input(),
	})

	text := fmt.Sprintf("✏️ Editing %s — %s\n\n📝 Send the new word, or %s to keep «%s»:",
		word.Word, word.Translation, skipReply, word.Word)
	return h.show(c, text, backToWordsMarkup(moduleID))
}

// handleWordList lists the words of a module with edit and delete buttons
func (h *Handler) handleWordList(c tele.Context) error {
	ids, ok := callbackIDs(c, 1)
	if !ok {
		return c.Respond()
	}
	h.ResetState(c.Sender().ID)
	return h.showWordList(c, ids[0])
}

func (h *Handler) showWordList(c tele.Context, moduleID int) error {
	module, err := h.vocabService.Module(moduleID)
	if err != nil {
		return h.notify(c, "This module no longer exists.")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(wordListRows(markup, module)...)
	return h.show(c, renderWordList(module), markup)
}

func renderWordList(module *domain.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s\n", module.Name)
	if len(module.Words) == 0 {
		b.WriteString("\nNo words yet.")
		return b.String()
	}

	for i, w := range module.Words {
		if i == maxListedWords {
			fmt.Fprintf(&b, "\n…and %d more", len(module.Words)-maxListedWords)
			break
		}
		fmt.Fprintf(&b, "\n%d. %s — %s", i+1, w.Word, w.Translation)
	}
	return b.String()
}

func wordListRows(markup *tele.ReplyMarkup, module *domain.Module) []tele.Row {
	moduleID := strconv.Itoa(module.ID)

	rows := make([]tele.Row, 0, min(len(module.Words), maxWordRows)+1)
	for i, w := range module.Words {
		if i == maxWordRows {
			break
		}
		wordID := strconv.Itoa(w.ID)
		rows = append(rows, markup.Row(
			markup.Data("✏️ "+w.Word, uqEditWord, moduleID, wordID),
			markup.Data("🗑", uqDeleteWord, moduleID, wordID),
		))
	}

	return append(rows, markup.Row(markup.Data("◀️ Back", uqModule, moduleID)))
}

// handleDeleteWord removes a word and redraws the word list
func (h *Handler) handleDeleteWord(c tele.Context) error {
	ids, ok := callbackIDs(c, 2)
	if !ok {
		return c.Respond()
	}
	if err := h.vocabService.DeleteWord(ids[0], ids[1]); err != nil {
		h.logger.Debug("Word already deleted",
			zap.Int("module_id", ids[0]),
			zap.Int("word_id", ids[1]),
		)
	}
	return h.showWordList(c, ids[0])
}

func backToWordsMarkup(moduleID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("◀️ Back", uqWords, strconv.Itoa(moduleID))))
	return markup
}

// doneMarkup ends the add-word dialog and returns to the module
func doneMarkup(moduleID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("✅ Done", uqModule, strconv.Itoa(moduleID))))
	return markup
}

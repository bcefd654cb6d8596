package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingPassword    UserState = "waiting_password"
	StateWaitingFolderName  UserState = "waiting_folder_name"
	StateWaitingModuleName  UserState = "waiting_module_name"
	StateWaitingRename      UserState = "waiting_rename"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
	StateWaitingExample     UserState = "waiting_example"
	StateWaitingImport      UserState = "waiting_import"
	StateWaitingModuleWords UserState = "waiting_module_words"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State    UserState
	FolderID int
	ModuleID int
	// RenameKind is "folder" or "module" while in StateWaitingRename
	RenameKind string
	RenameID   int
	// WordID is set while editing an existing word
	WordID int
	// FromList asks for a word list once the module name is known
	FromList   bool
	ModuleName string
	Pending    WordInput
}

package service

import "errors"

var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrEmptyWord      = errors.New("word and translation cannot be empty")
	ErrNoValidWords   = errors.New("no word with both word and translation")
	ErrFolderNotFound = errors.New("folder not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrWordNotFound   = errors.New("word not found")
	ErrInvalidResult  = errors.New("invalid quiz result")
)

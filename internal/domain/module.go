package domain

// Module is an ordered list of words inside a folder
type Module struct {
	ID       int
	FolderID int
	Name     string
	Words    []Word
}

// Clone returns a copy that shares no memory with m
func (m Module) Clone() Module {
	words := make([]Word, len(m.Words))
	copy(words, m.Words)
	m.Words = words
	return m
}

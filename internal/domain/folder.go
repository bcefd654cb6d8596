package domain

// Folder is the top-level container of modules
type Folder struct {
	ID      int
	Name    string
	Modules []Module
}

// Clone returns a deep copy of the folder
func (f Folder) Clone() Folder {
	modules := make([]Module, len(f.Modules))
	for i, m := range f.Modules {
		modules[i] = m.Clone()
	}
	f.Modules = modules
	return f
}

// WordCount returns the number of words across all modules
func (f Folder) WordCount() int {
	n := 0
	for _, m := range f.Modules {
		n += len(m.Words)
	}
	return n
}

package domain

// Word is a single vocabulary entry owned by a module
type Word struct {
	ID          int
	Word        string
	Translation string
	Example     string
}

// WordInput holds the editable content of a word
type WordInput struct {
	Word        string
	Translation string
	Example     string
}

// Input returns the content fields of the word
func (w Word) Input() WordInput {
	return WordInput{
		Word:        w.Word,
		Translation: w.Translation,
		Example:     w.Example,
	}
}

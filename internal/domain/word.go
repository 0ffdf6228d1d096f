package domain

import "strings"

// Word represents a canonical word-translation pair shared by all users
type Word struct {
	ID          int64  `db:"id"`
	Target      string `db:"target_word"`
	Translation string `db:"translate_word"`
}

// WordPair is a target/translation pair before it is stored
type WordPair struct {
	Target      string `validate:"required,max=255"`
	Translation string `validate:"required,max=255"`
}

// NewWordPair builds a normalized pair
func NewWordPair(target, translation string) WordPair {
	return WordPair{
		Target:      NormalizeText(target),
		Translation: NormalizeText(translation),
	}
}

// NormalizeText trims and lowercases user input
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ListedWord is a user's word together with its learned flag
type ListedWord struct {
	Target      string `db:"target_word"`
	Translation string `db:"translate_word"`
	Learned     bool   `db:"passed_word"`
}

// WordList is a slice of the user's vocabulary plus the total count
type WordList struct {
	Items []ListedWord
	Total int
}

// WordPage is a WordList addressed by page number
type WordPage struct {
	WordList
	Page       int
	TotalPages int
}

// HasPrev reports whether a previous page exists
func (p WordPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists
func (p WordPage) HasNext() bool {
	return p.Page < p.TotalPages
}

// StarterWords is the fixed set inserted into an empty word table
var StarterWords = []WordPair{
	{Target: "красный", Translation: "red"},
	{Target: "синий", Translation: "blue"},
	{Target: "зеленый", Translation: "green"},
	{Target: "желтый", Translation: "yellow"},
	{Target: "черный", Translation: "black"},
	{Target: "белый", Translation: "white"},
	{Target: "я", Translation: "i"},
	{Target: "ты", Translation: "you"},
	{Target: "он", Translation: "he"},
	{Target: "она", Translation: "she"},
}

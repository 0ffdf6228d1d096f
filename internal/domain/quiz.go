package domain

// Question is a quiz question as shown to the user.
// The correct option is deliberately not part of it.
type Question struct {
	Seq     uint64
	Prompt  string
	Options []string
}

// Outcome is the result of answering a question
type Outcome struct {
	Prompt        string
	Correct       bool
	CorrectAnswer string
}

// QuizState is the pending question of a single user
type QuizState struct {
	Seq               uint64
	WordID            int64
	Prompt            string
	CorrectAnswer     string
	Options           []string
	SourceWasUserWord bool
}

// Option returns the option at index i
func (s QuizState) Option(i int) (string, bool) {
	if i < 0 || i >= len(s.Options) {
		return "", false
	}
	return s.Options[i], true
}

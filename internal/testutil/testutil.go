package testutil

import (
	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int64, target, translation string) domain.Word {
	return domain.Word{
		ID:          id,
		Target:      target,
		Translation: translation,
	}
}

// NewTestWords creates test words with ids starting at 1
func NewTestWords(pairs ...string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words = append(words, NewTestWord(int64(i/2+1), pairs[i], pairs[i+1]))
	}
	return words
}

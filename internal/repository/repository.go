package repository

import (
	"context"

	"wordquiz/internal/domain"
)

// WordRepository defines operations on the global word table
type WordRepository interface {
	UpsertWord(ctx context.Context, pair domain.WordPair) (*domain.Word, error)
	FindByTarget(ctx context.Context, target string) (*domain.Word, error)
	RandomWordsExcluding(ctx context.Context, excludeIDs []int64, limit int) ([]domain.Word, error)
	DistinctTranslationsExcluding(ctx context.Context, correct string, limit int) ([]string, error)
	CountWords(ctx context.Context) (int, error)
	SeedWords(ctx context.Context, pairs []domain.WordPair) (int, error)
}

// VocabularyRepository defines per-user vocabulary operations.
// Every mutating method runs in a single transaction.
type VocabularyRepository interface {
	AddWord(ctx context.Context, userID int64, pair domain.WordPair) (*domain.Word, error)
	RemoveWord(ctx context.Context, userID int64, target string) (*domain.Word, error)
	ListWords(ctx context.Context, userID int64, offset, limit int) (*domain.WordList, error)
	UnlearnedWords(ctx context.Context, userID int64) ([]domain.Word, error)
	IgnoredWordIDs(ctx context.Context, userID int64) ([]int64, error)
	MarkLearned(ctx context.Context, userID, wordID int64) error
	CountTotalAndLearned(ctx context.Context, userID int64) (total, learned int, err error)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"wordquiz/internal/domain"
	"wordquiz/internal/repository"
	"wordquiz/pkg/validator"

	"go.uber.org/zap"
)

// DefaultPageSize is the number of words on one list page
const DefaultPageSize = 10

// WordService handles word-related business logic
type WordService struct {
	wordRepo  repository.WordRepository
	vocabRepo repository.VocabularyRepository
	logger    *zap.Logger
	pageSize  int
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	vocabRepo repository.VocabularyRepository,
	logger *zap.Logger,
	pageSize int,
) *WordService {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &WordService{
		wordRepo:  wordRepo,
		vocabRepo: vocabRepo,
		logger:    logger,
		pageSize:  pageSize,
	}
}

// ImportResult counts the outcome of a bulk import
type ImportResult struct {
	Upserted int
	Skipped  int
}

// AddWord puts a word pair into the user's vocabulary
func (s *WordService) AddWord(ctx context.Context, userID int64, target, translation string) error {
	pair, err := validPair(target, translation)
	if err != nil {
		s.logger.Warn("Rejected word pair", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}

	word, err := s.vocabRepo.AddWord(ctx, userID, pair)
	if err != nil {
		s.logger.Error("Failed to add word", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("add word: %w", err)
	}

	s.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
	)
	return nil
}

// RemoveWord drops a word from the user's vocabulary and ignores it from now on
func (s *WordService) RemoveWord(ctx context.Context, userID int64, target string) error {
	target = domain.NormalizeText(target)
	if target == "" {
		return fmt.Errorf("%w: empty target", domain.ErrInvalidWord)
	}

	word, err := s.vocabRepo.RemoveWord(ctx, userID, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("Failed to remove word", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("remove word: %w", err)
	}

	s.logger.Info("Word removed",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
	)
	return nil
}

// ListWords returns the user's words in [offset, offset+limit) ordered by target text.
// A zero limit means the configured page size.
func (s *WordService) ListWords(ctx context.Context, userID int64, offset, limit int) (domain.WordList, error) {
	if offset < 0 || limit < 0 {
		return domain.WordList{}, fmt.Errorf("%w: offset %d, limit %d", domain.ErrInvalidWord, offset, limit)
	}
	if limit == 0 {
		limit = s.pageSize
	}

	list, err := s.vocabRepo.ListWords(ctx, userID, offset, limit)
	if err != nil {
		s.logger.Error("Failed to list words", zap.Int64("user_id", userID), zap.Error(err))
		return domain.WordList{}, fmt.Errorf("list words: %w", err)
	}
	return *list, nil
}

// ListPage returns one page of the user's words. Out-of-range pages are clamped.
func (s *WordService) ListPage(ctx context.Context, userID int64, page int) (*domain.WordPage, error) {
	if page < 1 {
		page = 1
	}

	list, err := s.ListWords(ctx, userID, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := (list.Total + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
		list, err = s.ListWords(ctx, userID, (page-1)*s.pageSize, s.pageSize)
		if err != nil {
			return nil, err
		}
	}

	return &domain.WordPage{
		WordList:   list,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// SeedStarterWords fills an empty word table with the starter set
func (s *WordService) SeedStarterWords(ctx context.Context) (int, error) {
	inserted, err := s.wordRepo.SeedWords(ctx, domain.StarterWords)
	if err != nil {
		s.logger.Error("Failed to seed starter words", zap.Error(err))
		return 0, fmt.Errorf("seed words: %w", err)
	}

	if inserted > 0 {
		s.logger.Info("Seeded starter words", zap.Int("count", inserted))
	}
	return inserted, nil
}

// ImportWords upserts word pairs into the global table. Invalid pairs are skipped.
func (s *WordService) ImportWords(ctx context.Context, pairs []domain.WordPair) (ImportResult, error) {
	var result ImportResult
	for _, raw := range pairs {
		pair, err := validPair(raw.Target, raw.Translation)
		if err != nil {
			s.logger.Debug("Skipping invalid pair",
				zap.String("target", raw.Target),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}

		if _, err := s.wordRepo.UpsertWord(ctx, pair); err != nil {
			s.logger.Error("Import stopped", zap.Int("upserted", result.Upserted), zap.Error(err))
			return result, fmt.Errorf("import words: %w", err)
		}
		result.Upserted++
	}

	s.logger.Info("Import finished",
		zap.Int("upserted", result.Upserted),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func validPair(target, translation string) (domain.WordPair, error) {
	pair := domain.NewWordPair(target, translation)
	if err := validator.ValidateStruct(pair); err != nil {
		return domain.WordPair{}, fmt.Errorf("%w: %v", domain.ErrInvalidWord, err)
	}
	return pair, nil
}

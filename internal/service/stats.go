package service

import (
	"context"
	"fmt"

	"wordquiz/internal/domain"
	"wordquiz/internal/repository"

	"go.uber.org/zap"
)

// StatsService reports learning progress
type StatsService struct {
	vocabRepo repository.VocabularyRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(vocabRepo repository.VocabularyRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// Stats returns how many of the user's words are learned
func (s *StatsService) Stats(ctx context.Context, userID int64) (*domain.Stats, error) {
	total, learned, err := s.vocabRepo.CountTotalAndLearned(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count words", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := domain.NewStats(total, learned)
	return &stats, nil
}

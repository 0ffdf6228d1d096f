package service

import (
	"context"
	"errors"
	"testing"

	"wordquiz/internal/domain"
	"wordquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Stats(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		learned  int
		expected domain.Stats
	}{
		{
			name:     "no words",
			expected: domain.Stats{Total: 0, Learned: 0, Percent: 0},
		},
		{
			name:     "all learned",
			total:    1,
			learned:  1,
			expected: domain.Stats{Total: 1, Learned: 1, Percent: 100},
		},
		{
			name:     "partially learned",
			total:    4,
			learned:  1,
			expected: domain.Stats{Total: 4, Learned: 1, Percent: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocabRepo := new(testutil.MockVocabularyRepository)
			vocabRepo.On("CountTotalAndLearned", mock.Anything, int64(123)).Return(tt.total, tt.learned, nil)

			service := NewStatsService(vocabRepo, testutil.NewTestLogger())

			stats, err := service.Stats(context.Background(), 123)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *stats)
			vocabRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_StoreFailure(t *testing.T) {
	vocabRepo := new(testutil.MockVocabularyRepository)
	vocabRepo.On("CountTotalAndLearned", mock.Anything, int64(123)).
		Return(0, 0, domain.NewStoreError("vocabulary.counts", errors.New("timeout")))

	service := NewStatsService(vocabRepo, testutil.NewTestLogger())

	stats, err := service.Stats(context.Background(), 123)

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

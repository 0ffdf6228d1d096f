package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wordquiz/internal/domain"
	"wordquiz/internal/quizstate"
	"wordquiz/internal/testutil"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type quizFixture struct {
	service   *QuizService
	states    *quizstate.Store
	wordRepo  *testutil.MockWordRepository
	vocabRepo *testutil.MockVocabularyRepository
}

func newQuizFixture() quizFixture {
	wordRepo := new(testutil.MockWordRepository)
	vocabRepo := new(testutil.MockVocabularyRepository)
	states := quizstate.NewStore()
	return quizFixture{
		service:   NewQuizService(wordRepo, vocabRepo, states, testutil.NewTestLogger(), DefaultQuizOptions()),
		states:    states,
		wordRepo:  wordRepo,
		vocabRepo: vocabRepo,
	}
}

func TestQuizService_UserWordLearned(t *testing.T) {
	f := newQuizFixture()
	cat := testutil.NewTestWord(1, "кот", "cat")

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{cat}, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{1}, 5).Return([]domain.Word{}, nil)
	f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, "cat", 3).
		Return([]string{"dog", "red", "blue"}, nil)
	f.vocabRepo.On("MarkLearned", mock.Anything, int64(123), int64(1)).Return(nil)

	question, err := f.service.NextQuestion(context.Background(), 123)
	require.NoError(t, err)

	assert.Equal(t, "кот", question.Prompt)
	assert.ElementsMatch(t, []string{"cat", "dog", "red", "blue"}, question.Options)

	outcome, err := f.service.SubmitAnswer(context.Background(), 123, "cat")
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, "cat", outcome.CorrectAnswer)
	f.vocabRepo.AssertCalled(t, "MarkLearned", mock.Anything, int64(123), int64(1))

	_, err = f.service.SubmitAnswer(context.Background(), 123, "cat")
	assert.ErrorIs(t, err, domain.ErrNoActiveQuestion)
}

func TestQuizService_WrongAnswer(t *testing.T) {
	f := newQuizFixture()
	cat := testutil.NewTestWord(1, "кот", "cat")

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{cat}, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{1}, 5).Return([]domain.Word{}, nil)
	f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, "cat", 3).Return([]string{"dog"}, nil)

	_, err := f.service.NextQuestion(context.Background(), 123)
	require.NoError(t, err)

	outcome, err := f.service.SubmitAnswer(context.Background(), 123, "dog")
	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, "cat", outcome.CorrectAnswer)
	f.vocabRepo.AssertNotCalled(t, "MarkLearned", mock.Anything, mock.Anything, mock.Anything)

	_, ok := f.states.Get(123)
	assert.False(t, ok)
}

func TestQuizService_PaddingWordIsNotMarked(t *testing.T) {
	f := newQuizFixture()
	dog := testutil.NewTestWord(2, "собака", "dog")

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{}, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{7}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{7}, 5).Return([]domain.Word{dog}, nil)
	f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, "dog", 3).Return([]string{}, nil)

	question, err := f.service.NextQuestion(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, question.Options)

	outcome, err := f.service.SubmitOption(context.Background(), 123, question.Seq, 0)
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	f.vocabRepo.AssertNotCalled(t, "MarkLearned", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuizService_EmptyVocabulary(t *testing.T) {
	f := newQuizFixture()

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{}, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{}, 5).Return([]domain.Word{}, nil)

	question, err := f.service.NextQuestion(context.Background(), 123)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, domain.ErrEmptyVocabulary)
	assert.Equal(t, 0, f.states.Len())
}

func TestQuizService_OptionsContainCorrectAnswerOnce(t *testing.T) {
	f := newQuizFixture()
	unlearned := []domain.Word{testutil.NewTestWord(1, "кот", "cat")}
	padding := []domain.Word{
		testutil.NewTestWord(2, "собака", "dog"),
		testutil.NewTestWord(3, "красный", "red"),
		testutil.NewTestWord(4, "синий", "blue"),
		testutil.NewTestWord(5, "он", "he"),
		testutil.NewTestWord(6, "она", "she"),
	}
	translations := lo.Map(append(unlearned, padding...), func(w domain.Word, _ int) string {
		return w.Translation
	})

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return(unlearned, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{1}, 5).Return(padding, nil)
	for _, correct := range translations {
		others := lo.Without(translations, correct)
		f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, correct, 3).Return(others[:3], nil)
	}

	for i := 0; i < 50; i++ {
		question, err := f.service.NextQuestion(context.Background(), 123)
		require.NoError(t, err)

		state, ok := f.states.Get(123)
		require.True(t, ok)

		assert.GreaterOrEqual(t, len(question.Options), 1)
		assert.LessOrEqual(t, len(question.Options), 4)
		assert.Equal(t, 1, lo.Count(question.Options, state.CorrectAnswer))
		assert.Equal(t, state.Seq, question.Seq)
		assert.Equal(t, state.WordID == 1, state.SourceWasUserWord)
	}
}

func TestQuizService_SubmitOption(t *testing.T) {
	setup := func() quizFixture {
		f := newQuizFixture()
		cat := testutil.NewTestWord(1, "кот", "cat")
		f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{cat}, nil)
		f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
		f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{1}, 5).Return([]domain.Word{}, nil)
		f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, "cat", 3).Return([]string{"dog", "red"}, nil)
		f.vocabRepo.On("MarkLearned", mock.Anything, int64(123), int64(1)).Return(nil)
		return f
	}

	t.Run("stale sequence keeps pending question", func(t *testing.T) {
		f := setup()

		first, err := f.service.NextQuestion(context.Background(), 123)
		require.NoError(t, err)
		second, err := f.service.NextQuestion(context.Background(), 123)
		require.NoError(t, err)

		_, err = f.service.SubmitOption(context.Background(), 123, first.Seq, 0)
		assert.ErrorIs(t, err, domain.ErrNoActiveQuestion)

		state, ok := f.states.Get(123)
		require.True(t, ok)
		assert.Equal(t, second.Seq, state.Seq)

		index := lo.IndexOf(second.Options, "cat")
		outcome, err := f.service.SubmitOption(context.Background(), 123, second.Seq, index)
		require.NoError(t, err)
		assert.True(t, outcome.Correct)
	})

	t.Run("index out of range keeps pending question", func(t *testing.T) {
		f := setup()

		question, err := f.service.NextQuestion(context.Background(), 123)
		require.NoError(t, err)

		_, err = f.service.SubmitOption(context.Background(), 123, question.Seq, len(question.Options))
		assert.ErrorIs(t, err, domain.ErrInvalidWord)

		_, ok := f.states.Get(123)
		assert.True(t, ok)
	})

	t.Run("no pending question", func(t *testing.T) {
		f := setup()

		_, err := f.service.SubmitOption(context.Background(), 123, 1, 0)
		assert.ErrorIs(t, err, domain.ErrNoActiveQuestion)
	})

	t.Run("concurrent presses consume once", func(t *testing.T) {
		f := setup()

		question, err := f.service.NextQuestion(context.Background(), 123)
		require.NoError(t, err)
		index := lo.IndexOf(question.Options, "cat")

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.service.SubmitOption(context.Background(), 123, question.Seq, index); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		f.vocabRepo.AssertNumberOfCalls(t, "MarkLearned", 1)
	})
}

func TestQuizService_StoreFailure(t *testing.T) {
	f := newQuizFixture()
	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).
		Return(nil, domain.NewStoreError("vocabulary.unlearned", errors.New("connection refused")))

	_, err := f.service.NextQuestion(context.Background(), 123)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 0, f.states.Len())
}

func TestQuizService_MarkLearnedFailureStillClearsState(t *testing.T) {
	f := newQuizFixture()
	cat := testutil.NewTestWord(1, "кот", "cat")

	f.vocabRepo.On("UnlearnedWords", mock.Anything, int64(123)).Return([]domain.Word{cat}, nil)
	f.vocabRepo.On("IgnoredWordIDs", mock.Anything, int64(123)).Return([]int64{}, nil)
	f.wordRepo.On("RandomWordsExcluding", mock.Anything, []int64{1}, 5).Return([]domain.Word{}, nil)
	f.wordRepo.On("DistinctTranslationsExcluding", mock.Anything, "cat", 3).Return([]string{}, nil)
	f.vocabRepo.On("MarkLearned", mock.Anything, int64(123), int64(1)).
		Return(domain.NewStoreError("vocabulary.mark_learned", errors.New("timeout")))

	_, err := f.service.NextQuestion(context.Background(), 123)
	require.NoError(t, err)

	_, err = f.service.SubmitAnswer(context.Background(), 123, "cat")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 0, f.states.Len())
}

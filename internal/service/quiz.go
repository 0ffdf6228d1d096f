package service

import (
	"context"
	"fmt"

	"wordquiz/internal/domain"
	"wordquiz/internal/quizstate"
	"wordquiz/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// QuizOptions sizes the question pool and the answer set
type QuizOptions struct {
	// PadSize is how many random global words are added to the user's unlearned words
	PadSize int
	// Distractors is how many wrong answers are offered next to the correct one
	Distractors int
}

// DefaultQuizOptions returns the standard quiz sizes
func DefaultQuizOptions() QuizOptions {
	return QuizOptions{PadSize: 5, Distractors: 3}
}

// QuizService poses multiple-choice questions and checks answers
type QuizService struct {
	wordRepo  repository.WordRepository
	vocabRepo repository.VocabularyRepository
	states    *quizstate.Store
	logger    *zap.Logger
	opts      QuizOptions
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordRepo repository.WordRepository,
	vocabRepo repository.VocabularyRepository,
	states *quizstate.Store,
	logger *zap.Logger,
	opts QuizOptions,
) *QuizService {
	return &QuizService{
		wordRepo:  wordRepo,
		vocabRepo: vocabRepo,
		states:    states,
		logger:    logger,
		opts:      opts,
	}
}

// NextQuestion picks a word and records it as the user's pending question.
// Any earlier pending question is replaced.
func (s *QuizService) NextQuestion(ctx context.Context, userID int64) (*domain.Question, error) {
	pool, unlearned, err := s.candidates(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to build question pool", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("next question: %w", err)
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	word := lo.Sample(pool)
	fromUser := lo.ContainsBy(unlearned, func(w domain.Word) bool {
		return w.ID == word.ID
	})

	var distractors []string
	if s.opts.Distractors > 0 {
		distractors, err = s.wordRepo.DistinctTranslationsExcluding(ctx, word.Translation, s.opts.Distractors)
		if err != nil {
			s.logger.Error("Failed to load distractors", zap.Int64("user_id", userID), zap.Error(err))
			return nil, fmt.Errorf("next question: %w", err)
		}
	}

	options := append([]string{word.Translation}, distractors...)
	options = lo.Shuffle(lo.Uniq(options))

	state := s.states.Put(userID, domain.QuizState{
		WordID:            word.ID,
		Prompt:            word.Target,
		CorrectAnswer:     word.Translation,
		Options:           options,
		SourceWasUserWord: fromUser,
	})

	s.logger.Debug("Question posed",
		zap.Int64("user_id", userID),
		zap.Uint64("seq", state.Seq),
		zap.Int64("word_id", word.ID),
		zap.Bool("user_word", fromUser),
	)

	return &domain.Question{
		Seq:     state.Seq,
		Prompt:  state.Prompt,
		Options: append([]string(nil), options...),
	}, nil
}

// candidates returns the question pool and the user's unlearned words within it
func (s *QuizService) candidates(ctx context.Context, userID int64) ([]domain.Word, []domain.Word, error) {
	unlearned, err := s.vocabRepo.UnlearnedWords(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	pool := append([]domain.Word(nil), unlearned...)
	if s.opts.PadSize <= 0 {
		return pool, unlearned, nil
	}

	ignored, err := s.vocabRepo.IgnoredWordIDs(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	exclude := lo.Uniq(append(lo.Map(unlearned, func(w domain.Word, _ int) int64 {
		return w.ID
	}), ignored...))

	padding, err := s.wordRepo.RandomWordsExcluding(ctx, exclude, s.opts.PadSize)
	if err != nil {
		return nil, nil, err
	}

	return append(pool, padding...), unlearned, nil
}

// SubmitAnswer evaluates a free-text answer against the pending question
func (s *QuizService) SubmitAnswer(ctx context.Context, userID int64, chosen string) (*domain.Outcome, error) {
	state, ok := s.states.Take(userID)
	if !ok {
		return nil, domain.ErrNoActiveQuestion
	}
	return s.evaluate(ctx, userID, state, chosen)
}

// SubmitOption evaluates the option at index of question seq.
// A stale seq leaves the pending question in place.
func (s *QuizService) SubmitOption(ctx context.Context, userID int64, seq uint64, index int) (*domain.Outcome, error) {
	state, ok := s.states.Get(userID)
	if !ok || state.Seq != seq {
		return nil, domain.ErrNoActiveQuestion
	}

	chosen, ok := state.Option(index)
	if !ok {
		return nil, fmt.Errorf("%w: option %d out of range", domain.ErrInvalidWord, index)
	}

	state, ok = s.states.TakeIf(userID, seq)
	if !ok {
		return nil, domain.ErrNoActiveQuestion
	}
	return s.evaluate(ctx, userID, state, chosen)
}

func (s *QuizService) evaluate(ctx context.Context, userID int64, state domain.QuizState, chosen string) (*domain.Outcome, error) {
	outcome := &domain.Outcome{
		Prompt:        state.Prompt,
		Correct:       chosen == state.CorrectAnswer,
		CorrectAnswer: state.CorrectAnswer,
	}

	if outcome.Correct && state.SourceWasUserWord {
		if err := s.vocabRepo.MarkLearned(ctx, userID, state.WordID); err != nil {
			s.logger.Error("Failed to mark word learned",
				zap.Int64("user_id", userID),
				zap.Int64("word_id", state.WordID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("submit answer: %w", err)
		}
	}

	s.logger.Debug("Answer checked",
		zap.Int64("user_id", userID),
		zap.Uint64("seq", state.Seq),
		zap.Bool("correct", outcome.Correct),
	)
	return outcome, nil
}

package handler

import (
	"errors"
	"fmt"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleQuiz handles /quiz and the quiz menu button
func (h *Handler) handleQuiz(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.askQuestion(c)
}

// handleContinueQuiz asks the next question after an answer
func (h *Handler) handleContinueQuiz(c tele.Context) error {
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.askQuestion(c)
}

func (h *Handler) askQuestion(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	question, err := h.quizService.NextQuestion(ctx, c.Sender().ID)
	switch {
	case errors.Is(err, domain.ErrEmptyVocabulary):
		return c.Send(msgEmptyList, mainMenuMarkup())
	case err != nil:
		return c.Send("❌ Ошибка при запуске викторины", mainMenuMarkup())
	}

	return c.Send(
		fmt.Sprintf("Как переводится слово '%s'?", question.Prompt),
		questionMarkup(question),
	)
}

// handleQuizAnswer handles an option button press
func (h *Handler) handleQuizAnswer(c tele.Context, data string) error {
	userID := c.Sender().ID

	seq, index, err := parseQuizData(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный ответ"})
	}

	ctx, cancel := requestContext()
	defer cancel()

	outcome, err := h.quizService.SubmitOption(ctx, userID, seq, index)
	switch {
	case errors.Is(err, domain.ErrNoActiveQuestion), errors.Is(err, domain.ErrInvalidWord):
		return c.Respond(&tele.CallbackResponse{Text: "Этот вопрос уже неактуален"})
	case err != nil:
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send("⚠️ Произошла ошибка, попробуйте снова", mainMenuMarkup())
	}

	text := formatOutcome(outcome)
	if err := c.Edit(text); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr != nil {
			if sendErr := c.Send(text); sendErr != nil {
				return sendErr
			}
		}
	} else if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	return c.Send("Продолжить викторину?", continueMarkup())
}

// questionMarkup puts every option on its own row
func questionMarkup(question *domain.Question) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(question.Options))
	for i, option := range question.Options {
		rows = append(rows, markup.Row(markup.Data(option, quizData(question.Seq, i))))
	}
	markup.Inline(rows...)
	return markup
}

func formatOutcome(outcome *domain.Outcome) string {
	if outcome.Correct {
		return fmt.Sprintf("✅ Правильно! %s - верный ответ!", outcome.CorrectAnswer)
	}
	return fmt.Sprintf("❌ Неверно! Правильный ответ: %s", outcome.CorrectAnswer)
}

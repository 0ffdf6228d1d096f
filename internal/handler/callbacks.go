package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	pagePrefix = "page_"
	quizPrefix = "quiz_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parsePageData extracts n from "page_<n>"
func parsePageData(data string) (int, error) {
	pageStr, ok := strings.CutPrefix(strings.TrimSpace(data), pagePrefix)
	if !ok {
		return 0, fmt.Errorf("not a page callback: %q", data)
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", pageStr, err)
	}
	return page, nil
}

// quizData builds the callback data of an option button
func quizData(seq uint64, index int) string {
	return fmt.Sprintf("%s%d_%d", quizPrefix, seq, index)
}

// parseQuizData extracts the question sequence and option index from "quiz_<seq>_<index>"
func parseQuizData(data string) (uint64, int, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(data), quizPrefix)
	if !ok {
		return 0, 0, fmt.Errorf("not a quiz callback: %q", data)
	}
	seqStr, indexStr, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, 0, fmt.Errorf("malformed quiz callback: %q", data)
	}
	seq, err := strconv.ParseUint(seqStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid question sequence %q: %w", seqStr, err)
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return 0, 0, fmt.Errorf("invalid option index %q", indexStr)
	}
	return seq, index, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, it means it was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if callback.Unique == btnContinueQuiz.Unique || data == btnContinueQuiz.Unique {
		return h.handleContinueQuiz(c)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, pagePrefix):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, quizPrefix):
		return h.handleQuizAnswer(c, data)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const greeting = "👋 Привет! Я бот для изучения английских слов.\n\n" +
	"Основные команды:\n" +
	"/add - добавить новое слово\n" +
	"/remove - удалить слово\n" +
	"/quiz - начать викторину\n" +
	"/list - показать все слова\n" +
	"/stats - показать прогресс\n\n" +
	"Используй кнопки ниже для быстрого доступа:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)
	return c.Send(greeting, mainMenuMarkup())
}

// handleCancel drops any pending input and shows the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return c.Send("✖️ Действие отменено", mainMenuMarkup())
}

// handleHideMenu removes the reply keyboard
func (h *Handler) handleHideMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return c.Send(
		"Клавиатура скрыта. Напишите /start для её возврата.",
		&tele.ReplyMarkup{RemoveKeyboard: true},
	)
}

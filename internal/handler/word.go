package handler

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgGenericError = "⚠️ Произошла ошибка. Попробуйте позже."
	msgEmptyList    = "📭 Ваш словарь пуст! Добавьте слова через /add"
	msgBothWords    = "❌ Нужно ввести оба слова: на русском и английском!"
)

// handleAdd handles /add and the add menu button
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID
	args := commandArgs(c)

	switch len(args) {
	case 0:
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
		return c.Send(
			"📝 Введите слово и перевод через пробел:\nПример: <code>яблоко apple</code>",
			tele.ModeHTML,
			cancelMenu,
		)
	case 1:
		return c.Send(msgBothWords)
	default:
		h.ResetState(userID)
		return h.addPair(c, args[0], args[1])
	}
}

// handleRemove handles /remove and the remove menu button
func (h *Handler) handleRemove(c tele.Context) error {
	userID := c.Sender().ID
	args := commandArgs(c)

	if len(args) == 0 {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingRemoval})
		return c.Send("🗑 Введите слово, которое хотите удалить:", cancelMenu)
	}

	h.ResetState(userID)
	return h.removeTarget(c, args[0])
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	fields := strings.Fields(text)
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingRemoval:
		if len(fields) == 0 {
			return c.Send("🗑 Введите слово, которое хотите удалить:", cancelMenu)
		}
		h.ResetState(userID)
		return h.removeTarget(c, fields[0])

	case domain.StateWaitingWord:
		if len(fields) < 2 {
			return c.Send(msgBothWords, cancelMenu)
		}
		h.ResetState(userID)
		return h.addPair(c, fields[0], fields[1])

	default:
		if len(fields) >= 2 {
			return h.addPair(c, fields[0], fields[1])
		}
		return c.Send("Я не понимаю эту команду. Используйте меню или команды.", mainMenuMarkup())
	}
}

func (h *Handler) addPair(c tele.Context, target, translation string) error {
	ctx, cancel := requestContext()
	defer cancel()

	err := h.wordService.AddWord(ctx, c.Sender().ID, target, translation)
	switch {
	case errors.Is(err, domain.ErrInvalidWord):
		return c.Send("❌ Проверьте формат ввода и попробуйте еще раз.", mainMenuMarkup())
	case err != nil:
		return c.Send(msgGenericError, mainMenuMarkup())
	}

	pair := domain.NewWordPair(target, translation)
	return c.Send(
		fmt.Sprintf("✅ Слово <b>%s</b> - <b>%s</b> успешно добавлено!",
			html.EscapeString(pair.Target), html.EscapeString(pair.Translation)),
		tele.ModeHTML,
		mainMenuMarkup(),
	)
}

func (h *Handler) removeTarget(c tele.Context, target string) error {
	ctx, cancel := requestContext()
	defer cancel()

	err := h.wordService.RemoveWord(ctx, c.Sender().ID, target)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidWord):
		return c.Send("❌ Слово не найдено!", mainMenuMarkup())
	case err != nil:
		return c.Send("❌ Произошла ошибка при удалении слова", mainMenuMarkup())
	}

	return c.Send(
		fmt.Sprintf("🗑 Слово <b>%s</b> удалено из вашего словаря!",
			html.EscapeString(domain.NormalizeText(target))),
		tele.ModeHTML,
		mainMenuMarkup(),
	)
}

// handleList shows one page of the user's words
func (h *Handler) handleList(c tele.Context) error {
	page := 1
	if args := commandArgs(c); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		}
	}

	ctx, cancel := requestContext()
	defer cancel()

	wordPage, err := h.wordService.ListPage(ctx, c.Sender().ID, page)
	if err != nil {
		return c.Send("❌ Произошла ошибка при получении списка слов", mainMenuMarkup())
	}

	if wordPage.Total == 0 {
		return c.Send(msgEmptyList, mainMenuMarkup())
	}

	if markup := pageMarkup(wordPage); markup != nil {
		return c.Send(formatWordPage(wordPage), markup)
	}
	return c.Send(formatWordPage(wordPage))
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	userID := c.Sender().ID

	page, err := parsePageData(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}

	ctx, cancel := requestContext()
	defer cancel()

	wordPage, err := h.wordService.ListPage(ctx, userID, page)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if wordPage.Total == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Нет данных"})
	}

	text := formatWordPage(wordPage)
	markup := pageMarkup(wordPage)
	if markup == nil {
		markup = &tele.ReplyMarkup{}
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleStats shows learning progress
func (h *Handler) handleStats(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	stats, err := h.statsService.Stats(ctx, c.Sender().ID)
	if err != nil {
		h.logger.Warn("Stats unavailable", zap.Int64("user_id", c.Sender().ID))
		return c.Send("⚠️ Не удалось получить статистику. Попробуйте позже.", mainMenuMarkup())
	}

	return c.Send(formatStats(stats), mainMenuMarkup())
}

// formatWordPage renders a page of words, marking learned ones
func formatWordPage(page *domain.WordPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 Ваши слова (стр. %d/%d):\n\n", page.Page, page.TotalPages)
	for i, word := range page.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s - %s", word.Target, word.Translation)
		if word.Learned {
			b.WriteString(" ✅")
		}
	}
	return b.String()
}

// pageMarkup returns navigation buttons, or nil for a single page
func pageMarkup(page *domain.WordPage) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	navRow := tele.Row{}
	if page.HasPrev() {
		navRow = append(navRow, markup.Data("⬅️ Назад", fmt.Sprintf("page_%d", page.Page-1)))
	}
	if page.HasNext() {
		navRow = append(navRow, markup.Data("Вперед ➡️", fmt.Sprintf("page_%d", page.Page+1)))
	}
	if len(navRow) == 0 {
		return nil
	}
	markup.Inline(navRow)
	return markup
}

func formatStats(stats *domain.Stats) string {
	return fmt.Sprintf(
		"📊 Ваша статистика:\n\n• Всего слов: %d\n• Изучено: %d\n• Прогресс: %d%%\n\nПродолжайте в том же духе! 💪",
		stats.Total, stats.Learned, stats.Percent,
	)
}

// commandArgs returns the words after the command, or nothing for menu buttons
func commandArgs(c tele.Context) []string {
	if !strings.HasPrefix(c.Text(), "/") {
		return nil
	}
	return c.Args()
}

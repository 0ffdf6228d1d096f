package handler

import (
	"context"
	"sync"
	"time"

	"wordquiz/internal/domain"
	"wordquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds the store work done for a single update
const requestTimeout = 10 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	wordService  *service.WordService
	quizService  *service.QuizService
	statsService *service.StatsService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		wordService:  wordService,
		quizService:  quizService,
		statsService: statsService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/remove", h.handleRemove)
	h.bot.Handle("/quiz", h.handleQuiz)
	h.bot.Handle("/list", h.handleList)
	h.bot.Handle("/stats", h.handleStats)

	// Main menu (reply keyboard)
	h.bot.Handle(&btnAddWord, h.handleAdd)
	h.bot.Handle(&btnRemoveWord, h.handleRemove)
	h.bot.Handle(&btnListWords, h.handleList)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnHideMenu, h.handleHideMenu)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnContinueQuiz, h.handleContinueQuiz)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	delete(h.states, userID)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// Reply keyboard buttons
var (
	mainMenu = &tele.ReplyMarkup{ResizeKeyboard: true}

	btnAddWord    = mainMenu.Text("➕ Добавить слово")
	btnRemoveWord = mainMenu.Text("🗑️ Удалить слово")
	btnListWords  = mainMenu.Text("📋 Список слов")
	btnStats      = mainMenu.Text("📊 Статистика")
	btnQuiz       = mainMenu.Text("🎯 Викторина")
	btnHideMenu   = mainMenu.Text("❌ Скрыть клавиатуру")

	cancelMenu = &tele.ReplyMarkup{ResizeKeyboard: true}
	btnCancel  = cancelMenu.Text("Отмена")
)

// Inline keyboard buttons
var btnContinueQuiz = tele.Btn{
	Unique: "continue_quiz",
	Text:   "➡️ Продолжить",
}

func init() {
	mainMenu.Reply(
		mainMenu.Row(btnAddWord, btnRemoveWord),
		mainMenu.Row(btnListWords, btnStats),
		mainMenu.Row(btnQuiz, btnHideMenu),
	)
	cancelMenu.Reply(cancelMenu.Row(btnCancel))
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	return mainMenu
}

// continueMarkup returns the inline keyboard offered after an answer
func continueMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnContinueQuiz))
	return markup
}

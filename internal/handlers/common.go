// internal/handlers/common.go

package handlers

import (
	"database/sql"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"miniapp-studio/internal/domain"
	"miniapp-studio/internal/session"
)

// Env хранит зависимости для хендлеров.
type Env struct {
	DB *sql.DB // может быть nil — тогда работаем без БД

	Pricing  domain.PricingTable
	Landing  domain.Landing
	Sessions *session.Store

	// ссылка "Получить точный расчет"
	ContactURL string

	// Bot API, например "https://api.telegram.org"
	TelegramAPIBaseURL string
	HTTPClient         *http.Client

	AdminUser         string
	AdminPasswordHash string // bcrypt
	CookieSecure      bool

	mu               sync.RWMutex
	telegramBotToken string
	telegramChatID   string
}

type errorResponse struct {
	Error string `json:"error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetTelegram задаёт токен бота и чат студии, куда уходят заявки
func (e *Env) SetTelegram(token, chatID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.telegramBotToken = token
	e.telegramChatID = chatID
}

func (e *Env) telegram() (token, chatID string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.telegramBotToken, e.telegramChatID
}

// writeJSON — helper для JSON-ответов
func (e *Env) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func (e *Env) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	e.writeJSON(w, r, status, errorResponse{Error: msg})
}

func (e *Env) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

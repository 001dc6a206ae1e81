package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Settings — настройки, которые хранятся в таблице settings (одна строка с id = 1)
type Settings struct {
	TelegramBotToken string
	TelegramChatID   string
}

// AdminSettings — то, что видит и меняет администратор. Токен наружу не отдаём.
type AdminSettings struct {
	TelegramBotToken    string `json:"telegramBotToken,omitempty" validate:"omitempty,max=128"`
	TelegramBotTokenSet bool   `json:"telegramBotTokenSet"`
	TelegramChatID      string `json:"telegramChatId" validate:"omitempty,max=64"`
}

// loadSettings загружает настройки из settings (id = 1)
func loadSettings(ctx context.Context, db *sql.DB) (*Settings, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}

	var token, chatID sql.NullString
	err := db.QueryRowContext(ctx, `
SELECT telegram_bot_token, telegram_chat_id
FROM settings
WHERE id = 1;
`).Scan(&token, &chatID)
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}

	return &Settings{TelegramBotToken: token.String, TelegramChatID: chatID.String}, nil
}

// saveSettings сохраняет настройки (id всегда = 1)
func saveSettings(ctx context.Context, db *sql.DB, s *Settings) error {
	if db == nil {
		return errors.New("db is nil")
	}
	if s == nil {
		return errors.New("settings is nil")
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO settings (id, telegram_bot_token, telegram_chat_id)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE
  SET telegram_bot_token = EXCLUDED.telegram_bot_token,
      telegram_chat_id   = EXCLUDED.telegram_chat_id;
`, s.TelegramBotToken, s.TelegramChatID)
	return errors.Wrap(err, "save settings")
}

// LoadSettings подтягивает настройки из БД в Env при старте
func (e *Env) LoadSettings(ctx context.Context) error {
	if e.DB == nil {
		return nil
	}
	s, err := loadSettings(ctx, e.DB)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	token, chatID := e.telegram()
	if s.TelegramBotToken != "" {
		token = s.TelegramBotToken
	}
	if s.TelegramChatID != "" {
		chatID = s.TelegramChatID
	}
	e.SetTelegram(token, chatID)
	return nil
}

func (e *Env) adminSettings() AdminSettings {
	token, chatID := e.telegram()
	return AdminSettings{TelegramBotTokenSet: token != "", TelegramChatID: chatID}
}

// GET/POST /api/admin/settings
func (e *Env) HandleAdminSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		e.writeJSON(w, r, http.StatusOK, e.adminSettings())

	case http.MethodPost:
		defer r.Body.Close()

		var req AdminSettings
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			e.writeError(w, r, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			e.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		// Обновляем только если что-то прислали
		token, chatID := e.telegram()
		if t := strings.TrimSpace(req.TelegramBotToken); t != "" {
			token = t
		}
		if c := strings.TrimSpace(req.TelegramChatID); c != "" {
			chatID = c
		}

		if e.DB != nil {
			if err := saveSettings(r.Context(), e.DB, &Settings{TelegramBotToken: token, TelegramChatID: chatID}); err != nil {
				zap.S().Named("settings").Errorw("save settings", "error", err)
				e.writeError(w, r, http.StatusInternalServerError, "failed to save settings")
				return
			}
		}
		e.SetTelegram(token, chatID)
		zap.S().Named("settings").Infow("admin settings updated", "chat_id", chatID)

		e.writeJSON(w, r, http.StatusOK, e.adminSettings())

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

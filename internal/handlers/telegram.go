package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"miniapp-studio/internal/domain"
)

// токен и чат берём из БД (settings.id = 1), при ошибках и пустых значениях — из Env
func (e *Env) loadTelegramSettings(ctx context.Context) (token, chatID string) {
	token, chatID = e.telegram()
	if e.DB == nil {
		return strings.TrimSpace(token), strings.TrimSpace(chatID)
	}

	s, err := loadSettings(ctx, e.DB)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			zap.S().Named("telegram").Warnw("load settings from db", "error", err)
		}
		return strings.TrimSpace(token), strings.TrimSpace(chatID)
	}

	if s.TelegramBotToken != "" {
		token = s.TelegramBotToken
	}
	if s.TelegramChatID != "" {
		chatID = s.TelegramChatID
	}
	return strings.TrimSpace(token), strings.TrimSpace(chatID)
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// sendTelegramMessage — низкоуровневый отправитель сообщений (Bot API sendMessage)
func (e *Env) sendTelegramMessage(ctx context.Context, token, chatID, text string) error {
	if token == "" || chatID == "" {
		return errors.New("telegram: empty bot token or chat id")
	}

	apiURL := strings.TrimRight(e.TelegramAPIBaseURL, "/") + "/bot" + token + "/sendMessage"

	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)
	form.Set("parse_mode", "HTML")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "telegram: build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpClient().Do(req)
	if err != nil {
		// в ошибке url с токеном — не отдаём его наружу
		return errors.Wrap(unwrapURLError(err), "telegram: send failed")
	}
	defer resp.Body.Close()

	var tr telegramResponse
	_ = json.NewDecoder(resp.Body).Decode(&tr)

	if resp.StatusCode >= 300 || !tr.OK {
		return errors.Errorf("telegram: non-OK status %s: %s", resp.Status, tr.Description)
	}
	return nil
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// quoteMessage — текст заявки "Получить точный расчет"
func quoteMessage(q quoteRequest, sel domain.Selection, p domain.PricingTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧮 Новая заявка на расчёт\n\n")
	fmt.Fprintf(&b, "Имя: %s\n", html.EscapeString(q.Name))
	fmt.Fprintf(&b, "Контакт: %s\n", html.EscapeString(q.Contact))
	if q.Comment != "" {
		fmt.Fprintf(&b, "Комментарий: %s\n", html.EscapeString(q.Comment))
	}
	b.WriteString("\n")

	for _, it := range p.Breakdown(sel) {
		fmt.Fprintf(&b, "• %s — %s\n", html.EscapeString(it.Label), domain.FormatPrice(it.Price))
	}
	fmt.Fprintf(&b, "\n<b>Итого: %s</b>", domain.FormatPrice(p.Total(sel)))

	return b.String()
}

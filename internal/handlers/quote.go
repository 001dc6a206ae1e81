package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"miniapp-studio/internal/domain"
	"miniapp-studio/internal/metrics"
)

const telegramTimeout = 10 * time.Second

type quoteRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Contact string `json:"contact" validate:"required,min=3,max=100"` // @username, телефон или email
	Comment string `json:"comment" validate:"max=1000"`
}

type quoteResponse struct {
	Status         string `json:"status"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"totalFormatted"`
}

// POST /api/quote — "Получить точный расчет": текущая оценка уходит в Telegram студии
func (e *Env) HandleQuote(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req quoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		e.writeError(w, r, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Comment = strings.TrimSpace(req.Comment)

	if err := validate.Struct(req); err != nil {
		e.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	_, sel := e.session(w, r)

	token, chatID := e.loadTelegramSettings(r.Context())
	if token == "" || chatID == "" {
		metrics.IncreaseQuotesTotal(metrics.QuoteDisabled)
		e.writeError(w, r, http.StatusServiceUnavailable, "quote relay is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), telegramTimeout)
	defer cancel()

	if err := e.sendTelegramMessage(ctx, token, chatID, quoteMessage(req, sel, e.Pricing)); err != nil {
		metrics.IncreaseQuotesTotal(metrics.QuoteFailed)
		zap.S().Named("quote").Errorw("relay quote", "error", err)
		e.writeError(w, r, http.StatusBadGateway, "failed to deliver quote request")
		return
	}

	metrics.IncreaseQuotesTotal(metrics.QuoteSent)
	zap.S().Named("quote").Infow("quote relayed", "total", e.Pricing.Total(sel))

	total := e.Pricing.Total(sel)
	e.writeJSON(w, r, http.StatusAccepted, quoteResponse{
		Status:         "sent",
		Total:          total,
		TotalFormatted: domain.FormatPrice(total),
	})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"miniapp-studio/internal/domain"
	"miniapp-studio/internal/metrics"
)

const sessionCookie = "estimator_sid"

type estimateResponse struct {
	Step           domain.Step       `json:"step"`
	StepName       string            `json:"stepName"`
	Progress       int               `json:"progress"`
	Selection      domain.Selection  `json:"selection"`
	Total          int64             `json:"total"`
	TotalFormatted string            `json:"totalFormatted"`
	Breakdown      []domain.LineItem `json:"breakdown"`
	ContactURL     string            `json:"contactUrl"`
}

// estimate — ответ по текущему состоянию; сумма считается заново каждый раз
func (e *Env) estimate(sel domain.Selection) estimateResponse {
	total := e.Pricing.Total(sel)
	return estimateResponse{
		Step:           sel.Step,
		StepName:       domain.StepName(sel.Step),
		Progress:       sel.Progress(),
		Selection:      sel,
		Total:          total,
		TotalFormatted: domain.FormatPrice(total),
		Breakdown:      e.Pricing.Breakdown(sel),
		ContactURL:     e.ContactURL,
	}
}

// session достаёт сессию из cookie или заводит новую
func (e *Env) session(w http.ResponseWriter, r *http.Request) (string, domain.Selection) {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}

	id, sel, created := e.Sessions.Load(id)
	if created {
		metrics.IncreaseSessionsTotal()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   e.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id, sel
}

// applyAction проверяет и применяет действие к сессии посетителя
func (e *Env) applyAction(w http.ResponseWriter, r *http.Request, a domain.Action) (domain.Selection, error) {
	id, sel := e.session(w, r)

	if err := validate.Struct(a); err != nil {
		metrics.IncreaseActionsTotal("invalid", metrics.ActionStatusRejected)
		return sel, errors.Wrap(domain.ErrUnknownAction, err.Error())
	}

	wasResults := sel.IsResults()
	next, err := e.Sessions.Update(id, func(s *domain.Selection) error {
		return s.Apply(a)
	})
	if err != nil {
		metrics.IncreaseActionsTotal(string(a.Kind), metrics.ActionStatusRejected)
		zap.S().Named("estimator").Debugw("action rejected", "action", a.Kind, "id", a.ID, "error", err)
		return next, err
	}

	metrics.IncreaseActionsTotal(string(a.Kind), metrics.ActionStatusOK)
	if !wasResults && next.IsResults() {
		metrics.ObserveResult(e.Pricing.Total(next))
	}
	return next, nil
}

// GET /api/estimator
func (e *Env) HandleEstimator(w http.ResponseWriter, r *http.Request) {
	_, sel := e.session(w, r)
	e.writeJSON(w, r, http.StatusOK, e.estimate(sel))
}

// POST /api/estimator/actions  { "action": "toggle_feature", "id": "payments" }
func (e *Env) HandleEstimatorAction(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var a domain.Action
	if err := render.DecodeJSON(r.Body, &a); err != nil {
		e.writeError(w, r, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	sel, err := e.applyAction(w, r, a)
	if err != nil {
		e.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	e.writeJSON(w, r, http.StatusOK, e.estimate(sel))
}

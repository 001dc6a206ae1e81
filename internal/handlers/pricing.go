package handlers

import (
	"net/http"

	"miniapp-studio/internal/domain"
)

type pricingResponse struct {
	Pricing    domain.PricingTable `json:"pricing"`
	Steps      []domain.StepInfo   `json:"steps"`
	StepNames  []string            `json:"stepNames"`
	ContactURL string              `json:"contactUrl"`
}

// GET /api/pricing — прайс и опции по шагам
func (e *Env) HandlePricing(w http.ResponseWriter, r *http.Request) {
	resp := pricingResponse{
		Pricing:    e.Pricing,
		Steps:      domain.Catalog(e.Pricing),
		ContactURL: e.ContactURL,
	}
	for _, s := range domain.AllSteps() {
		resp.StepNames = append(resp.StepNames, domain.StepName(s))
	}

	e.writeJSON(w, r, http.StatusOK, resp)
}

package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Sessions int    `json:"sessions"`
}

// GET /health
func (e *Env) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Database: "disabled", Sessions: e.Sessions.Len()}

	if e.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp.Database = "ok"
		if err := e.DB.PingContext(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = err.Error()
		}
	}

	e.writeJSON(w, r, http.StatusOK, resp)
}

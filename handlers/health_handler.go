package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz отвечает 200, пока хранилище отзывается на ping
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} handlers.jsonResponse
// @Failure 503 {object} handlers.jsonResponse "Store unreachable"
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		errorResponse(w, r, http.StatusServiceUnavailable, "store unreachable")
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

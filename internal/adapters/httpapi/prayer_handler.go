package httpapi

import (
	"net/http"
	"time"

	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
)

type prayerRequestBody struct {
	ID         string `json:"id"`
	AuthorName string `json:"author_name,omitempty"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Anonymous  bool   `json:"anonymous"`
	CreatedAt  string `json:"created_at"`
}

func toPrayerBody(p *entities.PrayerRequest) prayerRequestBody {
	return prayerRequestBody{
		ID:         p.ID,
		AuthorName: p.AuthorName,
		Title:      p.Title,
		Body:       p.Body,
		Anonymous:  p.Anonymous,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

type submitPrayerRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Anonymous bool   `json:"anonymous"`
}

// SubmitPrayer handles POST /api/prayers.
func (h *Handler) SubmitPrayer(w http.ResponseWriter, r *http.Request) {
	var req submitPrayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	request, err := h.prayer.Submit(r.Context(), userID(r), input.PrayerInput{
		Title:     req.Title,
		Body:      req.Body,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	body := toPrayerBody(request)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": h.translator.T(locale(r), "api.prayer.received", nil),
		"request": body,
	})
}

// ListPrayers handles GET /api/prayers.
func (h *Handler) ListPrayers(w http.ResponseWriter, r *http.Request) {
	requests, err := h.prayer.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]prayerRequestBody, 0, len(requests))
	for i := range requests {
		out = append(out, toPrayerBody(&requests[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

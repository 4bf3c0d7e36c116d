package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
)

type eventBody struct {
	ID               string                       `json:"id"`
	Title            string                       `json:"title"`
	Description      string                       `json:"description"`
	Date             string                       `json:"date"` // "2006-01-02"
	StartTime        string                       `json:"start_time"`
	EndTime          string                       `json:"end_time"`
	Location         string                       `json:"location"`
	Address          string                       `json:"address"`
	Category         string                       `json:"category"`
	ImageURL         string                       `json:"image_url,omitempty"`
	ParticipantCount int                          `json:"participant_count"`
	Responsible      []entities.ResponsiblePerson `json:"responsible,omitempty"`
}

func toEventBody(e *entities.Event) eventBody {
	return eventBody{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date.Format("2006-01-02"),
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Location:         e.Location,
		Address:          e.Address,
		Category:         e.Category,
		ImageURL:         e.ImageURL,
		ParticipantCount: e.ParticipantCount,
		Responsible:      e.Responsible,
	}
}

// ListEvents handles GET /api/events?bucket=&category=&q=.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := input.EventFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Bucket:   r.URL.Query().Get("bucket"),
	}
	events, err := h.catalog.ListEvents(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]eventBody, 0, len(events))
	for i := range events {
		out = append(out, toEventBody(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetEvent handles GET /api/events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventBody(event))
}

type createEventRequest struct {
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Date        string                       `json:"date"`
	StartTime   string                       `json:"start_time"`
	EndTime     string                       `json:"end_time"`
	Location    string                       `json:"location"`
	Address     string                       `json:"address"`
	Category    string                       `json:"category"`
	ImageURL    string                       `json:"image_url"`
	Responsible []entities.ResponsiblePerson `json:"responsible"`
}

// CreateEvent handles POST /api/events (admin only).
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "data inválida, use AAAA-MM-DD"})
		return
	}
	event := &entities.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Address:     req.Address,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Responsible: req.Responsible,
	}
	if err := h.catalog.CreateEvent(r.Context(), userID(r), event); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventBody(event))
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Address     *string `json:"address"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
}

// UpdateEvent handles PATCH /api/events/{id} (admin only).
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	patch := entities.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Address:     req.Address,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, h.loc)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "data inválida, use AAAA-MM-DD"})
			return
		}
		patch.Date = &date
	}
	event, err := h.catalog.UpdateEvent(r.Context(), userID(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventBody(event))
}

type toggleResponse struct {
	Joined           bool   `json:"joined"`
	ParticipantCount int    `json:"participant_count"`
	Message          string `json:"message"`
}

// ToggleParticipation handles POST /api/events/{id}/participation.
func (h *Handler) ToggleParticipation(w http.ResponseWriter, r *http.Request) {
	result, err := h.participation.Toggle(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	key := "api.participation.left"
	if result.Joined {
		key = "api.participation.joined"
	}
	writeJSON(w, http.StatusOK, toggleResponse{
		Joined:           result.Joined,
		ParticipantCount: result.ParticipantCount,
		Message:          h.translator.T(locale(r), key, nil),
	})
}

// Package httpapi is the HTTP transport for the mobile client: chi routes
// translating JSON requests into use-case calls.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"igrejaconnect/internal/ports/input"
	"igrejaconnect/internal/ports/output"
)

// Handler holds every HTTP handler plus the shared request helpers.
type Handler struct {
	auth          input.AuthUseCase
	catalog       input.CatalogUseCase
	participation input.ParticipationUseCase
	profile       input.ProfileUseCase
	prayer        input.PrayerUseCase
	provider      output.IdentityProvider
	translator    output.T
	donation      DonationInfo
	loc           *time.Location
}

func NewHandler(
	auth input.AuthUseCase,
	catalog input.CatalogUseCase,
	participation input.ParticipationUseCase,
	profile input.ProfileUseCase,
	prayer input.PrayerUseCase,
	provider output.IdentityProvider,
	translator output.T,
	donation DonationInfo,
	loc *time.Location,
) *Handler {
	return &Handler{
		auth:          auth,
		catalog:       catalog,
		participation: participation,
		profile:       profile,
		prayer:        prayer,
		provider:      provider,
		translator:    translator,
		donation:      donation,
		loc:           loc,
	}
}

// locale picks the response language from the Accept-Language header.
func locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}

// Router builds the chi mux with the full API surface.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(withSession(h.provider))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", requireAuth(h.Logout))
			r.Post("/forgot-password", h.ResetPassword)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Post("/", requireAuth(h.CreateEvent))
			r.Get("/{id}", h.GetEvent)
			r.Patch("/{id}", requireAuth(h.UpdateEvent))
			r.Post("/{id}/participation", requireAuth(h.ToggleParticipation))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", requireAuth(h.GetProfile))
			r.Patch("/", requireAuth(h.UpdateProfile))
		})

		r.Route("/prayers", func(r chi.Router) {
			r.Get("/", h.ListPrayers)
			r.Post("/", requireAuth(h.SubmitPrayer))
		})

		r.Get("/donations", h.GetDonationInfo)

		r.Route("/bible", func(r chi.Router) {
			r.Get("/books", h.ListBibleBooks)
			r.Get("/books/{id}", h.GetBibleBook)
		})
	})

	return r
}

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"igrejaconnect/pkg/bible"
)

// DonationInfo is the static giving information from configuration.
type DonationInfo struct {
	PixKey   string `json:"pix_key"`
	BankInfo string `json:"bank_info"`
	Note     string `json:"note,omitempty"`
}

// GetDonationInfo handles GET /api/donations.
func (h *Handler) GetDonationInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.donation)
}

// ListBibleBooks handles GET /api/bible/books?testament=AT|NT.
func (h *Handler) ListBibleBooks(w http.ResponseWriter, r *http.Request) {
	testament := r.URL.Query().Get("testament")
	if testament == "" {
		writeJSON(w, http.StatusOK, bible.Books)
		return
	}
	writeJSON(w, http.StatusOK, bible.ByTestament(testament))
}

// GetBibleBook handles GET /api/bible/books/{id}.
func (h *Handler) GetBibleBook(w http.ResponseWriter, r *http.Request) {
	book, ok := bible.Find(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "livro não encontrado"})
		return
	}
	writeJSON(w, http.StatusOK, book)
}

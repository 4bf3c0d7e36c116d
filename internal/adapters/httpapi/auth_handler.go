package httpapi

import (
	"net/http"

	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PushToken   string `json:"push_token"`
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	PushToken string `json:"push_token"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  profileBody `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	user, token, err := h.auth.Register(r.Context(), input.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Address:     req.Address,
		PushToken:   req.PushToken,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: toProfileBody(user)})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password, req.PushToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: toProfileBody(user)})
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), userID(r)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.translator.T(locale(r), "api.logout.success", nil),
	})
}

// ResetPassword handles POST /api/auth/forgot-password. The response never
// reveals whether the e-mail is registered.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido"})
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Email); err != nil {
		// NotFound deliberately falls through to the generic answer.
		if status := statusFor(err); status == http.StatusBadRequest {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.translator.T(locale(r), "api.reset.sent", nil),
	})
}

type profileBody struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	DisplayName        string   `json:"display_name"`
	Phone              string   `json:"phone,omitempty"`
	Address            string   `json:"address,omitempty"`
	Role               string   `json:"role"`
	SubscribedEventIDs []string `json:"subscribed_event_ids"`
}

func toProfileBody(u *entities.User) profileBody {
	ids := u.SubscribedEventIDs
	if ids == nil {
		ids = []string{}
	}
	return profileBody{
		ID:                 u.ID,
		Email:              u.Email,
		DisplayName:        u.DisplayName,
		Phone:              u.Phone,
		Address:            u.Address,
		Role:               u.Role,
		SubscribedEventIDs: ids,
	}
}

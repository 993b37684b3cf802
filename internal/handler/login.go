package handler

import (
	"encoding/json"
	"net/http"
)

// Login handles POST /api/login: the lender exchanges the configured
// passphrase for a session token used on the mutating API endpoints.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.authenticator == nil || h.jwtManager == nil {
		writeError(w, http.StatusNotFound, "authentication is not configured")
		return
	}

	var req struct {
		Passphrase string `json:"passphrase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authenticator.Authenticate(req.Passphrase); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.jwtManager.Generate(h.payments.Terms().LenderEmail)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

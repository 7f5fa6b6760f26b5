package http

import (
	"encoding/json"
	"net/http"

	"projectportal/internal/domain"
	"projectportal/internal/service"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	account, err := h.accountSvc.CreateAccount(r.Context(), principalFrom(r),
		req.Username, req.Email, req.Name, req.Password, domain.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "account created", account)
}

func (h *AccountHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	if err := h.accountSvc.ChangeRole(r.Context(), principalFrom(r), accountID, domain.Role(req.Role)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "role updated", nil)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	if err := h.accountSvc.DeleteAccount(r.Context(), principalFrom(r), accountID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "account deleted", nil)
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountSvc.ListAccounts(r.Context(), principalFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", accounts)
}

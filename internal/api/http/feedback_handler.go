package http

import (
	"encoding/json"
	"net/http"

	"projectportal/internal/service"
)

type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		ContactNo string `json:"contact_no"`
		Comments  string `json:"comments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	feedback, err := h.feedbackSvc.Submit(r.Context(), req.Name, req.Email, req.ContactNo, req.Comments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "thank you for your feedback", feedback)
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedbackSvc.List(r.Context(), principalFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", feedback)
}

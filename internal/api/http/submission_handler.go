package http

import (
	"encoding/json"
	"net/http"

	"projectportal/internal/service"
)

type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	var req struct {
		Description string  `json:"description"`
		ImageRef    *string `json:"image_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	submission, err := h.submissionSvc.Create(r.Context(), principalFrom(r), projectID, req.Description, req.ImageRef)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "submission posted", submission)
}

func (h *SubmissionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := pathID(w, r, "submissionID")
	if !ok {
		return
	}
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	if err := h.submissionSvc.Edit(r.Context(), principalFrom(r), submissionID, req.Description); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "submission updated", nil)
}

func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := pathID(w, r, "submissionID")
	if !ok {
		return
	}
	if err := h.submissionSvc.Delete(r.Context(), principalFrom(r), submissionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "submission deleted", nil)
}

func (h *SubmissionHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := pathID(w, r, "submissionID")
	if !ok {
		return
	}
	result, err := h.submissionSvc.ToggleLike(r.Context(), principalFrom(r), submissionID)
	if err != nil {
		writeError(w, err)
		return
	}
	message := "like removed"
	if result.Liked {
		message = "liked"
	}
	writeJSON(w, http.StatusOK, message, result)
}

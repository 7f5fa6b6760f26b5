package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"projectportal/internal/domain"
	"projectportal/internal/service"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
}

func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// projectRequest mirrors the portal's project form. head_account_id is
// bound but ignored on edit; member_ids arrive as strings to match the
// multi-select form encoding and are parsed here.
type projectRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	HeadAccountID int32    `json:"head_account_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Status        string   `json:"status"`
	ImageRef      *string  `json:"image_ref"`
	MemberIDs     []string `json:"member_ids"`
}

func (req *projectRequest) toInput() (service.ProjectInput, error) {
	input := service.ProjectInput{
		Title:         req.Title,
		Description:   req.Description,
		HeadAccountID: req.HeadAccountID,
		Status:        domain.ProjectStatus(req.Status),
		ImageRef:      req.ImageRef,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return input, err
		}
		input.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return input, err
		}
		input.EndDate = end
	}
	for _, raw := range req.MemberIDs {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return input, err
		}
		input.MemberIDs = append(input.MemberIDs, int32(id))
	}
	return input, nil
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed project fields", nil)
		return
	}

	project, err := h.projectSvc.Create(r.Context(), principalFrom(r), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "project created", project)
}

func (h *ProjectHandler) Edit(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed project fields", nil)
		return
	}

	project, err := h.projectSvc.Edit(r.Context(), principalFrom(r), projectID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "project updated", project)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	detail, err := h.projectSvc.Get(r.Context(), principalFrom(r), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", detail)
}

func (h *ProjectHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	summaries, err := h.projectSvc.Search(r.Context(), principalFrom(r), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "ok", summaries)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	if err := h.projectSvc.Delete(r.Context(), principalFrom(r), projectID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "project deleted", nil)
}

func (h *ProjectHandler) ReassignHead(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}
	var req struct {
		NewHeadID int32 `json:"new_head_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}
	if err := h.projectSvc.ReassignHead(r.Context(), principalFrom(r), projectID, req.NewHeadID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "project head reassigned", nil)
}

// pathID parses an int32 path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, "malformed id", nil)
		return 0, false
	}
	return int32(id), true
}
